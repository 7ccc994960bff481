package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the fixed delay between frames (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// ShootCooldownMs is the minimum time between two player shots
	ShootCooldownMs = 200

	// ShootCooldown is the minimum time between two player shots
	ShootCooldown = ShootCooldownMs * time.Millisecond
)

// Playfield Constants (logical pixels)
const (
	// ScreenWidth is the width of the playfield
	ScreenWidth = 800

	// ScreenHeight is the height of the playfield
	ScreenHeight = 600

	// PlayerStartX is the player's initial horizontal position
	PlayerStartX = ScreenWidth / 2

	// PlayerBottomOffset is the distance from the bottom edge to the player's top
	PlayerBottomOffset = 100
)

// Movement Constants (pixels per frame, not per second)
const (
	// PlayerSpeed is the horizontal distance the player moves per frame
	PlayerSpeed = 5

	// BulletSpeed is the upward distance a bullet travels per frame
	BulletSpeed = 10

	// EnemySpeed is the downward distance an enemy travels per frame
	EnemySpeed = 2
)

// Sprite Sizes
const (
	PlayerWidth  = 64
	PlayerHeight = 64

	BulletWidth  = 16
	BulletHeight = 32

	EnemyWidth  = 48
	EnemyHeight = 48

	// BulletMargin shifts the bullet left of the player's center line
	BulletMargin = 4
)

// Spawn Constants
const (
	// EnemySpawnOdds is N in the per-frame 1/N enemy spawn chance
	EnemySpawnOdds = 60
)
