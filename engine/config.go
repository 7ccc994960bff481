package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/space-shooter/constants"
)

// ErrInvalidConfig is returned by Validate for configurations the simulation cannot run with
var ErrInvalidConfig = errors.New("invalid config")

// Size is a fixed sprite extent in logical pixels
type Size struct {
	W int
	H int
}

// Config holds the immutable tuning of a simulation.
// Speeds are distances per frame; actual on-screen speed follows the realized frame rate.
type Config struct {
	ScreenWidth  int
	ScreenHeight int

	PlayerSpeed int
	BulletSpeed int
	EnemySpeed  int

	PlayerSize Size
	BulletSize Size
	EnemySize  Size

	// PlayerStartX/PlayerStartY is the player's initial top-left corner
	PlayerStartX int
	PlayerStartY int

	// BulletMargin shifts a new bullet left of the player's center line
	BulletMargin int

	ShootCooldown time.Duration
	FrameDelay    time.Duration

	// SpawnOdds is N in the per-frame 1/N enemy spawn chance
	SpawnOdds int
}

// DefaultConfig returns the stock 800x600 tuning
func DefaultConfig() Config {
	return Config{
		ScreenWidth:   constants.ScreenWidth,
		ScreenHeight:  constants.ScreenHeight,
		PlayerSpeed:   constants.PlayerSpeed,
		BulletSpeed:   constants.BulletSpeed,
		EnemySpeed:    constants.EnemySpeed,
		PlayerSize:    Size{W: constants.PlayerWidth, H: constants.PlayerHeight},
		BulletSize:    Size{W: constants.BulletWidth, H: constants.BulletHeight},
		EnemySize:     Size{W: constants.EnemyWidth, H: constants.EnemyHeight},
		PlayerStartX:  constants.PlayerStartX,
		PlayerStartY:  constants.ScreenHeight - constants.PlayerBottomOffset,
		BulletMargin:  constants.BulletMargin,
		ShootCooldown: constants.ShootCooldown,
		FrameDelay:    constants.FrameUpdateInterval,
		SpawnOdds:     constants.EnemySpawnOdds,
	}
}

// MaxPlayerX is the rightmost position the player may occupy
func (c Config) MaxPlayerX() int {
	return c.ScreenWidth - c.PlayerSize.W
}

// Validate reports the first setting the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	case c.PlayerSize.W <= 0 || c.PlayerSize.H <= 0,
		c.BulletSize.W <= 0 || c.BulletSize.H <= 0,
		c.EnemySize.W <= 0 || c.EnemySize.H <= 0:
		return fmt.Errorf("%w: sprite sizes must be positive", ErrInvalidConfig)
	case c.PlayerSize.W > c.ScreenWidth:
		return fmt.Errorf("%w: player width %d exceeds screen width %d", ErrInvalidConfig, c.PlayerSize.W, c.ScreenWidth)
	case c.EnemySize.W >= c.ScreenWidth:
		// Spawn draws x from [0, ScreenWidth-EnemyWidth)
		return fmt.Errorf("%w: enemy width %d leaves no spawn range on screen width %d", ErrInvalidConfig, c.EnemySize.W, c.ScreenWidth)
	case c.PlayerSpeed < 0 || c.BulletSpeed < 0 || c.EnemySpeed < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalidConfig)
	case c.PlayerStartX < 0 || c.PlayerStartX > c.MaxPlayerX():
		return fmt.Errorf("%w: player start x %d outside [0, %d]", ErrInvalidConfig, c.PlayerStartX, c.MaxPlayerX())
	case c.ShootCooldown < 0 || c.FrameDelay < 0:
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	case c.SpawnOdds < 1:
		return fmt.Errorf("%w: spawn odds %d, want >= 1", ErrInvalidConfig, c.SpawnOdds)
	}
	return nil
}
