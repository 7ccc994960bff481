package constants

// Asset Paths (relative to the assets directory)
const (
	// AssetsDir is the default directory holding sprite images
	AssetsDir = "assets"

	PlayerSpritePath = "Ships/ship_0001.png"
	BulletSpritePath = "Ships/ship_0011.png"
	EnemySpritePath  = "Ships/ship_0012.png"
)
