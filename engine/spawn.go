package engine

// RandSource is the uniform integer source behind enemy spawning.
// *math/rand.Rand satisfies it.
type RandSource interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// trySpawnEnemy rolls the per-frame spawn chance and returns the new enemy on success.
// The enemy starts fully above the screen at a column that keeps its whole width visible.
func trySpawnEnemy(cfg *Config, rng RandSource) (Enemy, bool) {
	if rng.Intn(cfg.SpawnOdds) != 0 {
		return Enemy{}, false
	}
	return Enemy{
		X:      rng.Intn(cfg.ScreenWidth - cfg.EnemySize.W),
		Y:      -cfg.EnemySize.H,
		Active: true,
	}, true
}
