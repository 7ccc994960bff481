package engine

import (
	"slices"
	"time"
)

// Input is the sampled per-frame player intent plus the frame's clock reading
type Input struct {
	Left  bool
	Right bool
	Shoot bool

	// Now is the monotonic time used only by the shot cooldown
	Now time.Time
}

// FrameReport summarizes what a single Step changed
type FrameReport struct {
	Frame         uint64
	Fired         bool
	Spawned       bool
	Hits          int
	BulletsCulled int
	EnemiesCulled int
}

// State is all mutable game state, owned by one Simulation
type State struct {
	Frame   uint64
	Player  Player
	Bullets []Bullet
	Enemies []Enemy
	Gate    ShotGate
}

// Simulation advances the game one frame at a time.
// It is single-threaded; callers must not share it across goroutines.
type Simulation struct {
	cfg   Config
	rng   RandSource
	state State
}

// NewSimulation creates a simulation with the player at its start position.
// cfg is assumed valid (see Config.Validate).
func NewSimulation(cfg Config, rng RandSource) *Simulation {
	return &Simulation{
		cfg: cfg,
		rng: rng,
		state: State{
			Player: Player{X: cfg.PlayerStartX, Y: cfg.PlayerStartY},
			Gate:   NewShotGate(cfg.ShootCooldown),
		},
	}
}

// Config returns the simulation's tuning
func (s *Simulation) Config() Config {
	return s.cfg
}

// State exposes current state for rendering; callers must not mutate it
func (s *Simulation) State() *State {
	return &s.state
}

// Step runs player update, spawn, integration, collision and compaction in that order
func (s *Simulation) Step(in Input) FrameReport {
	s.state.Frame++
	report := FrameReport{Frame: s.state.Frame}

	s.movePlayer(in)
	report.Fired = s.shoot(in)

	if enemy, ok := trySpawnEnemy(&s.cfg, s.rng); ok {
		s.state.Enemies = append(s.state.Enemies, enemy)
		report.Spawned = true
	}

	report.BulletsCulled = s.advanceBullets()
	report.EnemiesCulled = s.advanceEnemies()
	report.Hits = resolveCollisions(s.state.Bullets, s.state.Enemies, s.cfg.BulletSize, s.cfg.EnemySize)

	s.compact()
	return report
}

// movePlayer applies held direction keys and clamps to [0, MaxPlayerX]
func (s *Simulation) movePlayer(in Input) {
	p := &s.state.Player
	if in.Left {
		p.X -= s.cfg.PlayerSpeed
	}
	if in.Right {
		p.X += s.cfg.PlayerSpeed
	}
	p.X = max(0, min(p.X, s.cfg.MaxPlayerX()))
}

// shoot appends one bullet if requested and the gate is Ready
func (s *Simulation) shoot(in Input) bool {
	gate := &s.state.Gate
	gate.Refresh(in.Now)
	if !in.Shoot || !gate.TryFire(in.Now) {
		return false
	}
	p := s.state.Player
	s.state.Bullets = append(s.state.Bullets, Bullet{
		X:      p.X + s.cfg.PlayerSize.W/2 - s.cfg.BulletMargin,
		Y:      p.Y,
		Active: true,
	})
	return true
}

// advanceBullets moves active bullets up, deactivating those above the top edge
func (s *Simulation) advanceBullets() int {
	culled := 0
	for i := range s.state.Bullets {
		b := &s.state.Bullets[i]
		if !b.Active {
			continue
		}
		b.Y -= s.cfg.BulletSpeed
		if b.Y < 0 {
			b.Active = false
			culled++
		}
	}
	return culled
}

// advanceEnemies moves active enemies down, deactivating those below the bottom edge
func (s *Simulation) advanceEnemies() int {
	culled := 0
	for i := range s.state.Enemies {
		e := &s.state.Enemies[i]
		if !e.Active {
			continue
		}
		e.Y += s.cfg.EnemySpeed
		if e.Y > s.cfg.ScreenHeight {
			e.Active = false
			culled++
		}
	}
	return culled
}

// compact drops inactive entities in place, keeping survivors' relative order
func (s *Simulation) compact() {
	s.state.Bullets = slices.DeleteFunc(s.state.Bullets, func(b Bullet) bool { return !b.Active })
	s.state.Enemies = slices.DeleteFunc(s.state.Enemies, func(e Enemy) bool { return !e.Active })
}
