package engine

import "time"

// ShotGate rate-limits shooting with a two-state machine: Ready and Cooling.
// Requests while Cooling are dropped, not queued.
type ShotGate struct {
	cooldown time.Duration
	lastShot time.Time
	ready    bool
}

// NewShotGate creates a gate that starts Ready
func NewShotGate(cooldown time.Duration) ShotGate {
	return ShotGate{cooldown: cooldown, ready: true}
}

// Ready reports whether the next request would fire
func (g *ShotGate) Ready() bool {
	return g.ready
}

// LastShot returns the time of the most recent accepted request
func (g *ShotGate) LastShot() time.Time {
	return g.lastShot
}

// Refresh moves Cooling to Ready once the cooldown has elapsed since the last shot
func (g *ShotGate) Refresh(now time.Time) {
	if !g.ready && now.Sub(g.lastShot) >= g.cooldown {
		g.ready = true
	}
}

// TryFire consumes the Ready state; it returns false while Cooling
func (g *ShotGate) TryFire(now time.Time) bool {
	if !g.ready {
		return false
	}
	g.ready = false
	g.lastShot = now
	return true
}
