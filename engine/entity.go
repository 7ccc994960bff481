package engine

// Rect is an axis-aligned box in logical pixels, top-left anchored
type Rect struct {
	X, Y int
	W, H int
}

// Overlaps reports whether r and o intersect on both axes.
// Touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Player is the single ship controlled by input; it never leaves its row
type Player struct {
	X, Y int
}

// Bounds returns the player's box for the given sprite size
func (p Player) Bounds(s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}
}

// Bullet travels upward until it leaves the screen or hits an enemy
type Bullet struct {
	X, Y   int
	Active bool
}

// Bounds returns the bullet's box for the given sprite size
func (b Bullet) Bounds(s Size) Rect {
	return Rect{X: b.X, Y: b.Y, W: s.W, H: s.H}
}

// Enemy descends until it leaves the screen or is hit
type Enemy struct {
	X, Y   int
	Active bool
}

// Bounds returns the enemy's box for the given sprite size
func (e Enemy) Bounds(s Size) Rect {
	return Rect{X: e.X, Y: e.Y, W: s.W, H: s.H}
}
