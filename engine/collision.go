package engine

// resolveCollisions tests every active bullet against every active enemy and
// deactivates both on overlap. A bullet is consumed by the first enemy it
// overlaps in slice order. Returns the number of hits.
func resolveCollisions(bullets []Bullet, enemies []Enemy, bulletSize, enemySize Size) int {
	hits := 0
	for i := range bullets {
		b := &bullets[i]
		if !b.Active {
			continue
		}
		box := b.Bounds(bulletSize)
		for j := range enemies {
			e := &enemies[j]
			if !e.Active {
				continue
			}
			if box.Overlaps(e.Bounds(enemySize)) {
				b.Active = false
				e.Active = false
				hits++
				break
			}
		}
	}
	return hits
}
