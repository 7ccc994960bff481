package engine

// fixedRand returns n-1 from every draw, which never triggers a spawn for odds > 1
type fixedRand struct{}

func (fixedRand) Intn(n int) int { return n - 1 }

// scriptedRand replays values in order, wrapping each into [0, n)
type scriptedRand struct {
	values []int
	next   int
}

func (r *scriptedRand) Intn(n int) int {
	if r.next >= len(r.values) {
		return n - 1
	}
	v := r.values[r.next] % n
	r.next++
	return v
}
