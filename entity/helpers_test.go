package entity

// seqRand replays scripted values and records the bounds it was asked for
type seqRand struct {
	vals  []int
	calls []int
}

func (r *seqRand) Intn(n int) int {
	r.calls = append(r.calls, n)
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v % n
}
