package eval

import "math/rand"

// Random is an optional noise generator added to leaf evaluations, for
// engine-vs-engine replay variety. The zero value is disabled and always
// returns zero, reproducing a fully deterministic Evaluate.
type Random struct {
	rand  *rand.Rand
	limit int // millipawns, symmetric around zero
}

// NewRandom returns a Random that samples uniformly in
// [-limitMillipawns/2; limitMillipawns/2], converted to centipawns.
func NewRandom(limitMillipawns int, seed int64) Random {
	return Random{
		rand:  rand.New(rand.NewSource(seed)),
		limit: limitMillipawns,
	}
}

// Sample returns the next noise sample in centipawns.
func (n Random) Sample() int {
	if n.limit <= 0 {
		return 0
	}
	return (n.rand.Intn(n.limit) - n.limit/2) / 10
}
