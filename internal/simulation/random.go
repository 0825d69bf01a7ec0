package simulation

import (
	"math"
	"math/rand"
	"time"
)

// NormalSource yields standard normal draws. *rand.Rand satisfies it,
// and tests inject fixed sources to get deterministic trajectories.
type NormalSource interface {
	NormFloat64() float64
}

// SourceFactory builds an independent NormalSource for one path. The
// engine calls it once per path with a distinct seed so no two paths
// share a random stream.
type SourceFactory func(seed int64) NormalSource

// NewBoxMullerSource is the default SourceFactory: a seeded PRNG fed
// through the Box-Muller transform.
func NewBoxMullerSource(seed int64) NormalSource {
	return &boxMullerSource{rng: rand.New(rand.NewSource(seed))}
}

type boxMullerSource struct {
	rng *rand.Rand
}

func (s *boxMullerSource) NormFloat64() float64 {
	u1 := s.rng.Float64()
	for u1 == 0 { // log(0) is -Inf
		u1 = s.rng.Float64()
	}
	u2 := s.rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

func seedFunc() int64 {
	return time.Now().UnixNano()
}
