package rules

import (
	"math/rand"
	"time"
)

// Source produces uniform integers in the half-open range [0, n). A
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a deterministic source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

func defaultSource() Source {
	return NewSource(time.Now().UnixNano())
}
