package rules

import (
	"io"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed values, wrapping them into range. Once the
// script runs out it keeps returning 0.
type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) Intn(n int) int {
	defer func() { s.calls++ }()
	if s.calls >= len(s.values) {
		return 0
	}
	return s.values[s.calls] % n
}

func quietLogger() log.FieldLogger {
	l := log.New()
	l.Out = io.Discard
	return l
}

func newTestGame(t *testing.T, width, height int, length uint32, script ...int) *Game {
	g, err := New(width, height, length,
		WithSource(&scriptedSource{values: script}),
		WithLogger(quietLogger()),
	)
	require.NoError(t, err)
	return g
}

// nonZero lists the occupied cells of g.
func nonZero(g *Game) map[Point]uint32 {
	out := map[Point]uint32{}
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			p := Point{Row: row, Col: col}
			if v := g.Cell(p); v > 0 {
				out[p] = v
			}
		}
	}
	return out
}
