package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTick_MovesAndDecays(t *testing.T) {
	g := newTestGame(t, 7, 7, 3, 0, 0)

	require.Equal(t, StatusRunning, g.Tick(DirectionRight))
	require.Equal(t, Point{Row: 3, Col: 4}, g.Head())
	require.Equal(t, map[Point]uint32{
		{Row: 3, Col: 4}: 3,
		{Row: 3, Col: 3}: 2,
	}, nonZero(g))

	require.Equal(t, StatusRunning, g.Tick(DirectionRight))
	require.Equal(t, Point{Row: 3, Col: 5}, g.Head())
	require.Equal(t, map[Point]uint32{
		{Row: 3, Col: 5}: 3,
		{Row: 3, Col: 4}: 2,
		{Row: 3, Col: 3}: 1,
	}, nonZero(g))
	require.Equal(t, int64(2), g.Turn())
	require.Equal(t, uint32(3), g.Level())
}

func TestTick_NoInputKeepsHeading(t *testing.T) {
	g := newTestGame(t, 7, 7, 3, 0, 0)

	g.Tick(DirectionDown)
	g.Tick(DirectionNone)
	require.Equal(t, Point{Row: 5, Col: 3}, g.Head())
	require.Equal(t, DirectionDown, g.Direction())
}

func TestTick_NoInputBeforeFirstTurnStaysPut(t *testing.T) {
	g := newTestGame(t, 7, 7, 3, 0, 0)

	g.Tick(DirectionNone)
	require.Equal(t, Point{Row: 3, Col: 3}, g.Head())
	require.Equal(t, StatusRunning, g.Status())
	require.Equal(t, map[Point]uint32{{Row: 3, Col: 3}: 3}, nonZero(g))
}

func TestTick_WrapsHorizontally(t *testing.T) {
	g := newTestGame(t, 3, 3, 3, 0, 0)
	require.Equal(t, Point{Row: 1, Col: 1}, g.Head())

	g.Tick(DirectionLeft)
	require.Equal(t, Point{Row: 1, Col: 0}, g.Head())
	g.Tick(DirectionLeft)
	require.Equal(t, Point{Row: 1, Col: 2}, g.Head())
	require.Equal(t, StatusRunning, g.Tick(DirectionLeft))
	require.Equal(t, Point{Row: 1, Col: 1}, g.Head())
}

func TestTick_WrapsVertically(t *testing.T) {
	g := newTestGame(t, 3, 3, 3, 0, 0)

	g.Tick(DirectionUp)
	require.Equal(t, Point{Row: 0, Col: 1}, g.Head())
	g.Tick(DirectionUp)
	require.Equal(t, Point{Row: 2, Col: 1}, g.Head())
	require.Equal(t, StatusRunning, g.Tick(DirectionUp))
	require.Equal(t, Point{Row: 1, Col: 1}, g.Head())
}

func TestTick_EatsFood(t *testing.T) {
	// Food spawns right of the head, then relocates to (0, 0).
	g := newTestGame(t, 7, 7, 3, 3, 4, 0, 0)
	require.Equal(t, Point{Row: 3, Col: 4}, g.Food())

	g.Tick(DirectionRight)
	require.Equal(t, uint32(4), g.Level())
	require.Equal(t, Point{Row: 0, Col: 0}, g.Food())
	require.Equal(t, uint32(4), g.Cell(Point{Row: 3, Col: 4}))
	require.Equal(t, StatusRunning, g.Status())

	g.Tick(DirectionRight)
	require.Equal(t, uint32(4), g.Level())
}

func TestTick_FoodSkipsOccupiedCells(t *testing.T) {
	// Relocation draws the body at (3, 3), then the head at (3, 4), then (1, 1).
	src := &scriptedSource{values: []int{3, 4, 3, 3, 3, 4, 1, 1}}
	g, err := New(7, 7, 3, WithSource(src), WithLogger(quietLogger()))
	require.NoError(t, err)

	g.Tick(DirectionRight)
	require.Equal(t, Point{Row: 1, Col: 1}, g.Food())
	require.Equal(t, 8, src.calls)
	require.Equal(t, uint32(0), g.Cell(g.Food()))
}

func TestTick_LevelUnchangedWithoutFood(t *testing.T) {
	g := newTestGame(t, 9, 9, 4, 0, 0)
	for i := 0; i < 5; i++ {
		g.Tick(DirectionDown)
		require.Equal(t, uint32(4), g.Level())
		require.Equal(t, Point{Row: 0, Col: 0}, g.Food())
	}
}

func TestTick_SelfCollision(t *testing.T) {
	g := newTestGame(t, 7, 7, 5, 0, 0)

	require.Equal(t, StatusRunning, g.Tick(DirectionRight))
	require.Equal(t, StatusRunning, g.Tick(DirectionDown))
	require.Equal(t, StatusRunning, g.Tick(DirectionLeft))
	require.Equal(t, StatusCollided, g.Tick(DirectionUp))
	require.Equal(t, Point{Row: 3, Col: 3}, g.Head())
	require.Equal(t, uint32(5), g.Cell(g.Head()))
	require.True(t, g.Done())

	// Terminal games ignore further ticks.
	before := g.Frame()
	require.Equal(t, StatusCollided, g.Tick(DirectionRight))
	require.Equal(t, before, g.Frame())
}

func TestTick_ShortTailIsNotACollision(t *testing.T) {
	// With length 3 the cell left three ticks ago has decayed to zero.
	g := newTestGame(t, 7, 7, 3, 0, 0)

	g.Tick(DirectionRight)
	g.Tick(DirectionDown)
	g.Tick(DirectionLeft)
	require.Equal(t, StatusRunning, g.Tick(DirectionUp))
	require.Equal(t, Point{Row: 3, Col: 3}, g.Head())
}

func TestTick_BoardFull(t *testing.T) {
	// 2x1 board: head at (0, 1), food at (0, 0). Eating leaves no free cell.
	g := newTestGame(t, 2, 1, 2, 0, 0)
	require.Equal(t, Point{Row: 0, Col: 1}, g.Head())
	require.Equal(t, Point{Row: 0, Col: 0}, g.Food())

	require.Equal(t, StatusBoardFull, g.Tick(DirectionLeft))
	require.Equal(t, uint32(3), g.Level())
	require.Equal(t, uint32(3), g.Cell(Point{Row: 0, Col: 0}))
	require.Equal(t, uint32(1), g.Cell(Point{Row: 0, Col: 1}))
	require.Equal(t, Point{Row: 0, Col: 0}, g.Food())
	require.Equal(t, StatusBoardFull, g.Tick(DirectionRight))
	require.Equal(t, int64(1), g.Turn())
}

func TestTick_Deterministic(t *testing.T) {
	inputs := []Direction{
		DirectionRight, DirectionNone, DirectionDown, DirectionNone, DirectionNone,
		DirectionLeft, DirectionUp, DirectionNone, DirectionRight, DirectionDown,
	}
	run := func() []*Frame {
		g, err := New(20, 15, 4, WithSource(NewSource(42)), WithLogger(quietLogger()))
		require.NoError(t, err)
		frames := []*Frame{g.Frame()}
		for i := 0; i < 200; i++ {
			g.Tick(inputs[i%len(inputs)])
			frames = append(frames, g.Frame())
		}
		return frames
	}

	require.Equal(t, run(), run())
}
