package rules

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MaxCells bounds the board area New accepts.
const MaxCells = 1 << 24

// ParallelDecayCells is the board size above which Decay splits the work
// across goroutines.
var ParallelDecayCells = 64 * 64

// Board is a height x width grid of decay timers stored row-major in a single
// slice. A cell above zero is occupied by the snake body.
type Board struct {
	width  int
	height int
	cells  []uint32
}

// NewBoard allocates an empty board.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]uint32, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Contains reports whether p lies on the board.
func (b *Board) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < b.height && p.Col >= 0 && p.Col < b.width
}

// At returns the timer stored at p, or 0 when p is off the board.
func (b *Board) At(p Point) uint32 {
	if !b.Contains(p) {
		return 0
	}
	return b.cells[b.index(p)]
}

// Empty reports whether no body segment occupies p.
func (b *Board) Empty(p Point) bool {
	return b.At(p) == 0
}

// EmptyCount returns how many cells hold no body segment.
func (b *Board) EmptyCount() int {
	n := 0
	for _, v := range b.cells {
		if v == 0 {
			n++
		}
	}
	return n
}

// Cells returns a row-major copy of the timers.
func (b *Board) Cells() []uint32 {
	out := make([]uint32, len(b.cells))
	copy(out, b.cells)
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{width: b.width, height: b.height, cells: b.Cells()}
}

// Decay lowers every timer by one, stopping at zero.
func (b *Board) Decay() {
	if len(b.cells) < ParallelDecayCells {
		decayCells(b.cells)
		return
	}

	bands := runtime.NumCPU()
	if bands > b.height {
		bands = b.height
	}
	rowsPerBand := (b.height + bands - 1) / bands

	var g errgroup.Group
	for start := 0; start < b.height; start += rowsPerBand {
		end := start + rowsPerBand
		if end > b.height {
			end = b.height
		}
		band := b.cells[start*b.width : end*b.width]
		g.Go(func() error {
			decayCells(band)
			return nil
		})
	}
	// decayCells never fails
	_ = g.Wait()
}

// set requires p to be on the board.
func (b *Board) set(p Point, v uint32) {
	b.cells[b.index(p)] = v
}

func (b *Board) index(p Point) int {
	return p.Row*b.width + p.Col
}

func decayCells(cells []uint32) {
	for i, v := range cells {
		if v > 0 {
			cells[i] = v - 1
		}
	}
}
