package rules

import (
	"io"
	"strings"
)

// Frame is an immutable snapshot of a game after a tick. Collaborators pass
// frames around instead of the live Game.
type Frame struct {
	ID        string    `json:"id,omitempty"`
	Turn      int64     `json:"turn"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Head      Point     `json:"head"`
	Food      Point     `json:"food"`
	Direction Direction `json:"direction,omitempty"`
	Level     uint32    `json:"level"`
	Status    Status    `json:"status"`
	Cells     []uint32  `json:"cells"`
}

// Frame captures the current state.
func (g *Game) Frame() *Frame {
	return &Frame{
		ID:        g.id,
		Turn:      g.turn,
		Width:     g.board.Width(),
		Height:    g.board.Height(),
		Head:      g.head,
		Food:      g.food,
		Direction: g.direction,
		Level:     g.level,
		Status:    g.status,
		Cells:     g.board.Cells(),
	}
}

// At returns the timer at p, or 0 when p is off the board.
func (f *Frame) At(p Point) uint32 {
	if p.Row < 0 || p.Row >= f.Height || p.Col < 0 || p.Col >= f.Width {
		return 0
	}
	i := p.Row*f.Width + p.Col
	if i >= len(f.Cells) {
		return 0
	}
	return f.Cells[i]
}

// Render writes the same text grid as Game.Render.
func (f *Frame) Render(w io.Writer) error {
	return renderGrid(w, f.Width, f.Height, f.At, f.Head, f.Food)
}

func (f *Frame) String() string {
	var sb strings.Builder
	_ = f.Render(&sb)
	return sb.String()
}
