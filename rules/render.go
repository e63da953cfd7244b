package rules

import (
	"bufio"
	"io"
	"strings"
)

const (
	headGlyph  = '@'
	bodyGlyph  = '#'
	foodGlyph  = 'F'
	emptyGlyph = ' '
	ruleGlyph  = "-"
)

// Render writes the board as text: a dashed rule, one line per row and a
// closing rule. The rule is as long as the board has rows.
func (g *Game) Render(w io.Writer) error {
	return renderGrid(w, g.board.Width(), g.board.Height(), g.board.At, g.head, g.food)
}

func (g *Game) String() string {
	var sb strings.Builder
	_ = g.Render(&sb)
	return sb.String()
}

func renderGrid(w io.Writer, width, height int, at func(Point) uint32, head, food Point) error {
	bw := bufio.NewWriter(w)
	rule := strings.Repeat(ruleGlyph, height) + "\n"

	if _, err := bw.WriteString(rule); err != nil {
		return err
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			p := Point{Row: row, Col: col}
			if err := bw.WriteByte(glyph(p, at(p), head, food)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString(rule); err != nil {
		return err
	}
	return bw.Flush()
}

func glyph(p Point, v uint32, head, food Point) byte {
	switch {
	case v > 0 && p == head:
		return headGlyph
	case v > 0:
		return bodyGlyph
	case p == food:
		return foodGlyph
	}
	return emptyGlyph
}
