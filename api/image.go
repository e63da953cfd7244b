package api

import (
	"io"

	"github.com/battlesnakeio/decaysnake/rules"
	"github.com/fogleman/gg"
)

// renderPNG draws a frame with one cellSize square per board cell. Body
// cells fade with their remaining timer.
func renderPNG(w io.Writer, f *rules.Frame, cellSize int) error {
	width, height := f.Width*cellSize, f.Height*cellSize
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	size := float64(cellSize)
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			p := rules.Point{Row: row, Col: col}
			v := f.At(p)
			x, y := float64(col)*size, float64(row)*size
			switch {
			case v > 0 && p == f.Head:
				dc.SetRGB(0.05, 0.35, 0.05)
				dc.DrawRectangle(x, y, size, size)
				dc.Fill()
			case v > 0:
				shade := 0.3
				if f.Level > 0 {
					shade += 0.7 * float64(v) / float64(f.Level)
				}
				dc.SetRGB(0.2, 0.4+0.5*shade, 0.2)
				dc.DrawRectangle(x, y, size, size)
				dc.Fill()
			case p == f.Food:
				dc.SetRGB(0.85, 0.1, 0.1)
				dc.DrawCircle(x+size/2, y+size/2, size/2-1)
				dc.Fill()
			}
		}
	}

	renderGrid(dc, width, height, cellSize)
	return dc.EncodePNG(w)
}

func renderGrid(dc *gg.Context, width, height, cellSize int) {
	if cellSize < 4 {
		return
	}
	dc.SetRGB(0.9, 0.9, 0.9)
	dc.SetLineWidth(1)
	for x := 0; x <= width; x += cellSize {
		dc.DrawLine(float64(x), 0, float64(x), float64(height))
		dc.Stroke()
	}
	for y := 0; y <= height; y += cellSize {
		dc.DrawLine(0, float64(y), float64(width), float64(y))
		dc.Stroke()
	}
}
