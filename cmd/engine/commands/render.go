package commands

import (
	"errors"
	"fmt"

	"github.com/battlesnakeio/decaysnake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	headColor    = termbox.ColorYellow
	foodColor    = termbox.ColorRed
)

const (
	boardLeft = 2
	boardTop  = 2
)

func render(frame *rules.Frame) error {
	if frame == nil {
		return errors.New("received nil frame")
	}
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	renderTitle(boardLeft, boardTop, frame)
	renderBoard(frame.Width, frame.Height, boardTop, boardLeft)
	renderSnake(boardLeft, boardTop, frame)
	renderStatus(boardLeft+frame.Width+3, boardTop+1, frame)

	return termbox.Flush()
}

func renderSnake(left, top int, f *rules.Frame) {
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			p := rules.Point{Row: row, Col: col}
			x, y := left+col, top+row+1
			switch {
			case p == f.Head:
				termbox.SetCell(x, y, '@', headColor, snakeColor)
			case f.At(p) > 0:
				termbox.SetCell(x, y, ' ', snakeColor, snakeColor)
			case p == f.Food:
				termbox.SetCell(x, y, '●', foodColor, bgColor)
			}
		}
	}
}

func renderStatus(left, top int, f *rules.Frame) {
	tbprint(left, top, defaultColor, defaultColor, fmt.Sprintf("length %d", f.Level))
	if f.Status.Done() {
		tbprint(left, top+2, foodColor, defaultColor, fmt.Sprintf("game over: %s", f.Status))
	}
}

func renderBoard(width, height, top, left int) {
	bottom := top + height + 1
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, width, 1, termbox.Cell{Ch: '─'})
}

func renderTitle(left, top int, f *rules.Frame) {
	tbprint(left, top-1, defaultColor, defaultColor, fmt.Sprintf("Decaysnake! - Turn %d", f.Turn))
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}

func waitForExit() error {
	tbprint(0, 0, defaultColor, defaultColor, "Press any key to exit...")
	if err := termbox.Flush(); err != nil {
		return err
	}
	termbox.PollEvent()
	return nil
}

// keyDirection maps arrow keys and w/a/s/d to a direction.
func keyDirection(ev termbox.Event) rules.Direction {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return rules.DirectionUp
	case termbox.KeyArrowDown:
		return rules.DirectionDown
	case termbox.KeyArrowLeft:
		return rules.DirectionLeft
	case termbox.KeyArrowRight:
		return rules.DirectionRight
	}
	return rules.KeyDirection(ev.Ch)
}
