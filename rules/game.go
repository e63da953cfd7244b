package rules

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Game is a single-player snake simulation. The body is not stored as a list
// of segments: every tick writes the growth level into the head cell and
// decays all cells, so the tail disappears on its own.
type Game struct {
	id        string
	board     *Board
	food      Point
	head      Point
	direction Direction
	level     uint32
	turn      int64
	status    Status
	source    Source
	log       log.FieldLogger
}

// Option configures a Game at construction.
type Option func(*Game)

// WithSource injects the random source used for food placement.
func WithSource(s Source) Option {
	return func(g *Game) { g.source = s }
}

// WithLogger sets the logger used for game events.
func WithLogger(l log.FieldLogger) Option {
	return func(g *Game) { g.log = l }
}

// WithID tags the game, the ID is attached to every log line.
func WithID(id string) Option {
	return func(g *Game) { g.id = id }
}

// New creates a game on a width x height board with the head in the centre
// cell and food on a random cell. startLength is the initial growth level.
func New(width, height int, startLength uint32, opts ...Option) (*Game, error) {
	if width < 1 || height < 1 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "board must be at least 1x1, got %dx%d", width, height)
	}
	if width > MaxCells/height {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "board %dx%d exceeds %d cells", width, height, MaxCells)
	}
	if startLength < 1 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "start length must be positive")
	}

	g := &Game{
		board:  NewBoard(width, height),
		head:   Point{Row: height / 2, Col: width / 2},
		level:  startLength,
		status: StatusRunning,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.source == nil {
		g.source = defaultSource()
	}
	if g.log == nil {
		g.log = log.StandardLogger()
	}
	if g.id != "" {
		g.log = g.log.WithField("GameID", g.id)
	}

	g.food = g.randomPoint()
	g.step()

	g.log.WithFields(log.Fields{
		"Width":  width,
		"Height": height,
		"Head":   g.head,
		"Food":   g.food,
	}).Debug("game created")
	return g, nil
}

// ID returns the identifier given with WithID.
func (g *Game) ID() string { return g.id }

// Width returns the number of board columns.
func (g *Game) Width() int { return g.board.Width() }

// Height returns the number of board rows.
func (g *Game) Height() int { return g.board.Height() }

// Head returns the head position.
func (g *Game) Head() Point { return g.head }

// Food returns the food position.
func (g *Game) Food() Point { return g.food }

// Direction returns the current heading, DirectionNone before the first turn.
func (g *Game) Direction() Direction { return g.direction }

// Level returns the growth level written into the head cell every tick.
func (g *Game) Level() uint32 { return g.level }

// Turn returns the number of ticks since construction.
func (g *Game) Turn() int64 { return g.turn }

// Status returns the outcome of the latest tick.
func (g *Game) Status() Status { return g.status }

// Done reports whether the game has ended.
func (g *Game) Done() bool { return g.status.Done() }

// Cell returns the timer at p, or 0 when p is off the board.
func (g *Game) Cell(p Point) uint32 {
	if !g.board.Contains(p) {
		return 0
	}
	return g.board.At(p)
}

// Board returns a copy of the board.
func (g *Game) Board() *Board { return g.board.Clone() }

func (g *Game) randomPoint() Point {
	return Point{
		Row: g.source.Intn(g.board.Height()),
		Col: g.source.Intn(g.board.Width()),
	}
}
