package rules

import log "github.com/sirupsen/logrus"

// Tick advances the game one step. input changes the heading unless it is
// DirectionNone or the reverse of the current heading. Once the game has
// ended Tick leaves the state untouched and returns the terminal status.
func (g *Game) Tick(input Direction) Status {
	if g.Done() {
		return g.status
	}
	g.turn++
	if input != DirectionNone {
		g.turnTo(input)
	}
	g.step()
	return g.status
}

// step runs decay, movement, collision checks and the head write, in that
// order. The constructor calls it directly for the seed tick.
func (g *Game) step() {
	g.board.Decay()
	g.head = g.head.Move(g.direction, g.board.Width(), g.board.Height())
	g.checkCollisions()
	g.board.set(g.head, g.level)
}

// placeFood moves the food to a random empty cell other than the head. The
// head cell is still 0 here because the level is written after the collision
// checks, so it is excluded explicitly. It returns false when there is no such
// cell.
func (g *Game) placeFood() bool {
	free := g.board.EmptyCount()
	if g.board.Empty(g.head) {
		free--
	}
	if free <= 0 {
		return false
	}
	for {
		p := g.randomPoint()
		if p != g.head && g.board.Empty(p) {
			g.food = p
			return true
		}
	}
}

func (g *Game) ateFood() {
	g.level++
	fields := log.Fields{
		"Turn":  g.turn,
		"Food":  g.food,
		"Level": g.level,
	}
	if !g.placeFood() {
		g.status = StatusBoardFull
		g.log.WithFields(fields).Info("board full")
		return
	}
	fields["NextFood"] = g.food
	g.log.WithFields(fields).Debug("snake ate")
}
