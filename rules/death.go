package rules

import log "github.com/sirupsen/logrus"

// checkCollisions runs after the head has moved and before the level is
// written. A live cell under the head is a self collision, except during the
// seed tick when no heading exists yet.
func (g *Game) checkCollisions() {
	if g.collidedWithSelf() {
		g.status = StatusCollided
		g.log.WithFields(log.Fields{
			"Turn":  g.turn,
			"Head":  g.head,
			"Level": g.level,
		}).Info("snake collided with itself")
		return
	}
	if g.head == g.food {
		g.ateFood()
	}
}

func (g *Game) collidedWithSelf() bool {
	return g.direction != DirectionNone && !g.board.Empty(g.head)
}
