package rules

// turnTo applies the turn rule: any heading is accepted before the first
// turn, afterwards the reverse of the current heading is ignored.
func (g *Game) turnTo(d Direction) {
	if !d.Valid() {
		return
	}
	if g.direction != DirectionNone && d == g.direction.Opposite() {
		return
	}
	g.direction = d
}
