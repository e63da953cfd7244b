package rules

// Status is the outcome of the latest tick.
type Status string

const (
	// StatusRunning means the game accepts more ticks.
	StatusRunning Status = "running"
	// StatusCollided means the head ran into its own body.
	StatusCollided Status = "collided"
	// StatusBoardFull means food could not be placed because the body covers
	// every other cell.
	StatusBoardFull Status = "board-full"
)

// Done reports whether s is terminal.
func (s Status) Done() bool {
	return s == StatusCollided || s == StatusBoardFull
}
