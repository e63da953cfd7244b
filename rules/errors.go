package rules

import "github.com/pkg/errors"

var (
	// ErrInvalidConfiguration is returned by New when the board dimensions or
	// starting length cannot produce a game.
	ErrInvalidConfiguration = errors.New("rules: invalid configuration")
	// ErrGameOver is returned by collaborators that refuse input for a game
	// that has reached a terminal status.
	ErrGameOver = errors.New("rules: game is over")
)
