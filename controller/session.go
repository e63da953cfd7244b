package controller

import (
	"time"

	"github.com/battlesnakeio/decaysnake/config"
	"github.com/battlesnakeio/decaysnake/rules"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// GameStatus is the lifecycle state of a session, as opposed to the
// rules.Status of the simulation inside it.
type GameStatus string

const (
	// GameStatusStopped represents a created game that has not been started.
	GameStatusStopped GameStatus = "stopped"
	// GameStatusRunning represents a game the workers are advancing.
	GameStatusRunning GameStatus = "running"
	// GameStatusError represents a game that ended because of an error.
	GameStatusError GameStatus = "error"
	// GameStatusComplete represents a game whose simulation reached a
	// terminal status.
	GameStatusComplete GameStatus = "complete"
)

// Session is a game hosted by the engine. Game is only advanced by the
// holder of the session lock.
type Session struct {
	ID          string        `json:"id"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	StartLength uint32        `json:"start_length"`
	TurnDelay   time.Duration `json:"turn_delay"`
	Seed        int64         `json:"seed"`
	Status      GameStatus    `json:"status"`

	Game *rules.Game `json:"-"`
}

// NewSession builds a stopped session and its first frame from a create
// request. Zero fields fall back to the config defaults.
func NewSession(req *CreateRequest) (*Session, *rules.Frame, error) {
	s := &Session{
		ID:          uuid.NewV4().String(),
		Width:       req.Width,
		Height:      req.Height,
		StartLength: req.StartLength,
		TurnDelay:   time.Duration(req.TurnDelay) * time.Millisecond,
		Status:      GameStatusStopped,
	}
	if s.Width == 0 {
		s.Width = config.DefaultWidth
	}
	if s.Height == 0 {
		s.Height = config.DefaultHeight
	}
	if s.StartLength == 0 {
		s.StartLength = uint32(config.DefaultStartLength)
	}
	if s.TurnDelay <= 0 {
		s.TurnDelay = config.TurnDelay
	}
	if s.Width > config.MaxWidth || s.Height > config.MaxHeight {
		return nil, nil, errors.Wrapf(rules.ErrInvalidConfiguration,
			"board %dx%d exceeds the %dx%d limit", s.Width, s.Height, config.MaxWidth, config.MaxHeight)
	}
	if req.Seed != nil {
		s.Seed = *req.Seed
	} else {
		s.Seed = time.Now().UnixNano()
	}

	g, err := rules.New(s.Width, s.Height, s.StartLength,
		rules.WithID(s.ID),
		rules.WithSource(rules.NewSource(s.Seed)),
	)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to create game")
	}
	s.Game = g

	log.WithFields(log.Fields{
		"GameID": s.ID,
		"Width":  s.Width,
		"Height": s.Height,
		"Seed":   s.Seed,
	}).Info("session created")
	return s, g.Frame(), nil
}
