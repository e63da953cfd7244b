// Package controller hosts game sessions. It owns the store, creates and
// starts games, queues player input and serves frames to the API. Workers
// advance the running games through the same store.
package controller

import (
	"context"
	"errors"

	"github.com/battlesnakeio/decaysnake/rules"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidDirection is returned by Move for unknown direction names.
var ErrInvalidDirection = errors.New("controller: invalid direction")

// New will initialize a new Server.
func New(store Store) *Server {
	return &Server{Store: store}
}

// Server exposes the session operations used by the API.
type Server struct {
	Store Store
}

// Create builds a new stopped game and stores its first frame.
func (s *Server) Create(ctx context.Context, req *CreateRequest) (*CreateResponse, error) {
	session, frame, err := NewSession(req)
	if err != nil {
		return nil, err
	}
	if frame.Status.Done() {
		session.Status = GameStatusComplete
	}
	if err := s.Store.CreateGame(ctx, session, []*rules.Frame{frame}); err != nil {
		return nil, err
	}
	return &CreateResponse{ID: session.ID}, nil
}

// Start marks a stopped game as running so a worker picks it up. Starting a
// running game is a no-op.
func (s *Server) Start(ctx context.Context, id string) error {
	session, err := s.Store.GetGame(ctx, id)
	if err != nil {
		return err
	}
	switch session.Status {
	case GameStatusRunning:
		return nil
	case GameStatusComplete, GameStatusError:
		return rules.ErrGameOver
	}
	log.WithField("GameID", id).Info("starting game")
	return s.Store.SetGameStatus(ctx, id, GameStatusRunning)
}

// Move queues a direction. Each queued direction is consumed by one turn.
func (s *Server) Move(ctx context.Context, id string, req *MoveRequest) error {
	d, ok := rules.ParseDirection(req.Direction)
	if !ok {
		return ErrInvalidDirection
	}
	return s.Store.PushInput(ctx, id, d)
}

// Status returns the session and its latest frame.
func (s *Server) Status(ctx context.Context, id string) (*StatusResponse, error) {
	session, err := s.Store.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	frames, err := s.Store.ListGameFrames(ctx, id, 1, -1)
	if err != nil {
		return nil, err
	}
	resp := &StatusResponse{Game: session}
	if len(frames) > 0 {
		resp.LastFrame = frames[0]
	}
	return resp, nil
}

// ListGameFrames returns a page of frames starting at turn offset.
func (s *Server) ListGameFrames(ctx context.Context, id string, limit, offset int) (*ListGameFramesResponse, error) {
	frames, err := s.Store.ListGameFrames(ctx, id, limit, offset)
	if err != nil {
		return nil, err
	}
	return &ListGameFramesResponse{Frames: frames, Count: len(frames)}, nil
}
