package controller

import "github.com/battlesnakeio/decaysnake/rules"

// CreateRequest describes a new game. Zero values pick the defaults.
type CreateRequest struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	StartLength uint32 `json:"start_length"`
	TurnDelay   int    `json:"turn_delay"`
	Seed        *int64 `json:"seed,omitempty"`
}

// CreateResponse carries the ID of a created game.
type CreateResponse struct {
	ID string `json:"id"`
}

// MoveRequest queues a direction for the next turns of a game.
type MoveRequest struct {
	Direction string `json:"direction"`
}

// StatusResponse is a session together with its latest frame.
type StatusResponse struct {
	Game      *Session     `json:"game"`
	LastFrame *rules.Frame `json:"last_frame"`
}

// ListGameFramesResponse is a page of frames.
type ListGameFramesResponse struct {
	Frames []*rules.Frame `json:"frames"`
	Count  int           `json:"count"`
}
