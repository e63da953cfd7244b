package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/battlesnakeio/decaysnake/config"
	"github.com/battlesnakeio/decaysnake/rules"
	uuid "github.com/satori/go.uuid"
)

var (
	// LockExpiry is the time after which a lock will expire.
	LockExpiry = 1 * time.Second
	// ErrNotFound is thrown when a game is not found.
	ErrNotFound = errors.New("controller: game not found")
	// ErrIsLocked is returned when a game is locked.
	ErrIsLocked = errors.New("controller: game is locked")
	// ErrInputQueueFull is returned when too many directions are queued.
	ErrInputQueueFull = errors.New("controller: input queue is full")
)

// Store is the interface to the backend store.
type Store interface {
	Lock(ctx context.Context, key, token string) (string, error)
	Unlock(ctx context.Context, key, token string) error
	PopGameID(context.Context) (string, error)
	CreateGame(context.Context, *Session, []*rules.Frame) error
	GetGame(context.Context, string) (*Session, error)
	SetGameStatus(c context.Context, id string, status GameStatus) error
	PushInput(c context.Context, id string, d rules.Direction) error
	PopInput(c context.Context, id string) (rules.Direction, error)
	PushGameFrame(c context.Context, id string, f *rules.Frame) error
	ListGameFrames(c context.Context, id string, limit, offset int) ([]*rules.Frame, error)
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{
		games:  map[string]*Session{},
		frames: map[string][]*rules.Frame{},
		inputs: map[string][]rules.Direction{},
		locks:  map[string]*lock{},
	}
}

type lock struct {
	token   string
	expires time.Time
}

type inmem struct {
	games  map[string]*Session
	frames map[string][]*rules.Frame
	inputs map[string][]rules.Direction
	locks  map[string]*lock
	lock   sync.Mutex
}

func (in *inmem) Lock(ctx context.Context, key, token string) (string, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	now := time.Now()

	l, ok := in.locks[key]
	if ok {
		if l.expires.Before(now) {
			delete(in.locks, key)
		} else {
			if l.token == token {
				l.expires = now.Add(LockExpiry)
				return l.token, nil
			}
			return "", ErrIsLocked
		}
	}
	if token == "" {
		token = uuid.NewV4().String()
	}
	l = &lock{
		token:   token,
		expires: now.Add(LockExpiry),
	}
	in.locks[key] = l
	return l.token, nil
}

func (in *inmem) isLocked(key string) bool {
	l, ok := in.locks[key]
	return ok && l.expires.After(time.Now())
}

func (in *inmem) Unlock(ctx context.Context, key, token string) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	l, ok := in.locks[key]
	if !ok {
		return nil
	}
	if l.token == token {
		delete(in.locks, key)
		return nil
	}
	if l.expires.Before(time.Now()) {
		delete(in.locks, key)
		return nil
	}
	return ErrIsLocked
}

func (in *inmem) PopGameID(ctx context.Context) (string, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	for id, g := range in.games {
		if g.Status == GameStatusRunning && !in.isLocked(id) {
			return id, nil
		}
	}
	return "", ErrNotFound
}

func (in *inmem) CreateGame(ctx context.Context, s *Session, frames []*rules.Frame) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	in.games[s.ID] = s
	in.frames[s.ID] = append([]*rules.Frame{}, frames...)
	return nil
}

func (in *inmem) GetGame(ctx context.Context, id string) (*Session, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	s, ok := in.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (in *inmem) SetGameStatus(ctx context.Context, id string, status GameStatus) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	s, ok := in.games[id]
	if !ok {
		return ErrNotFound
	}
	s.Status = status
	if status == GameStatusComplete || status == GameStatusError {
		delete(in.inputs, id)
	}
	return nil
}

func (in *inmem) PushInput(ctx context.Context, id string, d rules.Direction) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	s, ok := in.games[id]
	if !ok {
		return ErrNotFound
	}
	if s.Status == GameStatusComplete || s.Status == GameStatusError {
		return rules.ErrGameOver
	}
	if len(in.inputs[id]) >= config.MaxQueuedInputs {
		return ErrInputQueueFull
	}
	in.inputs[id] = append(in.inputs[id], d)
	return nil
}

func (in *inmem) PopInput(ctx context.Context, id string) (rules.Direction, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if _, ok := in.games[id]; !ok {
		return rules.DirectionNone, ErrNotFound
	}
	queue := in.inputs[id]
	if len(queue) == 0 {
		return rules.DirectionNone, nil
	}
	in.inputs[id] = queue[1:]
	return queue[0], nil
}

func (in *inmem) PushGameFrame(ctx context.Context, id string, f *rules.Frame) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	if _, ok := in.games[id]; !ok {
		return ErrNotFound
	}
	frames := append(in.frames[id], f)
	if config.MaxFrames > 0 && len(frames) > config.MaxFrames {
		frames = frames[len(frames)-config.MaxFrames:]
	}
	in.frames[id] = frames
	return nil
}

func (in *inmem) ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*rules.Frame, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	frames, ok := in.frames[id]
	if !ok {
		return nil, ErrNotFound
	}
	return pageFrames(frames, limit, offset), nil
}

// pageFrames returns up to limit frames starting at turn offset. A negative
// offset counts back from the latest frame. Frames older than the retention
// window are skipped.
func pageFrames(frames []*rules.Frame, limit, offset int) []*rules.Frame {
	var start int
	if offset < 0 {
		start = len(frames) + offset
		if start < 0 {
			start = 0
		}
	} else {
		start = len(frames)
		for i, f := range frames {
			if f.Turn >= int64(offset) {
				start = i
				break
			}
		}
	}
	end := len(frames)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	return append([]*rules.Frame{}, frames[start:end]...)
}
