// Package worker advances running games. Each worker pops a running game
// from the store, holds its lock and ticks it on the session clock until
// the simulation ends or the lock is lost.
package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/decaysnake/controller"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Worker is the worker interface. RunGame is where a locked game is
// actually played.
type Worker struct {
	Store             controller.Store
	PollInterval      time.Duration
	HeartbeatInterval time.Duration
	Limiter           *rate.Limiter
	RunGame           func(context.Context, controller.Store, string) error
}

// Run will run the worker in a loop until ctx is done.
func (w *Worker) Run(ctx context.Context, workerID int) {
	for {
		if err := w.run(ctx, workerID); err != nil {
			if err != controller.ErrNotFound && err != controller.ErrIsLocked && ctx.Err() == nil {
				log.WithError(err).WithField("worker", workerID).Error("run failed")
			}

			select {
			case <-time.After(w.PollInterval):
			case <-ctx.Done():
				return
			}
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func (w *Worker) run(ctx context.Context, workerID int) error {
	if w.Limiter != nil {
		if err := w.Limiter.Wait(ctx); err != nil {
			return err
		}
	}

	// Pop an item of work.
	id, err := w.Store.PopGameID(ctx)
	if err != nil {
		return err
	}

	// Attempt to get the lock initially.
	token, err := w.Store.Lock(ctx, id, "")
	if err != nil {
		return err
	}

	logger := log.WithFields(log.Fields{"worker": workerID, "GameID": id})
	logger.Debug("acquired lock")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	defer func() {
		logger.Debug("unlocking")
		if err := w.Store.Unlock(context.Background(), id, token); err != nil {
			logger.WithError(err).Warn("unlock failed")
		}
	}()

	// Hold the lock, heartbeating every HeartbeatInterval.
	go func() {
		t := time.NewTicker(w.heartbeatInterval())
		defer t.Stop()
		for {
			select {
			case <-t.C:
				if _, err := w.Store.Lock(ctx, id, token); err != nil {
					logger.WithError(err).Warn("lock expired during heartbeat")
					cancel()
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	runGame := w.RunGame
	if runGame == nil {
		runGame = Runner
	}
	return runGame(ctx, w.Store, id)
}

func (w *Worker) heartbeatInterval() time.Duration {
	if w.HeartbeatInterval > 0 {
		return w.HeartbeatInterval
	}
	return controller.LockExpiry / 3
}
