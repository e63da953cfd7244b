package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/decaysnake/controller"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrNoGame is returned when a session carries no simulation.
var ErrNoGame = errors.New("worker: session has no game")

// Runner will run an individual game to completion. Every turn consumes at
// most one queued input, ticks the game and stores the resulting frame.
func Runner(ctx context.Context, store controller.Store, id string) error {
	session, err := store.GetGame(ctx, id)
	if err != nil {
		return err
	}
	if session.Game == nil {
		if err := store.SetGameStatus(ctx, id, controller.GameStatusError); err != nil {
			log.WithError(err).WithField("GameID", id).Error("failed to mark game as errored")
		}
		return ErrNoGame
	}
	game := session.Game

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		start := time.Now()

		input, err := store.PopInput(ctx, id)
		if err != nil {
			return errors.Wrap(err, "unable to read input")
		}
		status := game.Tick(input)
		ticksProcessed.Inc()

		if err := store.PushGameFrame(ctx, id, game.Frame()); err != nil {
			return errors.Wrap(err, "unable to store frame")
		}

		if status.Done() {
			gamesEnded.WithLabelValues(string(status)).Inc()
			log.WithFields(log.Fields{
				"GameID": id,
				"Turn":   game.Turn(),
				"Level":  game.Level(),
				"Status": status,
			}).Info("ending game")
			return store.SetGameStatus(ctx, id, controller.GameStatusComplete)
		}

		remaining := session.TurnDelay - time.Since(start)
		if remaining > 0 {
			select {
			case <-time.After(remaining):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
