package server

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/battlesnakeio/decaysnake/config"
	"github.com/battlesnakeio/decaysnake/controller"
	"github.com/battlesnakeio/decaysnake/rules"
	"github.com/battlesnakeio/decaysnake/worker"
	log "github.com/sirupsen/logrus"
)

var (
	workerThreads      = config.WorkerThreads
	workerPollInterval = 1 * time.Second
	workerChaos        = false
)

func init() {
	RootCmd.Flags().IntVarP(&workerThreads, "threads", "t", workerThreads, "worker processor threads, this is the amount of concurrent games the server can advance")
	RootCmd.Flags().DurationVarP(&workerPollInterval, "poll-interval", "p", workerPollInterval, "worker poll interval")
	RootCmd.Flags().BoolVar(&workerChaos, "chaos", workerChaos, "introduce chaotic latency into store calls")
}

func runWorkers(ctx context.Context, store controller.Store) {
	w := &worker.Worker{
		Store:        store,
		PollInterval: workerPollInterval,
		Limiter:      config.PopLimiter(),
		RunGame:      worker.Runner,
	}

	wg := &sync.WaitGroup{}
	wg.Add(workerThreads)

	for i := 0; i < workerThreads; i++ {
		go func(i int) {
			log.WithField("worker", i).Info("Decaysnake worker starting")
			w.Run(ctx, i)
			wg.Done()
		}(i)
	}
	wg.Wait()
}

// chaosStore adds random latency to the calls a worker makes every turn, so
// turns overrun their delay. Lock calls are left alone: a session holds a live
// game, and a lapsed lock would let two workers tick it.
type chaosStore struct {
	controller.Store
}

func chaosSleep(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var sleep time.Duration
	if rand.Intn(100) <= 20 { // nolint: gosec
		sleep = time.Duration(rand.Intn(5)) * time.Second // nolint: gosec
	} else {
		sleep = time.Duration(rand.Intn(50)) * time.Millisecond // nolint: gosec
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(sleep):
	}
	return nil
}

func (c *chaosStore) PopInput(ctx context.Context, id string) (rules.Direction, error) {
	if err := chaosSleep(ctx); err != nil {
		return rules.DirectionNone, err
	}
	return c.Store.PopInput(ctx, id)
}

func (c *chaosStore) PushGameFrame(ctx context.Context, id string, f *rules.Frame) error {
	if err := chaosSleep(ctx); err != nil {
		return err
	}
	return c.Store.PushGameFrame(ctx, id, f)
}
