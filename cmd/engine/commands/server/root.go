package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/battlesnakeio/decaysnake/controller"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	promEnable = true
	promListen = ":9000"
)

// RootCmd provides the root run command.
var RootCmd = &cobra.Command{
	Use:    "server",
	Short:  "serve the decaying-snake game engine",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	Run: func(c *cobra.Command, args []string) {
		store := newStore()
		go runAPI(store)
		runWorkers(context.Background(), store)
	},
}

func init() {
	RootCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	RootCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
}

// newStore builds the store shared by the api and the workers.
func newStore() controller.Store {
	var store controller.Store = controller.InMemStore()
	if workerChaos {
		log.Warn("using chaos mode")
		store = &chaosStore{Store: store}
	}
	return controller.InstrumentStore(store)
}

var promOnce sync.Once

func prometheus() {
	if !promEnable {
		log.Info("prometheus exporter not enabled")
		return
	}

	promOnce.Do(func() {
		log.WithField("addr", promListen).Info("starting prometheus exporter")
		go func() {
			r := http.NewServeMux()
			r.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(promListen, r); err != nil {
				log.WithError(err).Warn("prometheus failed to listen")
			}
		}()
	})
}
