package server

import (
	"github.com/battlesnakeio/decaysnake/api"
	"github.com/battlesnakeio/decaysnake/controller"
	log "github.com/sirupsen/logrus"
)

var (
	apiListen = ":3005"
)

func init() {
	RootCmd.Flags().StringVarP(&apiListen, "listen", "l", apiListen, "api address to listen on")
}

func runAPI(store controller.Store) {
	srv := api.New(apiListen, controller.New(store))
	log.WithField("listen", apiListen).Info("Decaysnake api serving")
	if err := srv.WaitForExit(); err != nil {
		log.WithError(err).
			WithField("listen", apiListen).
			Fatal("api server failed")
	}
}
