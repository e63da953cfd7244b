// Package api is the HTTP surface of the engine. It creates and starts games,
// accepts moves and serves frames as JSON, text, PNG or a websocket stream.
package api

import (
	"context"
	"net/http"

	"github.com/battlesnakeio/decaysnake/controller"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

// Controller is the set of session operations the API needs.
type Controller interface {
	Create(ctx context.Context, req *controller.CreateRequest) (*controller.CreateResponse, error)
	Start(ctx context.Context, id string) error
	Move(ctx context.Context, id string, req *controller.MoveRequest) error
	Status(ctx context.Context, id string) (*controller.StatusResponse, error)
	ListGameFrames(ctx context.Context, id string, limit, offset int) (*controller.ListGameFramesResponse, error)
}

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "decaysnake",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "Latency of API requests.",
	},
	[]string{"code", "method"},
)

func init() {
	prometheus.MustRegister(requestDuration)
}

// Server is the API server.
type Server struct {
	hs         *http.Server
	controller Controller
}

// New creates an API server listening on addr.
func New(addr string, c Controller) *Server {
	s := &Server{controller: c}

	router := httprouter.New()
	router.POST("/games", s.createGame)
	router.GET("/games/:id", s.status)
	router.POST("/games/:id/start", s.startGame)
	router.POST("/games/:id/move", s.moveGame)
	router.GET("/games/:id/frames", s.listFrames)
	router.GET("/games/:id/board", s.board)
	router.GET("/games/:id/image.png", s.image)
	router.GET("/socket/:id", s.framesSocket)

	handler := cors.Default().Handler(router)
	s.hs = &http.Server{
		Addr:    addr,
		Handler: promhttp.InstrumentHandlerDuration(requestDuration, handler),
	}
	return s
}

// Handler returns the root handler, useful for tests and embedding.
func (s *Server) Handler() http.Handler { return s.hs.Handler }

// WaitForExit serves until the server is shut down.
func (s *Server) WaitForExit() error {
	log.WithField("listen", s.hs.Addr).Info("decaysnake api listening")
	err := s.hs.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}
