package controller

import (
	"context"

	"github.com/battlesnakeio/decaysnake/rules"
	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentStore wraps all store methods to instrument the underlying calls.
func InstrumentStore(s Store) Store { return &metrics{s} }

var (
	storeCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "decaysnake",
			Subsystem: "store",
			Name:      "calls",
			Help:      "Calls processed by the store.",
		},
		[]string{"method"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(storeCalls.WithLabelValues(method))
	return func() { t.ObserveDuration() }
}

func init() {
	prometheus.MustRegister(storeCalls)
}

type metrics struct{ s Store }

func (m *metrics) Lock(ctx context.Context, key, token string) (string, error) {
	defer instrument("Lock")()
	return m.s.Lock(ctx, key, token)
}

func (m *metrics) Unlock(ctx context.Context, key, token string) error {
	defer instrument("Unlock")()
	return m.s.Unlock(ctx, key, token)
}

func (m *metrics) PopGameID(c context.Context) (string, error) {
	defer instrument("PopGameID")()
	return m.s.PopGameID(c)
}

func (m *metrics) CreateGame(c context.Context, s *Session, frames []*rules.Frame) error {
	defer instrument("CreateGame")()
	return m.s.CreateGame(c, s, frames)
}

func (m *metrics) GetGame(c context.Context, id string) (*Session, error) {
	defer instrument("GetGame")()
	return m.s.GetGame(c, id)
}

func (m *metrics) SetGameStatus(c context.Context, id string, status GameStatus) error {
	defer instrument("SetGameStatus")()
	return m.s.SetGameStatus(c, id, status)
}

func (m *metrics) PushInput(c context.Context, id string, d rules.Direction) error {
	defer instrument("PushInput")()
	return m.s.PushInput(c, id, d)
}

func (m *metrics) PopInput(c context.Context, id string) (rules.Direction, error) {
	defer instrument("PopInput")()
	return m.s.PopInput(c, id)
}

func (m *metrics) PushGameFrame(c context.Context, id string, f *rules.Frame) error {
	defer instrument("PushGameFrame")()
	return m.s.PushGameFrame(c, id, f)
}

func (m *metrics) ListGameFrames(c context.Context, id string, limit, offset int) ([]*rules.Frame, error) {
	defer instrument("ListGameFrames")()
	return m.s.ListGameFrames(c, id, limit, offset)
}
