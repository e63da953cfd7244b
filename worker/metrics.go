package worker

import "github.com/prometheus/client_golang/prometheus"

var (
	ticksProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "decaysnake",
		Subsystem: "worker",
		Name:      "ticks_total",
		Help:      "Game ticks processed by workers.",
	})
	gamesEnded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "decaysnake",
		Subsystem: "worker",
		Name:      "games_ended_total",
		Help:      "Games that reached a terminal status, by status.",
	}, []string{"status"})
)

func init() {
	prometheus.MustRegister(ticksProcessed, gamesEnded)
}
