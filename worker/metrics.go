package worker

import "github.com/prometheus/client_golang/prometheus"

var (
	ticksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "game",
			Name:      "ticks_total",
			Help:      "Game ticks played.",
		},
	)
	consumptionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "game",
			Name:      "consumptions_total",
			Help:      "Food eaten, by kind.",
		},
		[]string{"kind"},
	)
	placementFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "game",
			Name:      "placement_failures_total",
			Help:      "Placements that ran out of attempts, by kind.",
		},
		[]string{"kind"},
	)
	gamesOverTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "game",
			Name:      "games_over_total",
			Help:      "Sessions ended, by cause of death.",
		},
		[]string{"cause"},
	)
	scoreGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "arcade",
			Subsystem: "game",
			Name:      "score",
			Help:      "Score of the current session.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		ticksTotal,
		consumptionsTotal,
		placementFailuresTotal,
		gamesOverTotal,
		scoreGauge,
	)
}
