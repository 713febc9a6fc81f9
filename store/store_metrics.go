package store

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentStore wraps all store methods to instrument the underlying calls.
func InstrumentStore(s Store) Store { return &metrics{s} }

var (
	storeCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "arcade",
			Subsystem: "store",
			Name:      "calls",
			Help:      "Calls processed by the high score store.",
		},
		[]string{"method"},
	)
	storeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "store",
			Name:      "errors_total",
			Help:      "Store calls that returned an error other than not found.",
		},
		[]string{"method"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(storeCalls.WithLabelValues(method))
	return func() { t.ObserveDuration() }
}

func countError(method string, err error) error {
	if err != nil && err != ErrNotFound {
		storeErrors.WithLabelValues(method).Inc()
	}
	return err
}

func init() {
	prometheus.MustRegister(storeCalls, storeErrors)
}

type metrics struct{ s Store }

func (m *metrics) GetHighScore(c context.Context) (int, error) {
	defer instrument("GetHighScore")()
	score, err := m.s.GetHighScore(c)
	return score, countError("GetHighScore", err)
}

func (m *metrics) PutHighScore(c context.Context, score int) error {
	defer instrument("PutHighScore")()
	return countError("PutHighScore", m.s.PutHighScore(c, score))
}

func (m *metrics) ClearHighScore(c context.Context) error {
	defer instrument("ClearHighScore")()
	return countError("ClearHighScore", m.s.ClearHighScore(c))
}

// Close closes the wrapped store when it holds resources.
func (m *metrics) Close() error {
	if c, ok := m.s.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
