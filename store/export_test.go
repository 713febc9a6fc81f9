package store

import "github.com/prometheus/client_golang/prometheus"

// ErrorCounter exposes the error counter of a method to the external tests.
func ErrorCounter(method string) prometheus.Counter {
	return storeErrors.WithLabelValues(method)
}
