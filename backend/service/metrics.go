package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var packMutations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pack_panel",
	Name:      "pack_mutations_total",
	Help:      "Pack create, update and delete attempts by outcome.",
}, []string{"operation", "result"})

func observe(operation string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrHasActiveServers):
		result = "rejected"
	default:
		result = "error"
	}
	packMutations.WithLabelValues(operation, result).Inc()
}
