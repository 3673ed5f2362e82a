package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// mutations counts protocol mutations by entity, operation and outcome.
var mutations = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "roleboard_mutations_total",
		Help: "Number of mutation protocol operations, by entity, operation and outcome.",
	},
	[]string{"entity", "operation", "outcome"},
)

// CountMutation records one mutation outcome.
func CountMutation(entity, operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}

	mutations.WithLabelValues(entity, operation, outcome).Inc()
}
