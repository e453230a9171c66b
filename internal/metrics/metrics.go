// Package metrics exposes Prometheus instruments for tree mutations and
// branch loading.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathtree_mutations_total",
		Help: "Tree mutations by operation and outcome",
	}, []string{"operation", "outcome"})

	cascadedNodesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathtree_cascaded_nodes_total",
		Help: "Descendant records rewritten by cascading path updates",
	}, []string{"operation"})

	branchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathtree_branch_nodes",
		Help:    "Nodes in a reconstructed branch",
		Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
	})
)

// ObserveMutation counts one create, update, remove or import.
func ObserveMutation(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	mutationsTotal.WithLabelValues(operation, outcome).Inc()
}

// ObserveCascade records how many descendants one mutation rewrote.
func ObserveCascade(operation string, nodes int) {
	if nodes > 0 {
		cascadedNodesTotal.WithLabelValues(operation).Add(float64(nodes))
	}
}

// ObserveBranch records the size of a reconstructed branch.
func ObserveBranch(nodes int) {
	branchSize.Observe(float64(nodes))
}
