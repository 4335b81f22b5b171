package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueryLatency is the duration of storage queries.
	QueryLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "dataaccess_query_latency",
			Help: "Duration of storage queries",
		},
		[]string{"dal", "query", "database", "collection"},
	)

	// QueryTotalRequests is the total number of storage requests.
	QueryTotalRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataaccess_query_total_requests",
			Help: "Total number of storage requests",
		},
		[]string{"dal", "query", "database", "collection"},
	)
)

// Track counts a query and returns a func that observes its latency when called.
func Track(dal, query, database, collection string) func() {
	QueryTotalRequests.WithLabelValues(dal, query, database, collection).Inc()
	t := prometheus.NewTimer(QueryLatency.WithLabelValues(dal, query, database, collection))
	return func() {
		t.ObserveDuration()
	}
}
