package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal *prometheus.CounterVec
	votesCastTotal    *prometheus.CounterVec
	registerOnce      sync.Once
)

// Register initializes Prometheus metrics on the default registry.
func Register() {
	registerOnce.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pollboard",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed by the API.",
		}, []string{"method", "path", "status"})

		votesCastTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pollboard",
			Name:      "votes_cast_total",
			Help:      "Total votes accepted, by voter kind.",
		}, []string{"voter"})
	})
}

// IncRequest increments the http_requests_total counter with the given labels.
func IncRequest(method, path string, status int) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// IncVote counts an accepted vote. voter is "user" or "anonymous".
func IncVote(voter string) {
	if votesCastTotal == nil {
		return
	}
	votesCastTotal.WithLabelValues(voter).Inc()
}
