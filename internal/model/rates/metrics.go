package rates

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	endpointHistorical = "historical"
	endpointLatest     = "latest"

	outcomeOK      = "ok"
	outcomeError   = "error"
	outcomeBadDate = "bad_date"
)

var counterRateLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "multiledger",
		Subsystem: "rates",
		Name:      "lookups_total",
	},
	[]string{"endpoint", "outcome"},
)

func observeLookup(endpoint, outcome string) {
	counterRateLookups.WithLabelValues(endpoint, outcome).Inc()
}
