package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blogkeeper"

// RequestsInFlight tracks the number of HTTP calls currently awaiting a
// response. It is the progress-indicator signal of the transport.
var RequestsInFlight = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "requests_in_flight",
		Help:      "Number of backend requests currently in flight.",
	},
)

// RequestsTotal counts finished requests.
// Labels:
//   - method: HTTP verb
//   - outcome: "ok", "api_error", "network_error", or the transport status code
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of backend requests, labelled by method and outcome.",
	},
	[]string{"method", "outcome"},
)

// RequestDuration observes wall-clock time per request in seconds.
var RequestDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Backend request duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	},
)

// Progress receives request start/finish signals. Implementations must be
// cheap and non-blocking; the transport calls them on every request.
type Progress interface {
	Start()
	Done()
}

// PromProgress feeds the package metrics.
type PromProgress struct{}

func (PromProgress) Start() { RequestsInFlight.Inc() }
func (PromProgress) Done()  { RequestsInFlight.Dec() }

// NopProgress discards progress signals.
type NopProgress struct{}

func (NopProgress) Start() {}
func (NopProgress) Done()  {}
