package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mmynk/tipsplit/internal/diag"
)

type metrics struct {
	requests     *prometheus.CounterVec
	faults       prometheus.Counter
	calculations *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tipsplit_requests_total",
			Help: "HTTP requests by route.",
		}, []string{"path"}),
		faults: f.NewCounter(prometheus.CounterOpts{
			Name: "tipsplit_render_faults_total",
			Help: "Rendering faults caught by the error boundary.",
		}),
		calculations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tipsplit_calculations_total",
			Help: "Totals computed, by surface.",
		}, []string{"source"}),
	}
}

// route maps a request path to a bounded label value.
func route(path string) string {
	switch path {
	case "/", "/healthz", "/metrics", CalculateProcedure:
		return path
	default:
		return "other"
	}
}

// countingReporter counts faults before passing them on.
type countingReporter struct {
	diag.Reporter
	faults prometheus.Counter
}

func (r countingReporter) Fault(err error, location string) {
	r.faults.Inc()
	r.Reporter.Fault(err, location)
}
