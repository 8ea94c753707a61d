package band

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rc = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arfcn_resolve_counter",
		Help: "The number of resolved ARFCNs (per band).",
	}, []string{"band"})
	rec = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arfcn_resolve_error_count",
		Help: "The number of ARFCN inputs that could not be resolved (per error).",
	}, []string{"error"})
)

func resolveCounter(n Name) prometheus.Counter {
	return rc.With(prometheus.Labels{"band": string(n)})
}

func resolveErrorCounter(err error) prometheus.Counter {
	return rec.With(prometheus.Labels{"error": ErrorLabel(err)})
}
