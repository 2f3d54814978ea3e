package focustrap

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricActivations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "focustrap",
		Name:      "activations_total",
		Help:      "Number of focus trap activations.",
	})
	metricDeactivations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "focustrap",
		Name:      "deactivations_total",
		Help:      "Number of focus trap deactivations.",
	})
	metricWraps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "focustrap",
		Name:      "wraps_total",
		Help:      "Tab presses redirected at a trap boundary, by direction.",
	}, []string{"direction"})
	metricActiveTraps = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "focustrap",
		Name:      "active_traps",
		Help:      "Number of currently active focus traps.",
	})
)
