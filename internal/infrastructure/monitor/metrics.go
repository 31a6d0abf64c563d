package monitor

import (
	"errors"

	"github.com/orderstack/orders-service/internal/core/domain/health"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	probesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthmonitor_probes_total",
			Help: "Probes issued by the health monitor, by outcome",
		},
		[]string{"outcome"},
	)

	statusGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "healthmonitor_status",
			Help: "Current health status as a one-hot gauge per status label",
		},
		[]string{"status"},
	)

	consecutiveFailures = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "healthmonitor_consecutive_failures",
			Help: "Current consecutive probe failure streak",
		},
	)
)

func init() {
	prometheus.MustRegister(probesTotal)
	prometheus.MustRegister(statusGauge)
	prometheus.MustRegister(consecutiveFailures)
}

func recordProbe(probeErr error) {
	outcome := "success"
	if probeErr != nil {
		outcome = "failure"
		var failure *health.ProbeFailure
		if errors.As(probeErr, &failure) {
			outcome = string(failure.Kind)
		}
	}
	probesTotal.WithLabelValues(outcome).Inc()
}

func recordState(state health.State) {
	for _, s := range []health.Status{health.StatusStarting, health.StatusHealthy, health.StatusUnhealthy} {
		v := 0.0
		if state.Status == s {
			v = 1.0
		}
		statusGauge.WithLabelValues(string(s)).Set(v)
	}
	consecutiveFailures.Set(float64(state.ConsecutiveFailures))
}
