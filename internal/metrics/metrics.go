// Package metrics содержит счетчики Prometheus для движка уведомлений.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Счетчики одного запуска диспетчера. Экспортируются на /metrics.
var (
	AlertsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bills_alerts_sent_total",
		Help: "Number of successfully delivered bill alerts by type.",
	}, []string{"alert_type"})

	AlertsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bills_alerts_skipped_total",
		Help: "Number of bills evaluated without producing an alert.",
	})

	AlertErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bills_alert_errors_total",
		Help: "Number of failed alert deliveries.",
	})

	DispatcherRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bills_dispatcher_runs_total",
		Help: "Number of alert dispatcher runs.",
	})
)
