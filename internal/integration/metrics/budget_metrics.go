// Package metrics exposes Prometheus counters for budget evaluation and alert delivery.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// BudgetMetrics implements adapter.MetricsRecorder with Prometheus collectors.
type BudgetMetrics struct {
	evaluations   *prometheus.CounterVec
	notifications *prometheus.CounterVec
	emails        *prometheus.CounterVec
}

// NewBudgetMetrics registers the budget collectors on reg.
func NewBudgetMetrics(reg prometheus.Registerer) *BudgetMetrics {
	factory := promauto.With(reg)

	return &BudgetMetrics{
		evaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetwise_budget_evaluations_total",
				Help: "Total number of budget usage evaluations performed",
			},
			[]string{"outcome"},
		),

		notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetwise_notifications_created_total",
				Help: "Total number of budget notifications persisted",
			},
			[]string{"type"},
		),

		emails: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetwise_alert_emails_total",
				Help: "Total number of budget alert e-mail deliveries attempted",
			},
			[]string{"outcome"},
		),
	}
}

// RecordEvaluation counts one budget evaluated with the given outcome.
func (m *BudgetMetrics) RecordEvaluation(outcome string) {
	m.evaluations.WithLabelValues(outcome).Inc()
}

// RecordNotification counts one persisted notification of the given type.
func (m *BudgetMetrics) RecordNotification(notificationType entity.NotificationType) {
	m.notifications.WithLabelValues(string(notificationType)).Inc()
}

// RecordEmailDelivery counts one alert e-mail attempt with the given outcome.
func (m *BudgetMetrics) RecordEmailDelivery(outcome string) {
	m.emails.WithLabelValues(outcome).Inc()
}

var _ adapter.MetricsRecorder = (*BudgetMetrics)(nil)
