// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/budgetwise/backend/internal/domain/entity"

// Outcome labels reported to the metrics recorder.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// MetricsRecorder collects counters about budget evaluation and alert delivery.
type MetricsRecorder interface {
	// RecordEvaluation counts one budget evaluated with the given outcome.
	RecordEvaluation(outcome string)

	// RecordNotification counts one persisted notification of the given type.
	RecordNotification(notificationType entity.NotificationType)

	// RecordEmailDelivery counts one alert e-mail attempt with the given outcome.
	RecordEmailDelivery(outcome string)
}
