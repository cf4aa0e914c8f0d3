package mock

import (
	"context"
	"sync"
	"time"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// Clock always returns FixedNow.
type Clock struct {
	FixedNow time.Time
}

func (c Clock) Now() time.Time {
	return c.FixedNow
}

// TransactionManager runs fn directly and counts invocations.
type TransactionManager struct {
	Calls int
}

func (m *TransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

// NotificationMailer records sent alerts.
type NotificationMailer struct {
	mu   sync.Mutex
	Sent []adapter.BudgetAlertEmail
	Err  error
}

func (m *NotificationMailer) SendBudgetAlert(_ context.Context, alert adapter.BudgetAlertEmail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, alert)
	return nil
}

// MetricsRecorder counts recorded events by label.
type MetricsRecorder struct {
	mu            sync.Mutex
	Evaluations   map[string]int
	Notifications map[entity.NotificationType]int
	Emails        map[string]int
}

// NewMetricsRecorder creates an empty recorder.
func NewMetricsRecorder() *MetricsRecorder {
	return &MetricsRecorder{
		Evaluations:   make(map[string]int),
		Notifications: make(map[entity.NotificationType]int),
		Emails:        make(map[string]int),
	}
}

func (m *MetricsRecorder) RecordEvaluation(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Evaluations[outcome]++
}

func (m *MetricsRecorder) RecordNotification(notificationType entity.NotificationType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notifications[notificationType]++
}

func (m *MetricsRecorder) RecordEmailDelivery(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Emails[outcome]++
}

// CategorySuggester returns a canned suggestion.
type CategorySuggester struct {
	Available  bool
	Suggestion *adapter.CategorySuggestion
	Err        error

	LastDescription string
}

func (s *CategorySuggester) Suggest(_ context.Context, description string, _ []string) (*adapter.CategorySuggestion, error) {
	s.LastDescription = description
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Suggestion, nil
}

func (s *CategorySuggester) IsAvailable() bool {
	return s.Available
}
