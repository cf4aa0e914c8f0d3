package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/adapter/mock"
	"github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/domain/entity"
)

var testNow = time.Date(2023, time.March, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	user          *entity.User
	budgets       *mock.BudgetRepository
	expenses      *mock.ExpenseRepository
	notifications *mock.NotificationRepository
	users         *mock.UserRepository
	mailer        *mock.NotificationMailer
	metrics       *mock.MetricsRecorder
}

func newFixture() *fixture {
	user := entity.NewUser("ana@example.com", "Ana", "hash", testNow)
	return &fixture{
		user:          user,
		budgets:       mock.NewBudgetRepository(),
		expenses:      mock.NewExpenseRepository(),
		notifications: mock.NewNotificationRepository(),
		users:         mock.NewUserRepository(user),
		mailer:        &mock.NotificationMailer{},
		metrics:       mock.NewMetricsRecorder(),
	}
}

func (f *fixture) useCase(config TriggerConfig) *TriggerBudgetAlertsUseCase {
	evaluator := budget.NewEvaluateImpactUseCase(f.budgets, f.expenses, mock.Clock{FixedNow: testNow}, f.metrics)
	return NewTriggerBudgetAlertsUseCase(evaluator, f.notifications, f.users, f.mailer, f.metrics, config)
}

func (f *fixture) addBudget(category string, limit int64, period entity.BudgetPeriod) *entity.Budget {
	b := entity.NewBudget(f.user.ID, category, decimal.NewFromInt(limit), period,
		time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), nil)
	_ = f.budgets.Create(context.Background(), b)
	return b
}

// record persists an expense the way the create handler does before triggering.
func (f *fixture) record(category string, amount int64, date time.Time) *entity.Expense {
	e := entity.NewExpense(f.user.ID, decimal.NewFromInt(amount), "test", date, category)
	_ = f.expenses.Create(context.Background(), e)
	return e
}

var emailOn = TriggerConfig{EmailEnabled: true, SenderName: "Budget Alerts", SenderEmail: "alerts@example.com"}

func TestTrigger_ExceededAlert(t *testing.T) {
	// given
	f := newFixture()
	f.addBudget("Food", 200, entity.BudgetPeriodMonthly)
	f.record("Food", 160, time.Date(2023, time.March, 3, 0, 0, 0, 0, time.UTC))
	expense := f.record("Food", 60, testNow)

	// when
	out, err := f.useCase(emailOn).Execute(context.Background(), TriggerBudgetAlertsInput{UserID: f.user.ID, Expense: expense})

	// then
	require.NoError(t, err)
	require.Len(t, out.Notifications, 1)
	n := out.Notifications[0]
	assert.Equal(t, entity.NotificationTypeBudgetExceeded, n.Type)
	assert.False(t, n.IsRead)
	assert.Equal(t, "Your monthly budget for Food has been exceeded by $20.00. You've spent $220.00 of your $200.00 limit.", n.Message)
	require.Len(t, out.BudgetStatus, 1)
	assert.Equal(t, "220", out.BudgetStatus[0].Spent.String())
	assert.Len(t, f.notifications.All(), 1)

	require.Len(t, f.mailer.Sent, 1)
	sent := f.mailer.Sent[0]
	assert.Equal(t, "ana@example.com", sent.To)
	assert.Equal(t, "alerts@example.com", sent.SenderEmail)
	assert.Equal(t, n.Message, sent.Message)
	assert.Equal(t, 1, f.metrics.Notifications[entity.NotificationTypeBudgetExceeded])
	assert.Equal(t, 1, f.metrics.Emails[adapter.OutcomeSuccess])
}

func TestTrigger_WarningAlert(t *testing.T) {
	// given
	f := newFixture()
	f.addBudget("Food", 200, entity.BudgetPeriodMonthly)
	f.record("Food", 100, time.Date(2023, time.March, 3, 0, 0, 0, 0, time.UTC))
	expense := f.record("Food", 60, testNow)

	// when
	out, err := f.useCase(emailOn).Execute(context.Background(), TriggerBudgetAlertsInput{UserID: f.user.ID, Expense: expense})

	// then
	require.NoError(t, err)
	require.Len(t, out.Notifications, 1)
	assert.Equal(t, entity.NotificationTypeBudgetWarning, out.Notifications[0].Type)
	assert.Equal(t,
		"You've used 80% of your monthly budget for Food. You've spent $160.00 of your $200.00 limit ($40.00 remaining).",
		out.Notifications[0].Message)
}

func TestTrigger_BelowThresholdRaisesNothing(t *testing.T) {
	// given
	f := newFixture()
	f.addBudget("Food", 200, entity.BudgetPeriodMonthly)
	f.record("Food", 50, time.Date(2023, time.March, 3, 0, 0, 0, 0, time.UTC))
	expense := f.record("Food", 50, testNow)

	// when
	out, err := f.useCase(emailOn).Execute(context.Background(), TriggerBudgetAlertsInput{UserID: f.user.ID, Expense: expense})

	// then
	require.NoError(t, err)
	assert.Empty(t, out.Notifications)
	require.Len(t, out.BudgetStatus, 1)
	assert.Equal(t, "50", out.BudgetStatus[0].Percentage.String())
	assert.Empty(t, f.notifications.All())
	assert.Empty(t, f.mailer.Sent)
}

func TestTrigger_UpdatedExpenseIsNotDoubleCounted(t *testing.T) {
	// given
	f := newFixture()
	f.addBudget("Food", 200, entity.BudgetPeriodMonthly)
	expense := f.record("Food", 150, testNow)

	// when
	out, err := f.useCase(emailOn).Execute(context.Background(), TriggerBudgetAlertsInput{UserID: f.user.ID, Expense: expense})

	// then
	require.NoError(t, err)
	assert.Empty(t, out.Notifications)
	assert.Equal(t, "150", out.BudgetStatus[0].Spent.String())
}

func TestTrigger_OverlappingBudgetsRaiseOneAlertEach(t *testing.T) {
	// given
	f := newFixture()
	f.addBudget("Food", 500, entity.BudgetPeriodMonthly)
	f.addBudget("Food", 20, entity.BudgetPeriodDaily)
	f.addBudget("Food", 100, entity.BudgetPeriodWeekly)
	expense := f.record("Food", 90, testNow)

	// when
	out, err := f.useCase(TriggerConfig{}).Execute(context.Background(), TriggerBudgetAlertsInput{UserID: f.user.ID, Expense: expense})

	// then
	require.NoError(t, err)
	assert.Len(t, out.BudgetStatus, 3)
	require.Len(t, out.Notifications, 2)
	assert.Equal(t, entity.NotificationTypeBudgetExceeded, out.Notifications[0].Type)
	assert.Equal(t, entity.NotificationTypeBudgetWarning, out.Notifications[1].Type)
	assert.Empty(t, f.mailer.Sent, "email disabled by config")
}

func TestTrigger_RespectsUserOptOut(t *testing.T) {
	// given
	f := newFixture()
	f.user.BudgetAlerts = false
	f.addBudget("Food", 10, entity.BudgetPeriodMonthly)
	expense := f.record("Food", 50, testNow)

	// when
	out, err := f.useCase(emailOn).Execute(context.Background(), TriggerBudgetAlertsInput{UserID: f.user.ID, Expense: expense})

	// then
	require.NoError(t, err)
	assert.Len(t, out.Notifications, 1)
	assert.Empty(t, f.mailer.Sent)
}

func TestTrigger_EmailFailureIsSwallowed(t *testing.T) {
	// given
	f := newFixture()
	f.mailer.Err = errors.New("provider down")
	f.addBudget("Food", 10, entity.BudgetPeriodMonthly)
	expense := f.record("Food", 50, testNow)

	// when
	out, err := f.useCase(emailOn).Execute(context.Background(), TriggerBudgetAlertsInput{UserID: f.user.ID, Expense: expense})

	// then
	require.NoError(t, err)
	assert.Len(t, out.Notifications, 1)
	assert.Equal(t, 1, f.metrics.Emails[adapter.OutcomeFailure])
}

func TestTrigger_PersistenceFailureSkipsOnlyThatBudget(t *testing.T) {
	// given
	f := newFixture()
	f.notifications.CreateErr = errors.New("insert failed")
	f.notifications.FailCreates = 1
	f.addBudget("Food", 10, entity.BudgetPeriodMonthly)
	f.addBudget("Food", 20, entity.BudgetPeriodWeekly)
	expense := f.record("Food", 50, testNow)

	// when
	out, err := f.useCase(emailOn).Execute(context.Background(), TriggerBudgetAlertsInput{UserID: f.user.ID, Expense: expense})

	// then
	require.NoError(t, err)
	assert.Len(t, out.BudgetStatus, 2)
	require.Len(t, out.Notifications, 1)
	assert.Len(t, f.notifications.All(), 1)
	assert.Len(t, f.mailer.Sent, 1)
}

func TestTrigger_MissingRecipientStillPersists(t *testing.T) {
	// given
	f := newFixture()
	f.users.Err = errors.New("user lookup failed")
	f.addBudget("Food", 10, entity.BudgetPeriodMonthly)
	expense := f.record("Food", 50, testNow)

	// when
	out, err := f.useCase(emailOn).Execute(context.Background(), TriggerBudgetAlertsInput{UserID: f.user.ID, Expense: expense})

	// then
	require.NoError(t, err)
	assert.Len(t, out.Notifications, 1)
	assert.Empty(t, f.mailer.Sent)
}

func TestTrigger_EvaluationFailureIsReturned(t *testing.T) {
	// given
	f := newFixture()
	f.budgets.Err = errors.New("database unavailable")
	expense := f.record("Food", 50, testNow)

	// when
	_, err := f.useCase(emailOn).Execute(context.Background(), TriggerBudgetAlertsInput{UserID: f.user.ID, Expense: expense})

	// then
	assert.ErrorIs(t, err, f.budgets.Err)
}

func TestTrigger_UnrelatedCategory(t *testing.T) {
	f := newFixture()
	f.addBudget("Travel", 10, entity.BudgetPeriodMonthly)
	expense := f.record("Food", 50, testNow)

	out, err := f.useCase(emailOn).Execute(context.Background(), TriggerBudgetAlertsInput{UserID: f.user.ID, Expense: expense})

	require.NoError(t, err)
	assert.Empty(t, out.BudgetStatus)
	assert.Empty(t, out.Notifications)
}

func TestNotificationQueries(t *testing.T) {
	userID := uuid.New()
	first := entity.NewNotification(userID, entity.NotificationTypeBudgetWarning, "first")
	second := entity.NewNotification(userID, entity.NotificationTypeBudgetExceeded, "second")
	other := entity.NewNotification(uuid.New(), entity.NotificationTypeBudgetWarning, "other")
	repo := mock.NewNotificationRepository(first, second, other)
	ctx := context.Background()

	t.Run("list returns newest first", func(t *testing.T) {
		out, err := NewListNotificationsUseCase(repo).Execute(ctx, ListNotificationsInput{UserID: userID})
		require.NoError(t, err)
		require.Len(t, out.Notifications, 2)
		assert.Equal(t, "second", out.Notifications[0].Message)
	})

	t.Run("list rejects an oversized limit", func(t *testing.T) {
		_, err := NewListNotificationsUseCase(repo).Execute(ctx, ListNotificationsInput{UserID: userID, Limit: MaxListLimit + 1})
		require.Error(t, err)
	})

	t.Run("mark read of a foreign notification is not found", func(t *testing.T) {
		err := NewMarkReadUseCase(repo).Execute(ctx, MarkReadInput{NotificationID: other.ID, UserID: userID})
		require.Error(t, err)
		assert.False(t, other.IsRead)
	})

	t.Run("mark read then count", func(t *testing.T) {
		require.NoError(t, NewMarkReadUseCase(repo).Execute(ctx, MarkReadInput{NotificationID: first.ID, UserID: userID}))

		count, err := NewCountUnreadUseCase(repo).Execute(ctx, CountUnreadInput{UserID: userID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count.Count)

		unread, err := NewListNotificationsUseCase(repo).Execute(ctx, ListNotificationsInput{UserID: userID, UnreadOnly: true})
		require.NoError(t, err)
		require.Len(t, unread.Notifications, 1)
		assert.Equal(t, second.ID, unread.Notifications[0].ID)
	})

	t.Run("mark all read", func(t *testing.T) {
		out, err := NewMarkAllReadUseCase(repo).Execute(ctx, MarkAllReadInput{UserID: userID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), out.Updated)

		count, err := NewCountUnreadUseCase(repo).Execute(ctx, CountUnreadInput{UserID: userID})
		require.NoError(t, err)
		assert.Zero(t, count.Count)
		assert.False(t, other.IsRead)
	})
}
