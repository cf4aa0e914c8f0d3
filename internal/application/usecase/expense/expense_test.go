package expense

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
	"github.com/budgetwise/backend/internal/application/usecase/notification"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

var testNow = time.Date(2023, time.March, 15, 12, 0, 0, 0, time.UTC)

type failingTrigger struct{}

func (failingTrigger) Execute(context.Context, notification.TriggerBudgetAlertsInput) (*notification.TriggerBudgetAlertsOutput, error) {
	return nil, errors.New("evaluation failed")
}

func newTrigger(user *entity.User, budgets *mock.BudgetRepository, expenses *mock.ExpenseRepository, notifications *mock.NotificationRepository) AlertTrigger {
	metrics := mock.NewMetricsRecorder()
	evaluator := budget.NewEvaluateImpactUseCase(budgets, expenses, mock.Clock{FixedNow: testNow}, metrics)
	return notification.NewTriggerBudgetAlertsUseCase(
		evaluator, notifications, mock.NewUserRepository(user), &mock.NotificationMailer{}, metrics, notification.TriggerConfig{},
	)
}

func expenseErrorCode(t *testing.T, err error) domainerror.ExpenseErrorCode {
	t.Helper()
	var expErr *domainerror.ExpenseError
	require.True(t, errors.As(err, &expErr), "expected ExpenseError, got %v", err)
	return expErr.Code
}

func TestCreateExpense_RaisesAlerts(t *testing.T) {
	// given
	user := entity.NewUser("ana@example.com", "Ana", "hash", testNow)
	budgets := mock.NewBudgetRepository(entity.NewBudget(user.ID, "Food", decimal.NewFromInt(200), entity.BudgetPeriodMonthly,
		time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), nil))
	expenses := mock.NewExpenseRepository(entity.NewExpense(user.ID, decimal.NewFromInt(160), "groceries", testNow.AddDate(0, 0, -3), "Food"))
	notifications := mock.NewNotificationRepository()
	uc := NewCreateExpenseUseCase(expenses, newTrigger(user, budgets, expenses, notifications))

	// when
	out, err := uc.Execute(context.Background(), CreateExpenseInput{
		UserID:      user.ID,
		Amount:      decimal.NewFromInt(60),
		Description: " dinner ",
		Date:        testNow,
		Category:    "Food",
	})

	// then
	require.NoError(t, err)
	assert.Equal(t, "dinner", out.Expense.Description)
	require.Len(t, out.Notifications, 1)
	assert.Contains(t, out.Notifications[0].Message, "exceeded by $20.00")
	require.Len(t, out.BudgetStatus, 1)
	assert.Equal(t, "220", out.BudgetStatus[0].Spent.String())
	assert.Len(t, expenses.All(), 2)
}

func TestCreateExpense_TriggerFailureKeepsExpense(t *testing.T) {
	expenses := mock.NewExpenseRepository()
	uc := NewCreateExpenseUseCase(expenses, failingTrigger{})

	out, err := uc.Execute(context.Background(), CreateExpenseInput{
		UserID:      uuid.New(),
		Amount:      decimal.NewFromInt(5),
		Description: "coffee",
		Date:        testNow,
		Category:    "Food",
	})

	require.NoError(t, err)
	assert.NotNil(t, out.Expense)
	assert.Empty(t, out.Notifications)
	assert.Empty(t, out.BudgetStatus)
	assert.Len(t, expenses.All(), 1)
}

func TestCreateExpense_Validation(t *testing.T) {
	uc := NewCreateExpenseUseCase(mock.NewExpenseRepository(), failingTrigger{})

	_, err := uc.Execute(context.Background(), CreateExpenseInput{Amount: decimal.NewFromInt(-1), Description: "x", Category: "Food"})
	assert.Equal(t, domainerror.ErrCodeInvalidExpenseAmount, expenseErrorCode(t, err))

	_, err = uc.Execute(context.Background(), CreateExpenseInput{Amount: decimal.NewFromInt(1), Description: "x", Category: " "})
	assert.Equal(t, domainerror.ErrCodeMissingExpenseFields, expenseErrorCode(t, err))
}

func TestUpdateExpense_DoesNotDoubleCount(t *testing.T) {
	// given
	user := entity.NewUser("ana@example.com", "Ana", "hash", testNow)
	budgets := mock.NewBudgetRepository(entity.NewBudget(user.ID, "Food", decimal.NewFromInt(200), entity.BudgetPeriodMonthly,
		time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), nil))
	existing := entity.NewExpense(user.ID, decimal.NewFromInt(100), "groceries", testNow, "Food")
	expenses := mock.NewExpenseRepository(existing)
	notifications := mock.NewNotificationRepository()
	uc := NewUpdateExpenseUseCase(expenses, newTrigger(user, budgets, expenses, notifications))
	amount := decimal.NewFromInt(170)

	// when
	out, err := uc.Execute(context.Background(), UpdateExpenseInput{ExpenseID: existing.ID, UserID: user.ID, Amount: &amount})

	// then
	require.NoError(t, err)
	assert.Equal(t, "170", out.BudgetStatus[0].Spent.String())
	require.Len(t, out.Notifications, 1)
	assert.Equal(t, entity.NotificationTypeBudgetWarning, out.Notifications[0].Type)
	assert.Equal(t, "100", existing.Amount.String(), "stored entity replaced, not mutated")
}

func TestUpdateExpense_ForeignExpense(t *testing.T) {
	existing := entity.NewExpense(uuid.New(), decimal.NewFromInt(100), "groceries", testNow, "Food")
	uc := NewUpdateExpenseUseCase(mock.NewExpenseRepository(existing), failingTrigger{})

	_, err := uc.Execute(context.Background(), UpdateExpenseInput{ExpenseID: existing.ID, UserID: uuid.New()})

	assert.Equal(t, domainerror.ErrCodeExpenseNotFound, expenseErrorCode(t, err))
}

func TestListGetDeleteExpenses(t *testing.T) {
	userID := uuid.New()
	food := entity.NewExpense(userID, decimal.NewFromInt(10), "lunch", testNow, "Food")
	travel := entity.NewExpense(userID, decimal.NewFromInt(90), "train", testNow.AddDate(0, -1, 0), "Travel")
	repo := mock.NewExpenseRepository(food, travel, entity.NewExpense(uuid.New(), decimal.NewFromInt(1), "x", testNow, "Food"))
	ctx := context.Background()

	category := "Food"
	out, err := NewListExpensesUseCase(repo).Execute(ctx, entity.ExpenseFilter{UserID: userID, Category: &category})
	require.NoError(t, err)
	require.Len(t, out.Expenses, 1)
	assert.Equal(t, food.ID, out.Expenses[0].ID)

	start := testNow.AddDate(0, 0, -7)
	out, err = NewListExpensesUseCase(repo).Execute(ctx, entity.ExpenseFilter{UserID: userID, StartDate: &start})
	require.NoError(t, err)
	assert.Len(t, out.Expenses, 1)

	end := start.AddDate(0, 0, -1)
	_, err = NewListExpensesUseCase(repo).Execute(ctx, entity.ExpenseFilter{UserID: userID, StartDate: &start, EndDate: &end})
	assert.Equal(t, domainerror.ErrCodeInvalidExpenseFilter, expenseErrorCode(t, err))

	got, err := NewGetExpenseUseCase(repo).Execute(ctx, GetExpenseInput{ExpenseID: travel.ID, UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, "train", got.Description)

	require.NoError(t, NewDeleteExpenseUseCase(repo).Execute(ctx, DeleteExpenseInput{ExpenseID: travel.ID, UserID: userID}))
	_, err = NewGetExpenseUseCase(repo).Execute(ctx, GetExpenseInput{ExpenseID: travel.ID, UserID: userID})
	assert.Equal(t, domainerror.ErrCodeExpenseNotFound, expenseErrorCode(t, err))
}

func TestSuggestCategory(t *testing.T) {
	categoryErrorCode := func(t *testing.T, err error) domainerror.CategoryErrorCode {
		var catErr *domainerror.CategoryError
		require.True(t, errors.As(err, &catErr))
		return catErr.Code
	}

	t.Run("unavailable", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(&mock.CategorySuggester{Available: false})

		_, err := uc.Execute(context.Background(), SuggestCategoryInput{Description: "pizza"})

		assert.Equal(t, domainerror.ErrCodeSuggestionUnavailable, categoryErrorCode(t, err))
	})

	t.Run("missing description", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(&mock.CategorySuggester{Available: true})

		_, err := uc.Execute(context.Background(), SuggestCategoryInput{Description: "  "})

		assert.Equal(t, domainerror.ErrCodeMissingDescription, categoryErrorCode(t, err))
	})

	t.Run("normalizes the catalog name", func(t *testing.T) {
		suggester := &mock.CategorySuggester{
			Available:  true,
			Suggestion: &adapter.CategorySuggestion{Category: "food ", Confidence: 0.9},
		}
		uc := NewSuggestCategoryUseCase(suggester)

		out, err := uc.Execute(context.Background(), SuggestCategoryInput{Description: " pizza night "})

		require.NoError(t, err)
		assert.Equal(t, "Food", out.Category)
		assert.Equal(t, 0.9, out.Confidence)
		assert.Equal(t, "pizza night", suggester.LastDescription)
	})

	t.Run("unknown answer falls back", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(&mock.CategorySuggester{
			Available:  true,
			Suggestion: &adapter.CategorySuggestion{Category: "Pets", Confidence: 0.8},
		})

		out, err := uc.Execute(context.Background(), SuggestCategoryInput{Description: "dog food"})

		require.NoError(t, err)
		assert.Equal(t, entity.DefaultExpenseCategory, out.Category)
		assert.Zero(t, out.Confidence)
	})

	t.Run("provider failure", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(&mock.CategorySuggester{Available: true, Err: errors.New("quota")})

		_, err := uc.Execute(context.Background(), SuggestCategoryInput{Description: "dog food"})

		assert.Equal(t, domainerror.ErrCodeSuggestionFailed, categoryErrorCode(t, err))
	})
}
