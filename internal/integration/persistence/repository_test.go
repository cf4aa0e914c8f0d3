package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBudgetRepository_FindByUserAndCategories(t *testing.T) {
	ctx := context.Background()
	repo := NewBudgetRepository(newTestDB(t))
	userID := uuid.New()

	// given
	food := entity.NewBudget(userID, "Food", decimal.NewFromInt(200), entity.BudgetPeriodMonthly, day(2024, 1, 1), nil)
	transport := entity.NewBudget(userID, "Transport", decimal.NewFromInt(50), entity.BudgetPeriodWeekly, day(2024, 1, 1), nil)
	transport.CreatedAt = food.CreatedAt.Add(time.Second)
	other := entity.NewBudget(uuid.New(), "Food", decimal.NewFromInt(10), entity.BudgetPeriodDaily, day(2024, 1, 1), nil)
	for _, b := range []*entity.Budget{food, transport, other} {
		require.NoError(t, repo.Create(ctx, b))
	}

	// when
	budgets, err := repo.FindByUserAndCategories(ctx, userID, []string{"Food", "Transport", "Health"})

	// then
	require.NoError(t, err)
	require.Len(t, budgets, 2)
	assert.Equal(t, food.ID, budgets[0].ID)
	assert.Equal(t, transport.ID, budgets[1].ID)
	assert.True(t, budgets[0].Limit.Equal(decimal.NewFromInt(200)))

	empty, err := repo.FindByUserAndCategories(ctx, userID, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBudgetRepository_ScopedToOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewBudgetRepository(newTestDB(t))
	end := day(2024, 6, 30)
	budget := entity.NewBudget(uuid.New(), "Food", decimal.NewFromInt(200), entity.BudgetPeriodMonthly, day(2024, 1, 1), &end)
	require.NoError(t, repo.Create(ctx, budget))

	_, err := repo.FindByID(ctx, budget.ID, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrBudgetNotFound)

	found, err := repo.FindByID(ctx, budget.ID, budget.UserID)
	require.NoError(t, err)
	require.NotNil(t, found.EndDate)
	assert.True(t, found.EndDate.Equal(end))

	assert.ErrorIs(t, repo.Delete(ctx, budget.ID, uuid.New()), domainerror.ErrBudgetNotFound)
	require.NoError(t, repo.Delete(ctx, budget.ID, budget.UserID))
	_, err = repo.FindByID(ctx, budget.ID, budget.UserID)
	assert.ErrorIs(t, err, domainerror.ErrBudgetNotFound)
}

func TestBudgetRepository_UpdateClearsEndDate(t *testing.T) {
	ctx := context.Background()
	repo := NewBudgetRepository(newTestDB(t))
	end := day(2024, 6, 30)
	budget := entity.NewBudget(uuid.New(), "Food", decimal.NewFromInt(200), entity.BudgetPeriodMonthly, day(2024, 1, 1), &end)
	require.NoError(t, repo.Create(ctx, budget))

	budget.EndDate = nil
	budget.Limit = decimal.NewFromInt(300)
	require.NoError(t, repo.Update(ctx, budget))

	found, err := repo.FindByID(ctx, budget.ID, budget.UserID)
	require.NoError(t, err)
	assert.Nil(t, found.EndDate)
	assert.True(t, found.Limit.Equal(decimal.NewFromInt(300)))
}

func TestRepositories_KeepTimeOfDay(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	budgets := NewBudgetRepository(db)
	expenses := NewExpenseRepository(db)
	userID := uuid.New()

	// given
	end := day(2024, 6, 30).Add(24*time.Hour - time.Microsecond)
	budget := entity.NewBudget(userID, "Food", decimal.NewFromInt(200), entity.BudgetPeriodMonthly, day(2024, 1, 1), &end)
	require.NoError(t, budgets.Create(ctx, budget))

	spentAt := time.Date(2024, 6, 30, 21, 15, 30, 0, time.UTC)
	expense := entity.NewExpense(userID, decimal.NewFromInt(12), "late dinner", spentAt, "Food")
	require.NoError(t, expenses.Create(ctx, expense))

	// when
	foundBudget, err := budgets.FindByID(ctx, budget.ID, userID)
	require.NoError(t, err)
	foundExpense, err := expenses.FindByID(ctx, expense.ID, userID)
	require.NoError(t, err)
	inRange, err := expenses.FindByUserCategoryAndRange(ctx, userID, "Food", day(2024, 6, 30), end)
	require.NoError(t, err)

	// then
	require.NotNil(t, foundBudget.EndDate)
	assert.True(t, foundBudget.EndDate.Equal(end), "end date %s", foundBudget.EndDate)
	assert.True(t, foundBudget.StartDate.Equal(day(2024, 1, 1)))
	assert.True(t, foundExpense.Date.Equal(spentAt), "expense date %s", foundExpense.Date)
	require.Len(t, inRange, 1)
	assert.Equal(t, expense.ID, inRange[0].ID)
}

func TestExpenseRepository_RangeIsInclusive(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(newTestDB(t))
	userID := uuid.New()
	start := day(2024, 3, 1)
	end := day(2024, 3, 31)

	onStart := entity.NewExpense(userID, decimal.NewFromInt(10), "start", start, "Food")
	onEnd := entity.NewExpense(userID, decimal.NewFromInt(20), "end", end, "Food")
	before := entity.NewExpense(userID, decimal.NewFromInt(30), "before", start.Add(-time.Second), "Food")
	after := entity.NewExpense(userID, decimal.NewFromInt(40), "after", end.Add(time.Second), "Food")
	otherCategory := entity.NewExpense(userID, decimal.NewFromInt(50), "bus", day(2024, 3, 10), "Transport")
	for _, e := range []*entity.Expense{onStart, onEnd, before, after, otherCategory} {
		require.NoError(t, repo.Create(ctx, e))
	}

	expenses, err := repo.FindByUserCategoryAndRange(ctx, userID, "Food", start, end)

	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, onStart.ID, expenses[0].ID)
	assert.Equal(t, onEnd.ID, expenses[1].ID)
}

func TestExpenseRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(newTestDB(t))
	userID := uuid.New()

	older := entity.NewExpense(userID, decimal.NewFromInt(10), "older", day(2024, 2, 1), "Food")
	newer := entity.NewExpense(userID, decimal.NewFromInt(20), "newer", day(2024, 3, 1), "Food")
	bus := entity.NewExpense(userID, decimal.NewFromInt(5), "bus", day(2024, 3, 2), "Transport")
	for _, e := range []*entity.Expense{older, newer, bus} {
		require.NoError(t, repo.Create(ctx, e))
	}

	category := "Food"
	all, err := repo.List(ctx, entity.ExpenseFilter{UserID: userID, Category: &category})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)

	from := day(2024, 2, 15)
	recent, err := repo.List(ctx, entity.ExpenseFilter{UserID: userID, StartDate: &from})
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestIncomeRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewIncomeRepository(newTestDB(t))
	userID := uuid.New()
	note := "March"

	income := entity.NewIncome(userID, decimal.NewFromInt(3000), "Employer", &note, day(2024, 3, 1), "Salary")
	require.NoError(t, repo.Create(ctx, income))

	income.Amount = decimal.NewFromInt(3200)
	income.Description = nil
	require.NoError(t, repo.Update(ctx, income))

	found, err := repo.FindByID(ctx, income.ID, userID)
	require.NoError(t, err)
	assert.True(t, found.Amount.Equal(decimal.NewFromInt(3200)))
	assert.Nil(t, found.Description)

	list, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, income.ID, userID))
	assert.ErrorIs(t, repo.Delete(ctx, income.ID, userID), domainerror.ErrIncomeNotFound)
}

func TestSimulationRepository_ItemsKeepStoredOrder(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewSimulationRepository(db)
	userID := uuid.New()

	sim := entity.NewSimulation(userID, "Trip", []*entity.SimulatedExpense{
		{Amount: decimal.NewFromInt(300), Description: "flight", Category: "Travel", Date: day(2024, 5, 1)},
		{Amount: decimal.NewFromInt(120), Description: "hotel", Category: "Travel", Date: day(2024, 5, 2)},
		{Amount: decimal.NewFromInt(40), Description: "dinner", Category: "Food", Date: day(2024, 5, 2)},
	})
	require.NoError(t, repo.Create(ctx, sim))

	found, err := repo.FindByIDWithItems(ctx, sim.ID, userID)
	require.NoError(t, err)
	require.Len(t, found.Items, 3)
	assert.Equal(t, "flight", found.Items[0].Description)
	assert.Equal(t, "hotel", found.Items[1].Description)
	assert.Equal(t, "dinner", found.Items[2].Description)
	assert.True(t, found.Total().Equal(decimal.NewFromInt(460)))

	_, err = repo.FindByIDWithItems(ctx, sim.ID, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrSimulationNotFound)

	require.NoError(t, repo.Delete(ctx, sim.ID, userID))
	var remaining int64
	require.NoError(t, db.Model(&model.SimulatedExpenseModel{}).Where("simulation_id = ?", sim.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestNotificationRepository_ReadFlags(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(newTestDB(t))
	userID := uuid.New()

	first := entity.NewNotification(userID, entity.NotificationTypeBudgetWarning, "warning")
	second := entity.NewNotification(userID, entity.NotificationTypeBudgetExceeded, "exceeded")
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	list, err := repo.FindByUserID(ctx, userID, false, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	require.NoError(t, repo.MarkRead(ctx, first.ID, userID))
	assert.ErrorIs(t, repo.MarkRead(ctx, first.ID, uuid.New()), domainerror.ErrNotificationNotFound)

	unread, err := repo.FindByUserID(ctx, userID, true, 10)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, second.ID, unread[0].ID)

	updated, err := repo.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	count, err := repo.CountUnread(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	repo := NewExpenseRepository(db)
	userID := uuid.New()

	err := tm.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := repo.Create(ctx, entity.NewExpense(userID, decimal.NewFromInt(10), "a", day(2024, 1, 1), "Food")); err != nil {
			return err
		}
		return domainerror.ErrEmptySimulation
	})
	assert.ErrorIs(t, err, domainerror.ErrEmptySimulation)

	expenses, err := repo.List(ctx, entity.ExpenseFilter{UserID: userID})
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestUserRepository_RoundTripsPreferences(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := entity.NewUser("ana@example.com", "Ana", "hash", time.Now().UTC())
	user.BudgetAlerts = false
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.True(t, found.EmailNotifications)
	assert.False(t, found.BudgetAlerts)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domainerror.ErrUserNotFound)

	found.Name = "Ana Maria"
	found.EmailNotifications = false
	found.PasswordHash = "ignored"
	require.NoError(t, repo.UpdateProfile(ctx, found))

	reloaded, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", reloaded.Name)
	assert.False(t, reloaded.EmailNotifications)
	assert.Equal(t, "hash", reloaded.PasswordHash)

	stranger := entity.NewUser("bruno@example.com", "Bruno", "hash", time.Now())
	assert.ErrorIs(t, repo.UpdateProfile(ctx, stranger), domainerror.ErrUserNotFound)
}

func TestRefreshTokenStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewRefreshTokenStore(newTestDB(t))
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	require.NoError(t, store.Save(ctx, "token-a", userID, now.Add(time.Hour), now))

	active, err := store.IsActive(ctx, "token-a", now)
	require.NoError(t, err)
	assert.True(t, active)

	// Expired at the store's notion of now
	active, err = store.IsActive(ctx, "token-a", now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.False(t, active)

	active, err = store.IsActive(ctx, "never-issued", now)
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, store.Revoke(ctx, "token-a", now))
	require.NoError(t, store.Revoke(ctx, "token-a", now.Add(time.Minute)))
	require.NoError(t, store.Revoke(ctx, "never-issued", now))

	active, err = store.IsActive(ctx, "token-a", now)
	require.NoError(t, err)
	assert.False(t, active)
}
