package simulation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwise/backend/internal/application/adapter/mock"
	"github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

var testNow = time.Date(2023, time.March, 15, 12, 0, 0, 0, time.UTC)

func simulationErrorCode(t *testing.T, err error) domainerror.SimulationErrorCode {
	t.Helper()
	var simErr *domainerror.SimulationError
	require.True(t, errors.As(err, &simErr), "expected SimulationError, got %v", err)
	return simErr.Code
}

func items(amounts ...int64) []ItemInput {
	out := make([]ItemInput, 0, len(amounts))
	for i, a := range amounts {
		out = append(out, ItemInput{
			Amount:      decimal.NewFromInt(a),
			Description: "item",
			Category:    []string{"Food", "Travel"}[i%2],
			Date:        testNow.AddDate(0, 0, -i),
		})
	}
	return out
}

func TestCreateSimulation(t *testing.T) {
	userID := uuid.New()

	t.Run("requires a name", func(t *testing.T) {
		uc := NewCreateSimulationUseCase(mock.NewSimulationRepository())

		_, err := uc.Execute(context.Background(), CreateSimulationInput{UserID: userID, Name: " "})

		assert.Equal(t, domainerror.ErrCodeMissingSimulationFields, simulationErrorCode(t, err))
	})

	t.Run("rejects invalid items", func(t *testing.T) {
		uc := NewCreateSimulationUseCase(mock.NewSimulationRepository())
		in := items(10)
		in[0].Amount = decimal.Zero

		_, err := uc.Execute(context.Background(), CreateSimulationInput{UserID: userID, Name: "Trip", Items: in})

		assert.Equal(t, domainerror.ErrCodeInvalidSimulatedExpense, simulationErrorCode(t, err))
	})

	t.Run("keeps item order", func(t *testing.T) {
		repo := mock.NewSimulationRepository()
		uc := NewCreateSimulationUseCase(repo)

		out, err := uc.Execute(context.Background(), CreateSimulationInput{UserID: userID, Name: "Trip", Items: items(10, 20, 30)})

		require.NoError(t, err)
		require.Len(t, out.Simulation.Items, 3)
		for i, item := range out.Simulation.Items {
			assert.Equal(t, i, item.Position)
			assert.Equal(t, out.Simulation.ID, item.SimulationID)
		}
		assert.Equal(t, "60", out.Simulation.Total().String())
	})
}

func TestConvertSimulation(t *testing.T) {
	userID := uuid.New()

	t.Run("creates one expense per item in order", func(t *testing.T) {
		// given
		created, err := NewCreateSimulationUseCase(mock.NewSimulationRepository()).Execute(context.Background(),
			CreateSimulationInput{UserID: userID, Name: "Trip", Items: items(10, 20, 30)})
		require.NoError(t, err)
		sim := created.Simulation
		expenses := mock.NewExpenseRepository()
		tx := &mock.TransactionManager{}
		uc := NewConvertSimulationUseCase(mock.NewSimulationRepository(sim), expenses, tx)

		// when
		out, err := uc.Execute(context.Background(), ConvertSimulationInput{SimulationID: sim.ID, UserID: userID})

		// then
		require.NoError(t, err)
		require.Len(t, out.Expenses, 3)
		for i, e := range out.Expenses {
			item := sim.Items[i]
			assert.True(t, item.Amount.Equal(e.Amount))
			assert.Equal(t, item.Description, e.Description)
			assert.Equal(t, item.Category, e.Category)
			assert.Equal(t, item.Date, e.Date)
			assert.Equal(t, userID, e.UserID)
		}
		assert.Len(t, expenses.All(), 3)
		assert.Equal(t, 1, tx.Calls)
	})

	t.Run("empty simulation", func(t *testing.T) {
		sim := entity.NewSimulation(userID, "Nothing", nil)
		expenses := mock.NewExpenseRepository()
		uc := NewConvertSimulationUseCase(mock.NewSimulationRepository(sim), expenses, &mock.TransactionManager{})

		_, err := uc.Execute(context.Background(), ConvertSimulationInput{SimulationID: sim.ID, UserID: userID})

		assert.Equal(t, domainerror.ErrCodeEmptySimulation, simulationErrorCode(t, err))
		assert.ErrorIs(t, err, domainerror.ErrEmptySimulation)
		assert.Empty(t, expenses.All())
	})

	t.Run("missing or foreign simulation", func(t *testing.T) {
		sim := entity.NewSimulation(uuid.New(), "Someone else", nil)
		uc := NewConvertSimulationUseCase(mock.NewSimulationRepository(sim), mock.NewExpenseRepository(), &mock.TransactionManager{})

		_, err := uc.Execute(context.Background(), ConvertSimulationInput{SimulationID: sim.ID, UserID: userID})
		assert.Equal(t, domainerror.ErrCodeSimulationNotFound, simulationErrorCode(t, err))

		_, err = uc.Execute(context.Background(), ConvertSimulationInput{SimulationID: uuid.New(), UserID: userID})
		assert.Equal(t, domainerror.ErrCodeSimulationNotFound, simulationErrorCode(t, err))
	})

	t.Run("creation failure is returned", func(t *testing.T) {
		created, err := NewCreateSimulationUseCase(mock.NewSimulationRepository()).Execute(context.Background(),
			CreateSimulationInput{UserID: userID, Name: "Trip", Items: items(10, 20)})
		require.NoError(t, err)
		expenses := mock.NewExpenseRepository()
		expenses.CreateErr = errors.New("disk full")
		expenses.CreateErrAfter = 1
		uc := NewConvertSimulationUseCase(mock.NewSimulationRepository(created.Simulation), expenses, &mock.TransactionManager{})

		out, err := uc.Execute(context.Background(), ConvertSimulationInput{SimulationID: created.Simulation.ID, UserID: userID})

		assert.Nil(t, out)
		assert.ErrorIs(t, err, expenses.CreateErr)
	})
}

func TestConvertSimulation_SpendsLikeRecordedExpenses(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	clock := mock.Clock{FixedNow: testNow}
	food := entity.NewBudget(userID, "Food", decimal.NewFromInt(100), entity.BudgetPeriodMonthly,
		time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), nil)
	groceries := func() *entity.Expense {
		return entity.NewExpense(userID, decimal.NewFromInt(70), "groceries", testNow.AddDate(0, 0, -2), "Food")
	}

	// given a saved simulation previewed against a budget with prior spending
	expenses := mock.NewExpenseRepository(groceries())
	evaluator := budget.NewEvaluateImpactUseCase(mock.NewBudgetRepository(food), expenses, clock, mock.NewMetricsRecorder())
	created, err := NewCreateSimulationUseCase(mock.NewSimulationRepository()).Execute(ctx,
		CreateSimulationInput{UserID: userID, Name: "Dinner", Items: items(40)})
	require.NoError(t, err)
	simulations := mock.NewSimulationRepository(created.Simulation)

	preview, err := NewPreviewImpactUseCase(simulations, evaluator).Execute(ctx,
		PreviewImpactInput{UserID: userID, SimulationID: &created.Simulation.ID})
	require.NoError(t, err)
	require.Len(t, preview.Usages, 1)

	// when the simulation is converted and the budget is evaluated again
	converted, err := NewConvertSimulationUseCase(simulations, expenses, &mock.TransactionManager{}).Execute(ctx,
		ConvertSimulationInput{SimulationID: created.Simulation.ID, UserID: userID})
	require.NoError(t, err)
	require.Len(t, converted.Expenses, 1)

	after, err := evaluator.Execute(ctx, budget.EvaluateImpactInput{
		UserID: userID,
		Items:  []valueobject.SpendingItem{valueobject.SpendingItemFromExpense(converted.Expenses[0])},
	})
	require.NoError(t, err)

	// and the same amount is recorded as an ordinary expense elsewhere
	genuine := entity.NewExpense(userID, decimal.NewFromInt(40), "item", testNow, "Food")
	recorded := mock.NewExpenseRepository(groceries(), genuine)
	baseline, err := budget.NewEvaluateImpactUseCase(mock.NewBudgetRepository(food), recorded, clock, mock.NewMetricsRecorder()).
		Execute(ctx, budget.EvaluateImpactInput{
			UserID: userID,
			Items:  []valueobject.SpendingItem{valueobject.SpendingItemFromExpense(genuine)},
		})
	require.NoError(t, err)

	// then all three agree on the spent figure
	require.Len(t, after.Usages, 1)
	require.Len(t, baseline.Usages, 1)
	assert.Equal(t, "110", preview.Usages[0].Spent.String())
	assert.True(t, after.Usages[0].Spent.Equal(preview.Usages[0].Spent), "after conversion: %s", after.Usages[0].Spent)
	assert.True(t, after.Usages[0].Spent.Equal(baseline.Usages[0].Spent), "recorded expense: %s", baseline.Usages[0].Spent)
	assert.Len(t, after.Usages[0].MatchingItems, 2)
}

func TestPreviewImpact(t *testing.T) {
	userID := uuid.New()
	food := entity.NewBudget(userID, "Food", decimal.NewFromInt(100), entity.BudgetPeriodMonthly,
		time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), nil)
	budgets := mock.NewBudgetRepository(food)
	expenses := mock.NewExpenseRepository(
		entity.NewExpense(userID, decimal.NewFromInt(70), "groceries", testNow.AddDate(0, 0, -2), "Food"),
	)
	evaluator := budget.NewEvaluateImpactUseCase(budgets, expenses, mock.Clock{FixedNow: testNow}, mock.NewMetricsRecorder())

	t.Run("stored simulation", func(t *testing.T) {
		created, err := NewCreateSimulationUseCase(mock.NewSimulationRepository()).Execute(context.Background(),
			CreateSimulationInput{UserID: userID, Name: "Dinner", Items: items(40, 500)})
		require.NoError(t, err)
		uc := NewPreviewImpactUseCase(mock.NewSimulationRepository(created.Simulation), evaluator)

		out, err := uc.Execute(context.Background(), PreviewImpactInput{UserID: userID, SimulationID: &created.Simulation.ID})

		require.NoError(t, err)
		assert.Equal(t, "540", out.Total.String())
		require.Len(t, out.Usages, 1)
		assert.Equal(t, "110", out.Usages[0].Spent.String())
		assert.True(t, out.Usages[0].IsOverBudget)
		assert.Len(t, expenses.All(), 1, "preview never records spending")
	})

	t.Run("ad-hoc items", func(t *testing.T) {
		uc := NewPreviewImpactUseCase(mock.NewSimulationRepository(), evaluator)

		out, err := uc.Execute(context.Background(), PreviewImpactInput{UserID: userID, Items: items(10)})

		require.NoError(t, err)
		require.Len(t, out.Usages, 1)
		assert.Equal(t, "80", out.Usages[0].Spent.String())
	})

	t.Run("unknown simulation", func(t *testing.T) {
		uc := NewPreviewImpactUseCase(mock.NewSimulationRepository(), evaluator)
		id := uuid.New()

		_, err := uc.Execute(context.Background(), PreviewImpactInput{UserID: userID, SimulationID: &id})

		assert.Equal(t, domainerror.ErrCodeSimulationNotFound, simulationErrorCode(t, err))
	})
}

func TestListAndDeleteSimulations(t *testing.T) {
	userID := uuid.New()
	first := entity.NewSimulation(userID, "First", nil)
	second := entity.NewSimulation(userID, "Second", nil)
	repo := mock.NewSimulationRepository(first, second, entity.NewSimulation(uuid.New(), "Other", nil))

	out, err := NewListSimulationsUseCase(repo).Execute(context.Background(), ListSimulationsInput{UserID: userID})
	require.NoError(t, err)
	require.Len(t, out.Simulations, 2)
	assert.Equal(t, "Second", out.Simulations[0].Name)

	err = NewDeleteSimulationUseCase(repo).Execute(context.Background(), DeleteSimulationInput{SimulationID: first.ID, UserID: userID})
	require.NoError(t, err)

	_, err = NewGetSimulationUseCase(repo).Execute(context.Background(), GetSimulationInput{SimulationID: first.ID, UserID: userID})
	assert.Equal(t, domainerror.ErrCodeSimulationNotFound, simulationErrorCode(t, err))
}
