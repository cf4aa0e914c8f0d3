package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

const defaultPassword = "SecurePass123!"

func (t *testContext) theCurrentTimeIs(value string) error {
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	shared.clock.SetCurrentTime(now)
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, defaultPassword, "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	user := entity.NewUser(email, name, hashPassword(password), shared.clock.Now())
	if err := shared.db.DbConn.Create(model.UserFromEntity(user)).Error; err != nil {
		return err
	}
	t.currentUserID = user.ID
	return nil
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs creates the user when missing and logs in through the API.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := shared.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if err := t.createUser(email, defaultPassword, "Test User"); err != nil {
			return err
		}
	} else {
		t.currentUserID = userModel.ID
	}

	payload, _ := json.Marshal(map[string]string{"email": email, "password": defaultPassword})
	resp, err := t.client.Post(shared.server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login as %s failed with status %d", email, resp.StatusCode)
	}

	var auth struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}

	t.accessToken = auth.AccessToken
	t.refreshToken = auth.RefreshToken
	return nil
}

func (t *testContext) theUserHasBudgetAlertEmailsDisabled(email string) error {
	return shared.db.DbConn.Model(&model.UserModel{}).
		Where("email = ?", email).
		Update("budget_alerts", false).Error
}

func (t *testContext) aBudgetExists(period, limit, category, startDate string) error {
	amount, err := decimal.NewFromString(limit)
	if err != nil {
		return fmt.Errorf("invalid limit %q: %w", limit, err)
	}
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", startDate, err)
	}

	budget := entity.NewBudget(t.currentUserID, category, amount, entity.BudgetPeriod(period), start, nil)
	if err := shared.db.DbConn.Create(model.BudgetFromEntity(budget)).Error; err != nil {
		return err
	}
	t.vars["budget_id"] = budget.ID.String()
	return nil
}

func (t *testContext) anExpenseExists(amount, category, date string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	expense := entity.NewExpense(t.currentUserID, value, "seeded "+category, day, category)
	if err := shared.db.DbConn.Create(model.ExpenseFromEntity(expense)).Error; err != nil {
		return err
	}
	t.vars["expense_id"] = expense.ID.String()
	return nil
}

func (t *testContext) theCategorySuggesterAnswers(category string, confidence float64) error {
	shared.suggester.set(&adapter.CategorySuggestion{
		Category:   category,
		Confidence: confidence,
		Reasoning:  "matched by the integration suite",
	}, true)
	return nil
}

func (t *testContext) theCategorySuggesterIsUnavailable() error {
	shared.suggester.set(nil, false)
	return nil
}

func (t *testContext) theEmailProviderRespondsWithStatus(status int) error {
	shared.emailAPI.SetResponse(-1, http.MethodPost, "/emails", status, map[string]any{
		"statusCode": status,
		"name":       "application_error",
		"message":    "mocked failure",
	})
	return nil
}

// stubSuggester replaces Gemini so category suggestions are deterministic.
type stubSuggester struct {
	mu         sync.Mutex
	suggestion *adapter.CategorySuggestion
	available  bool
}

func (s *stubSuggester) set(suggestion *adapter.CategorySuggestion, available bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestion = suggestion
	s.available = available
}

func (s *stubSuggester) reset() {
	s.set(&adapter.CategorySuggestion{Category: "Other", Confidence: 0.5}, true)
}

func (s *stubSuggester) Suggest(_ context.Context, _ string, _ []string) (*adapter.CategorySuggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.suggestion == nil {
		return nil, fmt.Errorf("no suggestion configured")
	}
	copied := *s.suggestion
	return &copied, nil
}

func (s *stubSuggester) IsAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available
}

var _ adapter.CategorySuggester = (*stubSuggester)(nil)

