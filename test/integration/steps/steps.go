// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/config"
	"github.com/budgetwise/backend/internal/infra/dependency"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
	"github.com/budgetwise/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// app is the process-wide server under test and the fakes behind it.
type app struct {
	server    *httptest.Server
	db        *mock.Db
	redis     *redis.Client
	clock     *mock.Time
	emailAPI  *mock.ApiMock
	suggester *stubSuggester
}

var shared *app

// InitializeTestSuite wires the real application against sqlite, miniredis,
// a mock clock and a mock Resend endpoint.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)

		shared = &app{
			db:        mock.NewDb(model.All()...),
			redis:     mock.NewRedis(),
			clock:     mock.NewTime(),
			emailAPI:  mock.NewApiServer(),
			suggester: &stubSuggester{},
		}
		shared.emailAPI.Start()

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = testJWTSecret
		cfg.JWT.BcryptCost = 4
		cfg.Notification.EmailEnabled = true
		cfg.Email.ResendAPIKey = "re_test_key"
		cfg.Email.ResendBaseURL = shared.emailAPI.GetUrl()

		injector, err := dependency.NewInjector(cfg, shared.db.DbConn, dependency.Options{
			Clock:     shared.clock,
			Suggester: shared.suggester,
			Redis:     shared.redis,
		})
		if err != nil {
			panic(fmt.Sprintf("failed to wire application: %v", err))
		}

		shared.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	})

	ctx.AfterSuite(func() {
		if shared == nil {
			return
		}
		shared.server.Close()
		shared.emailAPI.Close()
	})
}

type testContext struct {
	client        *http.Client
	headers       map[string]string
	vars          map[string]string
	response      *response
	accessToken   string
	refreshToken  string
	currentUserID uuid.UUID
}

type response struct {
	status int
	body   any
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Step(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)

	// User setup steps
	ctx.Step(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Step(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Step(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Step(`^the user "([^"]*)" has budget alert emails disabled$`, test.theUserHasBudgetAlertEmailsDisabled)

	// Domain fixtures
	ctx.Step(`^a "([^"]*)" budget of "([^"]*)" exists for category "([^"]*)" starting "([^"]*)"$`, test.aBudgetExists)
	ctx.Step(`^an expense of "([^"]*)" exists for category "([^"]*)" on "([^"]*)"$`, test.anExpenseExists)
	ctx.Step(`^the category suggester answers "([^"]*)" with confidence ([\d.]+)$`, test.theCategorySuggesterAnswers)
	ctx.Step(`^the category suggester is unavailable$`, test.theCategorySuggesterIsUnavailable)
	ctx.Step(`^the email provider responds with status (\d+)$`, test.theEmailProviderRespondsWithStatus)

	// Header steps
	ctx.Step(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, test.iSaveTheResponseFieldAs)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)
	ctx.Step(`^the response field "([^"]*)" should contain "([^"]*)"$`, test.theResponseFieldShouldContain)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Side-effect assertion steps
	ctx.Step(`^the email provider should have received (\d+) emails?$`, test.theEmailProviderShouldHaveReceived)
	ctx.Step(`^the email (\d+) should be sent to "([^"]*)" with subject "([^"]*)"$`, test.theEmailShouldBeSentToWithSubject)
	ctx.Step(`^the unread counter of the current user should be cached as (\d+)$`, test.theUnreadCounterShouldBeCachedAs)
	ctx.Step(`^the unread counter of the current user should not be cached$`, test.theUnreadCounterShouldNotBeCached)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.vars = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil

	shared.clock.Reset()
	shared.suggester.reset()
	shared.emailAPI.Clear()
	shared.emailAPI.SetResponse(-1, http.MethodPost, "/emails", http.StatusOK, map[string]any{
		"id": "49a3999c-0ce1-4ea6-ab68-afcd6dc2e794",
	})

	if err := mock.ClearRedis(shared.redis); err != nil {
		return err
	}
	return shared.db.ClearDB()
}

func (t *testContext) theAPIServerIsRunning() error {
	if shared == nil || shared.server == nil {
		return errors.New("test server is not running")
	}
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = t.replacePlaceholders(value)
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) iSaveTheResponseFieldAs(field, name string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	t.vars[name] = fmt.Sprintf("%v", value)
	return nil
}

var placeholderPattern = regexp.MustCompile(`\{\{([a-z_]+)\}\}`)

func (t *testContext) replacePlaceholders(content string) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		switch name {
		case "access_token":
			return t.accessToken
		case "refresh_token":
			return t.refreshToken
		case "user_id":
			return t.currentUserID.String()
		}
		if value, ok := t.vars[name]; ok {
			return value
		}
		return match
	})
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, shared.server.URL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var decoded any
	if len(bodyBytes) == 0 {
		t.response.body = nil
	} else if err := json.Unmarshal(bodyBytes, &decoded); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = decoded
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	switch t.response.body.(type) {
	case map[string]any, []any:
		return nil
	}
	return fmt.Errorf("response is not JSON: %v", t.response.body)
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonObject()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonObject()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonObject()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	body, err := t.jsonObject()
	if err != nil {
		return err
	}
	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldContain(field, fragment string) error {
	body, err := t.jsonObject()
	if err != nil {
		return err
	}
	value, ok := getFieldValue(body, field).(string)
	if !ok {
		return fmt.Errorf("field '%s' is not a string: %v", field, body)
	}
	if !strings.Contains(value, fragment) {
		return fmt.Errorf("field '%s' = %q does not contain %q", field, value, fragment)
	}
	return nil
}

func (t *testContext) jsonObject() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := shared.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := shared.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) theEmailProviderShouldHaveReceived(count int) error {
	got := shared.emailAPI.RequestCount(http.MethodPost, "/emails")
	if got != count {
		return fmt.Errorf("expected %d emails, got %d", count, got)
	}
	return nil
}

func (t *testContext) theEmailShouldBeSentToWithSubject(index int, to, subject string) error {
	body := shared.emailAPI.GetRequestBody(http.MethodPost, "/emails", index-1)
	if body == nil {
		return fmt.Errorf("email %d was not sent", index)
	}

	recipients, _ := body["to"].([]any)
	if len(recipients) != 1 || recipients[0] != to {
		return fmt.Errorf("email %d expected recipient %s, got %v", index, to, body["to"])
	}
	if body["subject"] != subject {
		return fmt.Errorf("email %d expected subject %q, got %v", index, subject, body["subject"])
	}
	return nil
}

func (t *testContext) unreadKey() string {
	return "notifications:unread:" + t.currentUserID.String()
}

func (t *testContext) theUnreadCounterShouldBeCachedAs(count int) error {
	cached, err := shared.redis.Get(context.Background(), t.unreadKey()).Int()
	if err != nil {
		return fmt.Errorf("unread counter not cached: %w", err)
	}
	if cached != count {
		return fmt.Errorf("expected cached unread counter %d, got %d", count, cached)
	}
	return nil
}

func (t *testContext) theUnreadCounterShouldNotBeCached() error {
	exists, err := shared.redis.Exists(context.Background(), t.unreadKey()).Result()
	if err != nil {
		return err
	}
	if exists != 0 {
		return errors.New("unread counter is still cached")
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	var field = object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}
	return field
}
