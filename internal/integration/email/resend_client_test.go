package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

func newResendServer(t *testing.T, status int, body map[string]any, received *map[string]any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/emails" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if received != nil {
			_ = json.NewDecoder(r.Body).Decode(received)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestResendClient_SendUsesBaseURL(t *testing.T) {
	var received map[string]any
	server := newResendServer(t, http.StatusOK, map[string]any{"id": "email-123"}, &received)

	client, err := NewResendClientWithBaseURL("re_test", "Budgetwise", "alerts@budgetwise.app", server.URL)
	require.NoError(t, err)

	messageID, err := client.Send(context.Background(), adapter.OutgoingEmail{
		To:      "ana@example.com",
		Subject: "Budget Warning: Food",
		HTML:    "<p>hi</p>",
		Text:    "hi",
		Tags:    map[string]string{"category": "Food", "alert_type": "budget_warning"},
	})
	require.NoError(t, err)
	assert.Equal(t, "email-123", messageID)

	assert.Equal(t, "Budgetwise <alerts@budgetwise.app>", received["from"])
	assert.Equal(t, []any{"ana@example.com"}, received["to"])
	assert.Equal(t, "Budget Warning: Food", received["subject"])
	assert.Equal(t, []any{
		map[string]any{"name": "alert_type", "value": "budget_warning"},
		map[string]any{"name": "category", "value": "Food"},
	}, received["tags"])
}

func TestResendClient_SendOverridesSender(t *testing.T) {
	var received map[string]any
	server := newResendServer(t, http.StatusOK, map[string]any{"id": "email-456"}, &received)

	client, err := NewResendClientWithBaseURL("re_test", "Budgetwise", "alerts@budgetwise.app", server.URL+"/")
	require.NoError(t, err)

	_, err = client.Send(context.Background(), adapter.OutgoingEmail{
		From:    "Ops <ops@budgetwise.app>",
		To:      "ana@example.com",
		Subject: "s",
		Text:    "t",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ops <ops@budgetwise.app>", received["from"])
}

func TestResendClient_SendClassifiesFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		message  string
		wantCode domainerror.EmailErrorCode
	}{
		{
			name:     "validation error is permanent",
			status:   http.StatusUnprocessableEntity,
			message:  "Invalid `to` field",
			wantCode: domainerror.ErrCodePermanentEmailFailure,
		},
		{
			name:     "rate limiting is temporary",
			status:   http.StatusTooManyRequests,
			message:  "Too many requests",
			wantCode: domainerror.ErrCodeTemporaryEmailFailure,
		},
		{
			name:     "server error is temporary",
			status:   http.StatusInternalServerError,
			message:  "Something went wrong on our side",
			wantCode: domainerror.ErrCodeTemporaryEmailFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newResendServer(t, tt.status, map[string]any{
				"statusCode": tt.status,
				"name":       "error",
				"message":    tt.message,
			}, nil)

			client, err := NewResendClientWithBaseURL("re_test", "Budgetwise", "alerts@budgetwise.app", server.URL)
			require.NoError(t, err)

			_, err = client.Send(context.Background(), adapter.OutgoingEmail{To: "ana@example.com", Subject: "s", Text: "t"})
			require.Error(t, err)

			var emailErr *domainerror.EmailError
			require.True(t, errors.As(err, &emailErr))
			assert.Equal(t, tt.wantCode, emailErr.Code)
		})
	}
}

func TestResendClient_UnreachableIsTemporary(t *testing.T) {
	server := newResendServer(t, http.StatusOK, map[string]any{"id": "x"}, nil)
	client, err := NewResendClientWithBaseURL("re_test", "Budgetwise", "alerts@budgetwise.app", server.URL)
	require.NoError(t, err)
	server.Close()

	_, err = client.Send(context.Background(), adapter.OutgoingEmail{To: "ana@example.com", Subject: "s", Text: "t"})

	var emailErr *domainerror.EmailError
	require.True(t, errors.As(err, &emailErr))
	assert.Equal(t, domainerror.ErrCodeTemporaryEmailFailure, emailErr.Code)
}

func TestNewResendClientWithBaseURL_InvalidURL(t *testing.T) {
	for _, raw := range []string{"://bad", "localhost-without-scheme"} {
		_, err := NewResendClientWithBaseURL("re_test", "Budgetwise", "alerts@budgetwise.app", raw)
		assert.Error(t, err, raw)
	}
}
