package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Notification.UnreadCacheTTL != 5*time.Minute {
		t.Errorf("Notification.UnreadCacheTTL = %v, want 5m", cfg.Notification.UnreadCacheTTL)
	}
	if cfg.Notification.EmailEnabled {
		t.Error("Notification.EmailEnabled should default to false")
	}
	if cfg.AI.GeminiModel != "gemini-2.5-flash-lite" {
		t.Errorf("AI.GeminiModel = %q", cfg.AI.GeminiModel)
	}
	if cfg.RateLimit.LoginAttempts != 5 || cfg.RateLimit.LoginWindow != time.Minute {
		t.Errorf("RateLimit = %+v", cfg.RateLimit)
	}
	if cfg.JWT.BcryptCost != 12 {
		t.Errorf("JWT.BcryptCost = %d, want 12", cfg.JWT.BcryptCost)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("NOTIFICATION_EMAIL_ENABLED", "true")
	t.Setenv("NOTIFICATION_UNREAD_CACHE_TTL", "30s")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("LOGIN_RATE_LIMIT_ATTEMPTS", "not-a-number")
	t.Setenv("REDIS_URL", "")
	t.Setenv("RESEND_BASE_URL", "http://localhost:4010")

	cfg := Load()

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if !cfg.Notification.EmailEnabled {
		t.Error("Notification.EmailEnabled should be true")
	}
	if cfg.Notification.UnreadCacheTTL != 30*time.Second {
		t.Errorf("Notification.UnreadCacheTTL = %v, want 30s", cfg.Notification.UnreadCacheTTL)
	}
	if cfg.AI.GeminiAPIKey != "key" {
		t.Errorf("AI.GeminiAPIKey = %q", cfg.AI.GeminiAPIKey)
	}
	if cfg.RateLimit.LoginAttempts != 5 {
		t.Errorf("invalid int should fall back to default, got %d", cfg.RateLimit.LoginAttempts)
	}
	if cfg.Redis.URL != "" {
		t.Errorf("Redis.URL = %q, want empty", cfg.Redis.URL)
	}
	if cfg.Email.ResendBaseURL != "http://localhost:4010" {
		t.Errorf("Email.ResendBaseURL = %q", cfg.Email.ResendBaseURL)
	}
}

func TestConfig_TriggerConfig(t *testing.T) {
	tests := []struct {
		name      string
		enabled   bool
		apiKey    string
		wantEmail bool
	}{
		{name: "enabled with key", enabled: true, apiKey: "re_123", wantEmail: true},
		{name: "enabled without key", enabled: true, apiKey: "", wantEmail: false},
		{name: "disabled with key", enabled: false, apiKey: "re_123", wantEmail: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Email: EmailConfig{
					ResendAPIKey: tt.apiKey,
					FromName:     "Budgetwise",
					FromEmail:    "alerts@example.com",
				},
				Notification: NotificationConfig{EmailEnabled: tt.enabled},
			}

			got := cfg.TriggerConfig()

			if got.EmailEnabled != tt.wantEmail {
				t.Errorf("EmailEnabled = %v, want %v", got.EmailEnabled, tt.wantEmail)
			}
			if got.SenderName != "Budgetwise" || got.SenderEmail != "alerts@example.com" {
				t.Errorf("sender = %q <%q>", got.SenderName, got.SenderEmail)
			}
		})
	}
}
