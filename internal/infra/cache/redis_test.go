package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/budgetwise/backend/config"
)

func TestNewRedisConnection(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name    string
		cfg     config.RedisConfig
		wantErr bool
	}{
		{name: "valid url", cfg: config.RedisConfig{URL: "redis://" + mr.Addr() + "/0"}},
		{name: "db override", cfg: config.RedisConfig{URL: "redis://" + mr.Addr(), DB: 2}},
		{name: "malformed url", cfg: config.RedisConfig{URL: "://nope"}, wantErr: true},
		{name: "unreachable", cfg: config.RedisConfig{URL: "redis://127.0.0.1:1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewRedisConnection(&tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer client.Close()

			if !HealthCheck(client)(context.Background()) {
				t.Error("expected healthy client")
			}
			if tt.cfg.DB != 0 && client.Options().DB != tt.cfg.DB {
				t.Errorf("DB = %d, want %d", client.Options().DB, tt.cfg.DB)
			}
		})
	}
}

func TestHealthCheck_Down(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewRedisConnection(&config.RedisConfig{URL: "redis://" + mr.Addr()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer client.Close()

	mr.Close()

	if HealthCheck(client)(context.Background()) {
		t.Error("expected unhealthy client after server shutdown")
	}
}
