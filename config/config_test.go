package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if cfg.MaxSelectableSeats != 10 {
		t.Fatalf("expected default cap 10, got %d", cfg.MaxSelectableSeats)
	}
	if got := cfg.NotificationDuration(); got != 3*time.Second {
		t.Fatalf("expected default notification duration 3s, got %v", got)
	}
	if cfg.Persistence.Backend != "file" {
		t.Fatalf("expected file backend by default, got %q", cfg.Persistence.Backend)
	}
	if cfg.Debug {
		t.Fatal("expected debug off by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MAX_SELECTABLE_SEATS", "4")
	t.Setenv("NOTIFICATION_MS", "1500")
	t.Setenv("PERSISTENCE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6380")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if cfg.MaxSelectableSeats != 4 {
		t.Fatalf("expected cap 4, got %d", cfg.MaxSelectableSeats)
	}
	if got := cfg.NotificationDuration(); got != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s, got %v", got)
	}
	if cfg.Persistence.Backend != "redis" || cfg.Persistence.RedisAddr != "127.0.0.1:6380" {
		t.Fatalf("expected redis backend override, got %+v", cfg.Persistence)
	}
}
