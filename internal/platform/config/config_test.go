package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults with required secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Addr != ":8080" {
			t.Errorf("expected default addr :8080, got %q", cfg.Addr)
		}
		if cfg.TokenLifetime != 30*time.Minute {
			t.Errorf("expected default token lifetime 30m, got %v", cfg.TokenLifetime)
		}
		if cfg.BcryptCost != 10 {
			t.Errorf("expected default bcrypt cost 10, got %d", cfg.BcryptCost)
		}
		if !cfg.RunMigrations {
			t.Error("expected migrations enabled by default")
		}
	})

	t.Run("missing secret fails", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := Load()
		if err == nil {
			t.Fatal("expected error when JWT_SECRET is unset")
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("ADDR", ":9090")
		t.Setenv("JWT_ACCESS_TOKEN_LIFETIME", "1h")
		t.Setenv("BCRYPT_COST", "12")
		t.Setenv("REDIS_ADDR", "localhost:6379")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Addr != ":9090" {
			t.Errorf("expected addr :9090, got %q", cfg.Addr)
		}
		if cfg.TokenLifetime != time.Hour {
			t.Errorf("expected token lifetime 1h, got %v", cfg.TokenLifetime)
		}
		if cfg.BcryptCost != 12 {
			t.Errorf("expected bcrypt cost 12, got %d", cfg.BcryptCost)
		}
		if cfg.RedisAddr != "localhost:6379" {
			t.Errorf("expected redis addr localhost:6379, got %q", cfg.RedisAddr)
		}
	})
}
