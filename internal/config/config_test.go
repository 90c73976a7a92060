package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Env != "production" {
		t.Errorf("env = %q", cfg.Env)
	}
	if cfg.HTTP.Timeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.MaxAttempts != 4 {
		t.Errorf("max attempts = %d", cfg.HTTP.MaxAttempts)
	}
	if cfg.QuotaEnabled() {
		t.Error("quota should be disabled by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GOOGLEAPI_API_KEY", "abc")
	t.Setenv("GOOGLEAPI_ENV", "development")
	t.Setenv("GOOGLEAPI_HTTP_TIMEOUT", "5s")
	t.Setenv("GOOGLEAPI_HTTP_NO_HANDLER", "true")
	t.Setenv("GOOGLEAPI_REDIS_ADDR", "localhost:6379")
	t.Setenv("GOOGLEAPI_REDIS_DAILY_QUOTA", "2500")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIKey != "abc" || cfg.Env != "development" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.HTTP.Timeout != 5*time.Second || !cfg.HTTP.NoHandler {
		t.Errorf("http = %+v", cfg.HTTP)
	}
	if !cfg.QuotaEnabled() || cfg.Redis.DailyQuota != 2500 {
		t.Errorf("redis = %+v", cfg.Redis)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GOOGLEAPI_ENV", "staging")
	t.Setenv("GOOGLEAPI_HTTP_MAX_ATTEMPTS", "0")

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"Config.Env", "Config.HTTP.MaxAttempts"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestGet(t *testing.T) {
	t.Setenv("GOOGLEAPI_TEST_VALUE", "  ")
	if got := Get("GOOGLEAPI_TEST_VALUE", "fallback"); got != "fallback" {
		t.Errorf("blank value: got %q", got)
	}

	t.Setenv("GOOGLEAPI_TEST_VALUE", "set")
	if got := Get("GOOGLEAPI_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("set value: got %q", got)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore cwd: %v", err)
		}
	})
}
