package config

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("PLAYTUBE_TEST_SET", "value")
	if got := getEnv("PLAYTUBE_TEST_SET", "fallback"); got != "value" {
		t.Errorf("getEnv = %q, want %q", got, "value")
	}
	if got := getEnv("PLAYTUBE_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("getEnv = %q, want %q", got, "fallback")
	}
}

func TestGetDuration(t *testing.T) {
	t.Setenv("PLAYTUBE_TEST_DUR", "90s")
	if got := getDuration("PLAYTUBE_TEST_DUR", time.Minute); got != 90*time.Second {
		t.Errorf("getDuration = %v, want %v", got, 90*time.Second)
	}

	// Bare integers are seconds.
	t.Setenv("PLAYTUBE_TEST_DUR", "30")
	if got := getDuration("PLAYTUBE_TEST_DUR", time.Minute); got != 30*time.Second {
		t.Errorf("getDuration = %v, want %v", got, 30*time.Second)
	}

	t.Setenv("PLAYTUBE_TEST_DUR", "not-a-duration")
	if got := getDuration("PLAYTUBE_TEST_DUR", time.Minute); got != time.Minute {
		t.Errorf("getDuration = %v, want fallback %v", got, time.Minute)
	}

	if got := getDuration("PLAYTUBE_TEST_DUR_UNSET", 5*time.Second); got != 5*time.Second {
		t.Errorf("getDuration = %v, want fallback %v", got, 5*time.Second)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	if cfg.Port == "" {
		t.Error("Port should have a default")
	}
	if cfg.AccessTokenTTL <= 0 {
		t.Error("AccessTokenTTL should default to a positive duration")
	}
	if cfg.RefreshTokenTTL <= cfg.AccessTokenTTL {
		t.Error("refresh tokens should outlive access tokens by default")
	}
	if cfg.RequestTimeout <= 0 {
		t.Error("RequestTimeout should default to a positive duration")
	}
}
