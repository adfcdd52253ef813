package middleware

import (
	"fmt"
	"testing"
	"time"
)

func newTestLimiter(max int, window time.Duration) *RateLimiter {
	return NewRateLimiter(RateLimitConfig{Max: max, Window: window})
}

func TestRateLimiter_AllowsUpToMax(t *testing.T) {
	rl := newTestLimiter(5, time.Minute)
	for i := 0; i < 5; i++ {
		if !rl.Allow("key-a") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
}

func TestRateLimiter_BlocksAfterMax(t *testing.T) {
	rl := newTestLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		rl.Allow("key-a")
	}
	if rl.Allow("key-a") {
		t.Error("request over the limit should be blocked")
	}
	if rl.Allow("key-a") {
		t.Error("requests stay blocked for the rest of the window")
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := newTestLimiter(2, time.Minute)
	rl.Allow("key-a")
	rl.Allow("key-a")
	if rl.Allow("key-a") {
		t.Error("key-a should be exhausted")
	}
	if !rl.Allow("key-b") {
		t.Error("key-b should have its own budget")
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	rl := newTestLimiter(1, 50*time.Millisecond)
	if !rl.Allow("key-a") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("key-a") {
		t.Fatal("second request in the window should be blocked")
	}
	time.Sleep(60 * time.Millisecond)
	if !rl.Allow("key-a") {
		t.Error("request after the window expires should be allowed")
	}
}

func TestPreconfiguredLimiters(t *testing.T) {
	tests := []struct {
		name string
		rl   *RateLimiter
		max  int
	}{
		{"auth", NewAuthRateLimiter(), 10},
		{"upload", NewUploadRateLimiter(), 5},
		{"toggle", NewToggleRateLimiter(), 60},
		{"api", NewAPIRateLimiter(), 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := fmt.Sprintf("test-%s", tt.name)
			for i := 0; i < tt.max; i++ {
				if !tt.rl.Allow(key) {
					t.Fatalf("request %d/%d should be allowed", i+1, tt.max)
				}
			}
			if tt.rl.Allow(key) {
				t.Errorf("request %d should be blocked", tt.max+1)
			}
		})
	}
}
