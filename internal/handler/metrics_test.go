package handler

import "testing"

func TestSanitizeEndpoint(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"video lookup", "/api/v1/videos/c/550e8400-e29b-41d4-a716-446655440000", "/api/v1/videos/*"},
		{"toggle", "/api/v1/likes/toggle/v/550e8400-e29b-41d4-a716-446655440000", "/api/v1/likes/*"},
		{"group root kept", "/api/v1/tweets", "/api/v1/tweets"},
		{"outside api kept", "/healthz", "/healthz"},
		{"metrics kept", "/metrics", "/metrics"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeEndpoint(tt.path); got != tt.want {
				t.Errorf("sanitizeEndpoint(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
