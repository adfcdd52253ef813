package middleware

import "testing"

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			"video id redacted",
			"/api/v1/videos/c/550e8400-e29b-41d4-a716-446655440000",
			"/api/v1/videos/c/:id",
		},
		{
			"username after c redacted",
			"/api/v1/users/c/alicecooper",
			"/api/v1/users/c/:username",
		},
		{
			"two ids redacted",
			"/api/v1/playlists/add/550e8400-e29b-41d4-a716-446655440000/6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			"/api/v1/playlists/add/:id/:id",
		},
		{
			"static path untouched",
			"/api/v1/users/current-user",
			"/api/v1/users/current-user",
		},
		{
			"health untouched",
			"/healthz",
			"/healthz",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizePath(tt.path); got != tt.want {
				t.Errorf("sanitizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestHashIPForLog(t *testing.T) {
	a := hashIPForLog("203.0.113.7")
	b := hashIPForLog("203.0.113.7")
	c := hashIPForLog("203.0.113.8")

	if a != b {
		t.Error("same IP should hash to the same value")
	}
	if a == c {
		t.Error("different IPs should hash to different values")
	}
	if len(a) != 12 {
		t.Errorf("hash length = %d, want 12", len(a))
	}
	if a == "203.0.113.7" {
		t.Error("raw IP must not appear in the hash")
	}
}
