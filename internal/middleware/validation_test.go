package middleware

import (
	"strings"
	"testing"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{"valid uuid", "550e8400-e29b-41d4-a716-446655440000", "550e8400-e29b-41d4-a716-446655440000", false},
		{"uppercase normalized", "550E8400-E29B-41D4-A716-446655440000", "550e8400-e29b-41d4-a716-446655440000", false},
		{"surrounding whitespace", " 550e8400-e29b-41d4-a716-446655440000 ", "550e8400-e29b-41d4-a716-446655440000", false},
		{"empty", "", "", true},
		{"not a uuid", "abc123", "", true},
		{"sql injection attempt", "1; DROP TABLE users", "", true},
		{"missing segment", "550e8400-e29b-41d4-a716", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := ValidateID(tt.id, "videoId")
			if (msg != "") != tt.wantErr {
				t.Fatalf("ValidateID(%q) message = %q, wantErr %v", tt.id, msg, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateID(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     string
		wantErr  bool
	}{
		{"simple", "alice", "alice", false},
		{"mixed case lowered", "AliceCooper", "alicecooper", false},
		{"dots dashes underscores", "a.b-c_d", "a.b-c_d", false},
		{"empty", "", "", true},
		{"too long", strings.Repeat("a", MaxUsernameLen+1), "", true},
		{"spaces", "alice cooper", "", true},
		{"unicode", "ålice", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := ValidateUsername(tt.username)
			if (msg != "") != tt.wantErr {
				t.Fatalf("ValidateUsername(%q) message = %q, wantErr %v", tt.username, msg, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateUsername(%q) = %q, want %q", tt.username, got, tt.want)
			}
		})
	}
}

func TestValidateContent(t *testing.T) {
	if _, msg := ValidateContent("  a fine comment  "); msg != "" {
		t.Errorf("trimmed content should pass, got %q", msg)
	}
	if got, _ := ValidateContent("  a fine comment  "); got != "a fine comment" {
		t.Errorf("content should be trimmed, got %q", got)
	}
	if _, msg := ValidateContent("   "); msg == "" {
		t.Error("whitespace-only content should be rejected")
	}
	if _, msg := ValidateContent(strings.Repeat("x", MaxContentLen+1)); msg == "" {
		t.Error("oversized content should be rejected")
	}
	if _, msg := ValidateContent(strings.Repeat("x", MaxContentLen)); msg != "" {
		t.Errorf("content at the limit should pass, got %q", msg)
	}
}
