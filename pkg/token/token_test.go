package token

import (
	"testing"
	"time"
)

func newTestManager() *Manager {
	return NewManager("access-secret", 15*time.Minute, "refresh-secret", 7*24*time.Hour)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	m := newTestManager()

	signed, err := m.IssueAccess("user-1", "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}

	claims, err := m.VerifyAccess(signed)
	if err != nil {
		t.Fatalf("VerifyAccess returned error: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "user-1")
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want %q", claims.Username, "alice")
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "alice@example.com")
	}
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	m := newTestManager()

	signed, err := m.IssueRefresh("user-2")
	if err != nil {
		t.Fatalf("IssueRefresh returned error: %v", err)
	}

	userID, err := m.VerifyRefresh(signed)
	if err != nil {
		t.Fatalf("VerifyRefresh returned error: %v", err)
	}
	if userID != "user-2" {
		t.Errorf("userID = %q, want %q", userID, "user-2")
	}
}

func TestVerifyAccess_WrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager("different-secret", 15*time.Minute, "refresh-secret", time.Hour)

	signed, err := m.IssueAccess("user-1", "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}
	if _, err := other.VerifyAccess(signed); err == nil {
		t.Error("VerifyAccess should reject a token signed with another secret")
	}
}

func TestVerifyRefresh_RejectsAccessToken(t *testing.T) {
	// Access and refresh tokens use distinct secrets, so one can never be
	// presented as the other.
	m := newTestManager()

	access, err := m.IssueAccess("user-1", "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}
	if _, err := m.VerifyRefresh(access); err == nil {
		t.Error("VerifyRefresh should reject an access token")
	}
}

func TestVerifyAccess_Expired(t *testing.T) {
	m := NewManager("access-secret", -time.Minute, "refresh-secret", time.Hour)

	signed, err := m.IssueAccess("user-1", "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}
	if _, err := m.VerifyAccess(signed); err == nil {
		t.Error("VerifyAccess should reject an expired token")
	}
}

func TestVerifyAccess_Tampered(t *testing.T) {
	m := newTestManager()

	signed, err := m.IssueAccess("user-1", "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}
	tampered := signed[:len(signed)-2] + "xx"
	if _, err := m.VerifyAccess(tampered); err == nil {
		t.Error("VerifyAccess should reject a tampered token")
	}
}
