package hash

import "testing"

func TestPassword_RoundTrip(t *testing.T) {
	hashed, err := Password("correct horse battery staple")
	if err != nil {
		t.Fatalf("Password returned error: %v", err)
	}
	if !Verify(hashed, "correct horse battery staple") {
		t.Error("Verify should accept the original password")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	hashed, err := Password("secret-one")
	if err != nil {
		t.Fatalf("Password returned error: %v", err)
	}
	if Verify(hashed, "secret-two") {
		t.Error("Verify should reject a different password")
	}
}

func TestVerify_GarbageHash(t *testing.T) {
	if Verify("not-a-bcrypt-hash", "anything") {
		t.Error("Verify should reject a malformed hash")
	}
}

func TestPassword_SaltedPerCall(t *testing.T) {
	a, err := Password("same-input")
	if err != nil {
		t.Fatalf("Password returned error: %v", err)
	}
	b, err := Password("same-input")
	if err != nil {
		t.Fatalf("Password returned error: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password should differ (bcrypt salts)")
	}
}
