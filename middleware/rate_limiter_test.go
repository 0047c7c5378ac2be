package middleware

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientIPGeneric_DirectRemote(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.local/", nil)
	req.RemoteAddr = "203.0.113.5:54321"
	ip := clientIPGeneric(req, nil)
	if ip != "203.0.113.5" {
		t.Fatalf("expected direct remote IP, got %s", ip)
	}
}

func TestClientIPGeneric_TrustedProxyXFF(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.local/", nil)
	req.RemoteAddr = "198.51.100.10:443"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 198.51.100.10")
	// trustedCIDR contains the remote IP
	ip := clientIPGeneric(req, []string{"198.51.100.10"})
	if ip != "203.0.113.7" {
		t.Fatalf("expected X-Forwarded-For first value, got %s", ip)
	}
}

func TestClientIPGeneric_UntrustedProxyIgnoresXFF(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.local/", nil)
	req.RemoteAddr = "198.51.100.11:443"
	req.Header.Set("X-Forwarded-For", "203.0.113.8, 198.51.100.11")
	ip := clientIPGeneric(req, []string{"198.51.100.10"})
	if ip != "198.51.100.11" {
		t.Fatalf("expected remote IP when proxy untrusted, got %s", ip)
	}
}

func TestClientIPGeneric_TrustedCIDR(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.local/", nil)
	req.RemoteAddr = "10.0.4.2:8080"
	req.Header.Set("X-Real-IP", "203.0.113.9")
	ip := clientIPGeneric(req, []string{"10.0.0.0/8"})
	if ip != "203.0.113.9" {
		t.Fatalf("expected X-Real-IP for trusted CIDR, got %s", ip)
	}
}

func TestAccountLockout(t *testing.T) {
	const userID = 90001

	t.Setenv("LOGIN_MAX_FAILED", "3")
	t.Setenv("LOGIN_LOCK_SECONDS", "60")

	ResetFailedLogin(userID)
	if locked, _ := IsAccountLocked(userID); locked {
		t.Fatal("expected fresh account to be unlocked")
	}

	RecordFailedLogin(userID)
	RecordFailedLogin(userID)
	if locked, _ := IsAccountLocked(userID); locked {
		t.Fatal("expected account to stay unlocked below threshold")
	}

	RecordFailedLogin(userID)
	locked, remaining := IsAccountLocked(userID)
	if !locked {
		t.Fatal("expected account to lock after threshold")
	}
	if remaining <= 0 || remaining > time.Minute {
		t.Fatalf("unexpected lock duration %v", remaining)
	}
}
