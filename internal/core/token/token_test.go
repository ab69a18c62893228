package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/projethub/projethub/internal/core/domain"
)

func TestIssueVerify_Roundtrip(t *testing.T) {
	svc := NewService("secret", time.Hour)

	signed, err := svc.Issue(domain.Identity{ID: "user-1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	identity, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if identity.ID != "user-1" {
		t.Fatalf("unexpected id: %q", identity.ID)
	}
	if identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %q", identity.Role)
	}
}

func TestVerify_Expired(t *testing.T) {
	svc := NewService("secret", time.Hour)

	expired := signWith(t, "secret", jwt.MapClaims{
		"id":   "user-1",
		"role": "user",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})

	if _, err := svc.Verify(expired); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_ForeignKey(t *testing.T) {
	svc := NewService("secret", time.Hour)

	foreign := signWith(t, "other-secret", jwt.MapClaims{
		"id":   "user-1",
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	if _, err := svc.Verify(foreign); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	svc := NewService("secret", time.Hour)

	signed, err := svc.Issue(domain.Identity{ID: "user-1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Swap the payload for one claiming the admin role; the signature no
	// longer matches.
	elevated := signWith(t, "secret", jwt.MapClaims{
		"id":   "user-1",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	parts := strings.Split(signed, ".")
	forgedParts := strings.Split(elevated, ".")
	forged := parts[0] + "." + forgedParts[1] + "." + parts[2]

	if _, err := svc.Verify(forged); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_WrongAlgorithm(t *testing.T) {
	svc := NewService("secret", time.Hour)

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.MapClaims{
		"id":   "user-1",
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_UnknownRole(t *testing.T) {
	svc := NewService("secret", time.Hour)

	signed := signWith(t, "secret", jwt.MapClaims{
		"id":   "user-1",
		"role": "superuser",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_MissingExpiry(t *testing.T) {
	svc := NewService("secret", time.Hour)

	// Signed with the right secret but carrying no exp claim.
	eternal := signWith(t, "secret", jwt.MapClaims{
		"id":   "user-1",
		"role": "user",
	})

	if _, err := svc.Verify(eternal); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	svc := NewService("secret", time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(raw); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("Verify(%q): expected ErrTokenInvalid, got %v", raw, err)
		}
	}
}

func signWith(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}
