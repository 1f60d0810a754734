package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/auth-service/internal/domain"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("super-secret", 24*time.Hour)
	now := time.Now()

	token, expiresAt, err := codec.Issue("testuser", now)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if want := now.Add(24 * time.Hour); !expiresAt.Equal(want) {
		t.Fatalf("expiresAt mismatch: got %v want %v", expiresAt, want)
	}

	claims, err := codec.Verify(token, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.Subject != "testuser" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "testuser")
	}
	if claims.ExpiresAt.Unix() != expiresAt.Unix() {
		t.Fatalf("claim expiry mismatch: got %v want %v", claims.ExpiresAt.Time, expiresAt)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("secret", time.Hour)
	issued := time.Now()

	token, _, err := codec.Issue("u1", issued)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// still valid just before the window closes
	if _, err := codec.Verify(token, issued.Add(59*time.Minute)); err != nil {
		t.Fatalf("expected token valid before expiry, got %v", err)
	}

	_, err = codec.Verify(token, issued.Add(61*time.Minute))
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected domain.ErrInvalidToken after expiry, got %v", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("secret", time.Hour)
	now := time.Now()

	token, _, err := codec.Issue("u2", now)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// flip the first character of the signature segment
	sigStart := strings.LastIndex(token, ".") + 1
	flipped := byte('A')
	if token[sigStart] == 'A' {
		flipped = 'B'
	}
	tampered := token[:sigStart] + string(flipped) + token[sigStart+1:]
	if tampered == token {
		t.Fatal("tampering produced an identical token")
	}

	_, err = codec.Verify(tampered, now)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected domain.ErrInvalidToken for tampered signature, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenCodec("right-secret", time.Hour)
	verifier := NewTokenCodec("wrong-secret", time.Hour)
	now := time.Now()

	token, _, err := issuer.Issue("u3", now)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = verifier.Verify(token, now)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected domain.ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("secret", time.Hour)
	now := time.Now()

	for _, malformed := range []string{"", "garbage", "not.a.jwt", strings.Repeat("x", 100)} {
		if _, err := codec.Verify(malformed, now); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected domain.ErrInvalidToken for %q, got %v", malformed, err)
		}
	}
}

func TestVerify_RejectsForeignSigningMethod(t *testing.T) {
	t.Parallel()

	secret := "shared-secret"
	codec := NewTokenCodec(secret, time.Hour)
	now := time.Now()

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.RegisteredClaims{
		Subject:   "u4",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	tokenStr, err := foreign.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := codec.Verify(tokenStr, now); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected domain.ErrInvalidToken for HS384 token, got %v", err)
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	t.Parallel()

	secret := "secret"
	codec := NewTokenCodec(secret, time.Hour)
	now := time.Now()

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	tokenStr, err := anonymous.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := codec.Verify(tokenStr, now); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected domain.ErrInvalidToken for subject-less token, got %v", err)
	}
}
