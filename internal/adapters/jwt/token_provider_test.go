package token_adapter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var _ port.TokenProviderPort = (*TokenProvider)(nil)

func newTestProvider(t *testing.T) *TokenProvider {
	t.Helper()
	p, err := NewTokenProvider(testSecret, time.Hour, "wareland-api")
	if err != nil {
		t.Fatalf("NewTokenProvider: %v", err)
	}
	return p
}

func TestNewTokenProvider_RejectsWeakSecret(t *testing.T) {
	if _, err := NewTokenProvider("short", time.Hour, ""); err == nil {
		t.Fatal("expected error for short secret")
	}
	if _, err := NewTokenProvider(testSecret, 0, ""); err == nil {
		t.Fatal("expected error for non-positive ttl")
	}
}

func TestIssueValidateSubject(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	token, err := p.Issue(ctx, "alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if !p.Validate(ctx, token) {
		t.Fatal("freshly issued token must validate")
	}
	subject, err := p.SubjectOf(ctx, token)
	if err != nil || subject != "alice" {
		t.Fatalf("SubjectOf = %q, %v", subject, err)
	}
	exp, err := p.ExpiresAt(ctx, token)
	if err != nil {
		t.Fatalf("ExpiresAt: %v", err)
	}
	if d := time.Until(exp); d < 59*time.Minute || d > time.Hour+time.Minute {
		t.Fatalf("unexpected expiry distance %s", d)
	}
}

func TestValidate_Expired(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)
	p.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := p.Issue(ctx, "alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	p.now = time.Now
	if p.Validate(ctx, token) {
		t.Fatal("expired token must not validate")
	}
	if _, err := p.SubjectOf(ctx, token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidate_RejectsTamperedAndForeign(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)
	token, err := p.Issue(ctx, "alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	if p.Validate(ctx, tampered) {
		t.Fatal("tampered signature must not validate")
	}

	other, err := NewTokenProvider(strings.Repeat("z", 32), time.Hour, "")
	if err != nil {
		t.Fatalf("NewTokenProvider: %v", err)
	}
	foreign, _ := other.Issue(ctx, "alice")
	if p.Validate(ctx, foreign) {
		t.Fatal("token signed with another key must not validate")
	}

	for _, garbage := range []string{"", "not-a-jwt", "a.b.c"} {
		if p.Validate(ctx, garbage) {
			t.Fatalf("%q must not validate", garbage)
		}
	}
}

func TestValidate_RejectsOtherAlgorithms(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)
	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if p.Validate(ctx, hs512) {
		t.Fatal("HS512 token must not validate")
	}
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if p.Validate(ctx, none) {
		t.Fatal("unsigned token must not validate")
	}
}

func TestValidate_RequiresExpiry(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if p.Validate(ctx, token) {
		t.Fatal("token without exp must not validate")
	}
}
