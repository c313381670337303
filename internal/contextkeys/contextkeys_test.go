package contextkeys

import (
	"context"
	"testing"

	"wareland-api/internal/core/domain"
)

func TestLoggerFromContext_FallsBackToNoop(t *testing.T) {
	logger := LoggerFromContext(context.Background())
	if logger == nil {
		t.Fatal("expected a non-nil logger")
	}
	// must not panic
	logger.WithFields(nil).Error("boom", nil, nil)
}

func TestIdentityRoundTrip(t *testing.T) {
	if _, ok := IdentityFromContext(context.Background()); ok {
		t.Fatal("expected anonymous context")
	}
	ctx := ContextWithIdentity(context.Background(), domain.Identity{Subject: "alice"})
	id, ok := IdentityFromContext(ctx)
	if !ok || id.Subject != "alice" {
		t.Fatalf("unexpected identity %+v ok=%v", id, ok)
	}
	if len(id.Authorities) != 0 {
		t.Fatalf("expected no authorities, got %v", id.Authorities)
	}
}

func TestTraceIDFromContext(t *testing.T) {
	if got := TraceIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty trace id, got %q", got)
	}
	ctx := ContextWithTraceID(context.Background(), "abc")
	if got := TraceIDFromContext(ctx); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
}
