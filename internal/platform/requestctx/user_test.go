package requestctx

import (
	"context"
	"testing"
)

func TestWithUserIDRoundTrip(t *testing.T) {
	ctx := WithUserID(context.Background(), "user-1")
	if got := UserIDFromContext(ctx); got != "user-1" {
		t.Fatalf("user id = %q, want user-1", got)
	}
}

func TestUserIDFromContextMissing(t *testing.T) {
	if got := UserIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty user id, got %q", got)
	}
}

func TestWithUserIDNilContext(t *testing.T) {
	//nolint:staticcheck // exercising the nil-context guard on purpose
	ctx := WithUserID(nil, "user-2")
	if got := UserIDFromContext(ctx); got != "user-2" {
		t.Fatalf("user id = %q, want user-2", got)
	}
}

func TestUserIDFromNilContext(t *testing.T) {
	//nolint:staticcheck // exercising the nil-context guard on purpose
	if got := UserIDFromContext(nil); got != "" {
		t.Fatalf("expected empty user id, got %q", got)
	}
}
