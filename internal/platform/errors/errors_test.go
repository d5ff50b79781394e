package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := New(CodeCollabDuplicateRequest, "pending request already exists")
	target := New(CodeCollabDuplicateRequest, "different message")

	if !stderrors.Is(err, target) {
		t.Fatal("expected errors with the same code to match")
	}

	other := New(CodeCollabAlreadyProcessed, "request already processed")
	if stderrors.Is(err, other) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk failure")
	err := Wrap(CodeUnknown, "persist request", cause)

	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be found in chain")
	}
	if err.Error() != "persist request" {
		t.Fatalf("message = %q, want persist request", err.Error())
	}
}

func TestCodeOfWalksChain(t *testing.T) {
	inner := New(CodeCollabNotReceiver, "not the receiver")
	wrapped := fmt.Errorf("respond: %w", inner)

	if got := CodeOf(wrapped); got != CodeCollabNotReceiver {
		t.Fatalf("code = %q, want %q", got, CodeCollabNotReceiver)
	}
	if got := CodeOf(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("code = %q, want %q", got, CodeUnknown)
	}
	if got := CodeOf(nil); got != CodeUnknown {
		t.Fatalf("code = %q, want %q", got, CodeUnknown)
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeCollabMessageEmpty, http.StatusBadRequest},
		{CodeCollabMessageTooLong, http.StatusBadRequest},
		{CodeCollabNotReceiver, http.StatusUnauthorized},
		{CodeCollabProjectNotOwned, http.StatusUnauthorized},
		{CodeCollabDuplicateRequest, http.StatusConflict},
		{CodeCollabAlreadyProcessed, http.StatusConflict},
		{CodeNotFound, http.StatusNotFound},
		{CodeUnknown, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.code.HTTPStatus(); got != tc.want {
			t.Fatalf("HTTPStatus(%s) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestWithMetadata(t *testing.T) {
	err := WithMetadata(CodeCollabMessageTooLong, "message too long", map[string]string{
		"limit": "500",
	})
	if err.Metadata["limit"] != "500" {
		t.Fatalf("metadata limit = %q, want 500", err.Metadata["limit"])
	}
}
