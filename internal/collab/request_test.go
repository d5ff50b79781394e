package collab

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 12, 15, 0, 0, 0, time.UTC)
}

func fixedID() (string, error) {
	return "req-fixed-id", nil
}

func TestNewRequest(t *testing.T) {
	request, err := NewRequest(SubmitInput{
		SenderID:   "user-1",
		ReceiverID: "user-2",
		ProjectID:  "proj-1",
		Message:    "  Want to shoot this together?  ",
	}, fixedClock, fixedID)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if request.ID != "req-fixed-id" {
		t.Fatalf("id = %q, want req-fixed-id", request.ID)
	}
	if !request.Pending() {
		t.Fatalf("status = %v, want pending", request.Status)
	}
	if request.Message != "Want to shoot this together?" {
		t.Fatalf("message = %q, want trimmed", request.Message)
	}
	if !request.CreatedAt.Equal(fixedClock()) || !request.UpdatedAt.Equal(fixedClock()) {
		t.Fatalf("timestamps = %v/%v, want %v", request.CreatedAt, request.UpdatedAt, fixedClock())
	}
}

func TestNormalizeSubmitInputValidation(t *testing.T) {
	base := SubmitInput{
		SenderID:   "user-1",
		ReceiverID: "user-2",
		ProjectID:  "proj-1",
		Message:    "hello",
	}

	cases := []struct {
		name    string
		mutate  func(*SubmitInput)
		wantErr error
	}{
		{"missing sender", func(in *SubmitInput) { in.SenderID = "  " }, ErrEmptySenderID},
		{"missing receiver", func(in *SubmitInput) { in.ReceiverID = "" }, ErrEmptyReceiverID},
		{"self request", func(in *SubmitInput) { in.ReceiverID = "user-1" }, ErrSelfRequest},
		{"missing project", func(in *SubmitInput) { in.ProjectID = "" }, ErrEmptyProjectID},
		{"missing message", func(in *SubmitInput) { in.Message = "   " }, ErrEmptyMessage},
		{"message too long", func(in *SubmitInput) { in.Message = strings.Repeat("a", MaxMessageLength+1) }, ErrMessageTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := base
			tc.mutate(&input)
			if _, err := NormalizeSubmitInput(input); !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestNormalizeSubmitInputAcceptsMaxLengthMessage(t *testing.T) {
	input := SubmitInput{
		SenderID:   "user-1",
		ReceiverID: "user-2",
		ProjectID:  "proj-1",
		Message:    strings.Repeat("é", MaxMessageLength),
	}
	if _, err := NormalizeSubmitInput(input); err != nil {
		t.Fatalf("expected max-length message to pass, got %v", err)
	}
}

func TestStatusForDecision(t *testing.T) {
	if status, err := StatusForDecision(DecisionAccept); err != nil || status != StatusAccepted {
		t.Fatalf("accept = %v, %v", status, err)
	}
	if status, err := StatusForDecision(DecisionDeny); err != nil || status != StatusDenied {
		t.Fatalf("deny = %v, %v", status, err)
	}
	if _, err := StatusForDecision(DecisionUnspecified); !errors.Is(err, ErrInvalidDecision) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidDecision)
	}
}

func TestStatusLabelsRoundTrip(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusAccepted, StatusDenied} {
		if got := StatusFromLabel(StatusLabel(status)); got != status {
			t.Fatalf("round trip for %v = %v", status, got)
		}
	}
	if StatusFromLabel("bogus") != StatusUnspecified {
		t.Fatal("expected unknown label to map to unspecified")
	}
}

func TestDecisionFromLabel(t *testing.T) {
	if DecisionFromLabel(" Accept ") != DecisionAccept {
		t.Fatal("expected accept label to parse")
	}
	if DecisionFromLabel("deny") != DecisionDeny {
		t.Fatal("expected deny label to parse")
	}
	if DecisionFromLabel("maybe") != DecisionUnspecified {
		t.Fatal("expected unknown label to map to unspecified")
	}
}
