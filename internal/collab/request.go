// Package collab provides the collaboration request engine: the request
// lifecycle state machine, project membership changes, and notification
// fan-out for request outcomes.
package collab

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/reelcrew/reelcrew/internal/platform/errors"
	"github.com/reelcrew/reelcrew/internal/platform/id"
)

// MaxMessageLength caps the collaboration request message size.
const MaxMessageLength = 500

// Status represents the lifecycle status of a collaboration request.
type Status int

const (
	// StatusUnspecified represents an invalid request status.
	StatusUnspecified Status = iota
	// StatusPending indicates a request awaiting the receiver's decision.
	StatusPending
	// StatusAccepted indicates a request the receiver accepted. Terminal.
	StatusAccepted
	// StatusDenied indicates a request the receiver denied. Terminal.
	StatusDenied
)

// Decision represents the receiver's response to a pending request.
type Decision int

const (
	// DecisionUnspecified represents an invalid decision value.
	DecisionUnspecified Decision = iota
	// DecisionAccept accepts the request and joins the project.
	DecisionAccept
	// DecisionDeny declines the request.
	DecisionDeny
)

var (
	// ErrNotFound indicates a requested collaboration request is missing.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "collaboration request not found")
	// ErrEmptySenderID indicates a missing sender ID.
	ErrEmptySenderID = apperrors.New(apperrors.CodeCollabSenderEmpty, "sender id is required")
	// ErrEmptyReceiverID indicates a missing receiver ID.
	ErrEmptyReceiverID = apperrors.New(apperrors.CodeCollabReceiverEmpty, "receiver id is required")
	// ErrEmptyProjectID indicates a missing project ID.
	ErrEmptyProjectID = apperrors.New(apperrors.CodeCollabProjectEmpty, "project id is required")
	// ErrEmptyMessage indicates a missing request message.
	ErrEmptyMessage = apperrors.New(apperrors.CodeCollabMessageEmpty, "message is required")
	// ErrMessageTooLong indicates a request message above the size cap.
	ErrMessageTooLong = apperrors.WithMetadata(
		apperrors.CodeCollabMessageTooLong,
		"message must be at most 500 characters",
		map[string]string{"limit": "500"},
	)
	// ErrSelfRequest indicates a request where sender and receiver match.
	ErrSelfRequest = apperrors.New(apperrors.CodeCollabSelfRequest, "cannot send a collaboration request to yourself")
	// ErrProjectNotOwned indicates the sender does not own the offered project.
	ErrProjectNotOwned = apperrors.New(apperrors.CodeCollabProjectNotOwned, "project is not owned by the sender")
	// ErrNotReceiver indicates the acting user is not the request receiver.
	ErrNotReceiver = apperrors.New(apperrors.CodeCollabNotReceiver, "not authorized to respond to this request")
	// ErrDuplicateRequest indicates a pending request already exists for the
	// same sender, receiver and project.
	ErrDuplicateRequest = apperrors.New(apperrors.CodeCollabDuplicateRequest, "collaboration request already sent")
	// ErrAlreadyProcessed indicates a decision on a terminal request.
	ErrAlreadyProcessed = apperrors.New(apperrors.CodeCollabAlreadyProcessed, "request already processed")
	// ErrInvalidDecision indicates an unknown decision value.
	ErrInvalidDecision = apperrors.New(apperrors.CodeCollabInvalidDecision, "decision is invalid")
)

// Request represents one collaboration proposal: the sender offers their own
// project and invites the receiver onto it.
type Request struct {
	ID         string
	SenderID   string
	ReceiverID string
	ProjectID  string
	Message    string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Pending reports whether the request still awaits a decision.
func (r Request) Pending() bool {
	return r.Status == StatusPending
}

// SubmitInput describes the metadata needed to create a request.
type SubmitInput struct {
	SenderID   string
	ReceiverID string
	ProjectID  string
	Message    string
}

// NewRequest creates a pending request with a generated ID and timestamps.
func NewRequest(input SubmitInput, now func() time.Time, idGenerator func() (string, error)) (Request, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeSubmitInput(input)
	if err != nil {
		return Request{}, err
	}

	requestID, err := idGenerator()
	if err != nil {
		return Request{}, fmt.Errorf("generate request id: %w", err)
	}

	createdAt := now().UTC()
	return Request{
		ID:         requestID,
		SenderID:   normalized.SenderID,
		ReceiverID: normalized.ReceiverID,
		ProjectID:  normalized.ProjectID,
		Message:    normalized.Message,
		Status:     StatusPending,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}, nil
}

// NormalizeSubmitInput trims and validates request input metadata.
func NormalizeSubmitInput(input SubmitInput) (SubmitInput, error) {
	input.SenderID = strings.TrimSpace(input.SenderID)
	if input.SenderID == "" {
		return SubmitInput{}, ErrEmptySenderID
	}
	input.ReceiverID = strings.TrimSpace(input.ReceiverID)
	if input.ReceiverID == "" {
		return SubmitInput{}, ErrEmptyReceiverID
	}
	if input.SenderID == input.ReceiverID {
		return SubmitInput{}, ErrSelfRequest
	}
	input.ProjectID = strings.TrimSpace(input.ProjectID)
	if input.ProjectID == "" {
		return SubmitInput{}, ErrEmptyProjectID
	}
	input.Message = strings.TrimSpace(input.Message)
	if input.Message == "" {
		return SubmitInput{}, ErrEmptyMessage
	}
	if len([]rune(input.Message)) > MaxMessageLength {
		return SubmitInput{}, ErrMessageTooLong
	}
	return input, nil
}

// StatusForDecision returns the terminal status a decision leads to.
func StatusForDecision(decision Decision) (Status, error) {
	switch decision {
	case DecisionAccept:
		return StatusAccepted, nil
	case DecisionDeny:
		return StatusDenied, nil
	default:
		return StatusUnspecified, ErrInvalidDecision
	}
}

// StatusLabel returns the wire label for a request status.
func StatusLabel(status Status) string {
	switch status {
	case StatusPending:
		return "pending"
	case StatusAccepted:
		return "accepted"
	case StatusDenied:
		return "denied"
	default:
		return "unspecified"
	}
}

// StatusFromLabel converts a wire label to a Status value.
func StatusFromLabel(label string) Status {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "pending":
		return StatusPending
	case "accepted":
		return StatusAccepted
	case "denied":
		return StatusDenied
	default:
		return StatusUnspecified
	}
}

// DecisionFromLabel converts a wire label to a Decision value.
func DecisionFromLabel(label string) Decision {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "accept":
		return DecisionAccept
	case "deny":
		return DecisionDeny
	default:
		return DecisionUnspecified
	}
}
