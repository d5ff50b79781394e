// Package notification provides recipient-owned, read-tracked notifications.
package notification

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/reelcrew/reelcrew/internal/platform/errors"
	"github.com/reelcrew/reelcrew/internal/platform/id"
)

// Kind identifies one notification lifecycle event type.
type Kind string

const (
	// KindCollabRequested signals a new incoming collaboration request.
	KindCollabRequested Kind = "collab_requested"
	// KindCollabAccepted signals an accepted collaboration request.
	KindCollabAccepted Kind = "collab_accepted"
	// KindCollabDenied signals a denied collaboration request.
	KindCollabDenied Kind = "collab_denied"
)

var (
	// ErrNotFound indicates a requested notification record is missing.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "notification not found")
	// ErrNotRecipient indicates the acting user does not own the notification.
	ErrNotRecipient = apperrors.New(apperrors.CodeNotificationNotRecipient, "not the notification recipient")
)

// Notification captures one user-targeted inbox item. Notifications are
// created only as a side effect of collaboration request transitions and are
// mutated only to flip their read marker.
type Notification struct {
	ID              string
	RecipientUserID string
	Kind            Kind
	Message         string
	RelatedEntityID string
	CreatedAt       time.Time
	ReadAt          *time.Time
}

// Read reports whether the notification has been acknowledged.
func (n Notification) Read() bool {
	return n.ReadAt != nil
}

// NewInput describes one notification to be created.
type NewInput struct {
	RecipientUserID string
	Kind            Kind
	Message         string
	RelatedEntityID string
}

// New builds a notification record with a generated ID and timestamp.
func New(input NewInput, now func() time.Time, idGenerator func() (string, error)) (Notification, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	recipientUserID := strings.TrimSpace(input.RecipientUserID)
	if recipientUserID == "" {
		return Notification{}, fmt.Errorf("recipient user id is required")
	}
	if !ValidKind(input.Kind) {
		return Notification{}, fmt.Errorf("notification kind %q is invalid", input.Kind)
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return Notification{}, fmt.Errorf("notification message is required")
	}

	notificationID, err := idGenerator()
	if err != nil {
		return Notification{}, fmt.Errorf("generate notification id: %w", err)
	}

	return Notification{
		ID:              notificationID,
		RecipientUserID: recipientUserID,
		Kind:            input.Kind,
		Message:         message,
		RelatedEntityID: strings.TrimSpace(input.RelatedEntityID),
		CreatedAt:       now().UTC(),
	}, nil
}

// ValidKind reports whether the kind is a known notification kind.
func ValidKind(kind Kind) bool {
	switch kind {
	case KindCollabRequested, KindCollabAccepted, KindCollabDenied:
		return true
	default:
		return false
	}
}
