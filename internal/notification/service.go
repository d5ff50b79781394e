package notification

import (
	"context"
	"strings"
	"time"
)

const (
	defaultInboxLimit = 20
	maxInboxLimit     = 100
)

// Store is the persistence boundary for notification inbox state. Creation is
// not part of this contract: notifications are written inside the
// collaboration engine's transactions.
type Store interface {
	GetNotification(ctx context.Context, notificationID string) (Notification, error)
	ListNotificationsByRecipient(ctx context.Context, recipientUserID string, limit int) ([]Notification, error)
	CountUnreadByRecipient(ctx context.Context, recipientUserID string) (int, error)
	MarkNotificationRead(ctx context.Context, notificationID string, readAt time.Time) (Notification, error)
	MarkAllNotificationsRead(ctx context.Context, recipientUserID string, readAt time.Time) error
}

// Service orchestrates recipient inbox behavior.
type Service struct {
	store Store
	clock func() time.Time
}

// NewService constructs notification inbox use-cases.
func NewService(store Store, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		store: store,
		clock: clock,
	}
}

// ListInbox returns the recipient's notifications, newest first.
func (s *Service) ListInbox(ctx context.Context, recipientUserID string, limit int) ([]Notification, error) {
	recipientUserID = strings.TrimSpace(recipientUserID)
	if recipientUserID == "" {
		return nil, ErrNotFound
	}
	switch {
	case limit <= 0:
		limit = defaultInboxLimit
	case limit > maxInboxLimit:
		limit = maxInboxLimit
	}
	return s.store.ListNotificationsByRecipient(ctx, recipientUserID, limit)
}

// CountUnread returns the recipient's unread notification count.
func (s *Service) CountUnread(ctx context.Context, recipientUserID string) (int, error) {
	recipientUserID = strings.TrimSpace(recipientUserID)
	if recipientUserID == "" {
		return 0, ErrNotFound
	}
	return s.store.CountUnreadByRecipient(ctx, recipientUserID)
}

// MarkRead flips one recipient-owned notification to read.
func (s *Service) MarkRead(ctx context.Context, actingUserID string, notificationID string) (Notification, error) {
	notificationID = strings.TrimSpace(notificationID)
	if notificationID == "" {
		return Notification{}, ErrNotFound
	}
	record, err := s.store.GetNotification(ctx, notificationID)
	if err != nil {
		return Notification{}, err
	}
	// Ownership failures render as not-found so recipients cannot probe
	// other users' notification ids.
	if record.RecipientUserID != strings.TrimSpace(actingUserID) {
		return Notification{}, ErrNotFound
	}
	if record.Read() {
		return record, nil
	}
	return s.store.MarkNotificationRead(ctx, notificationID, s.clock().UTC())
}

// MarkAllRead flips every unread notification owned by the acting user.
func (s *Service) MarkAllRead(ctx context.Context, actingUserID string) error {
	actingUserID = strings.TrimSpace(actingUserID)
	if actingUserID == "" {
		return ErrNotFound
	}
	return s.store.MarkAllNotificationsRead(ctx, actingUserID, s.clock().UTC())
}
