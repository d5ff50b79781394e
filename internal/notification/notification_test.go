package notification

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
}

func fixedID() (string, error) {
	return "note-fixed-id", nil
}

func TestNewNotification(t *testing.T) {
	note, err := New(NewInput{
		RecipientUserID: "user-2",
		Kind:            KindCollabRequested,
		Message:         `Ada wants to collaborate on "Night Shift"`,
		RelatedEntityID: "req-1",
	}, fixedClock, fixedID)
	if err != nil {
		t.Fatalf("new notification: %v", err)
	}
	if note.ID != "note-fixed-id" {
		t.Fatalf("id = %q, want note-fixed-id", note.ID)
	}
	if note.Read() {
		t.Fatal("expected new notification to be unread")
	}
	if !note.CreatedAt.Equal(fixedClock()) {
		t.Fatalf("created_at = %v, want %v", note.CreatedAt, fixedClock())
	}
}

func TestNewNotificationValidation(t *testing.T) {
	if _, err := New(NewInput{Kind: KindCollabAccepted, Message: "m"}, fixedClock, fixedID); err == nil {
		t.Fatal("expected error for missing recipient")
	}
	if _, err := New(NewInput{RecipientUserID: "u1", Kind: "bogus", Message: "m"}, fixedClock, fixedID); err == nil {
		t.Fatal("expected error for invalid kind")
	}
	if _, err := New(NewInput{RecipientUserID: "u1", Kind: KindCollabDenied}, fixedClock, fixedID); err == nil {
		t.Fatal("expected error for empty message")
	}
}

func TestValidKind(t *testing.T) {
	for _, kind := range []Kind{KindCollabRequested, KindCollabAccepted, KindCollabDenied} {
		if !ValidKind(kind) {
			t.Fatalf("expected %q to be valid", kind)
		}
	}
	if ValidKind("collab_everything") {
		t.Fatal("expected unknown kind to be invalid")
	}
}

type fakeStore struct {
	notes     map[string]Notification
	markedAll string
}

func (s *fakeStore) GetNotification(_ context.Context, notificationID string) (Notification, error) {
	note, ok := s.notes[notificationID]
	if !ok {
		return Notification{}, ErrNotFound
	}
	return note, nil
}

func (s *fakeStore) ListNotificationsByRecipient(_ context.Context, recipientUserID string, limit int) ([]Notification, error) {
	var result []Notification
	for _, note := range s.notes {
		if note.RecipientUserID == recipientUserID && len(result) < limit {
			result = append(result, note)
		}
	}
	return result, nil
}

func (s *fakeStore) CountUnreadByRecipient(_ context.Context, recipientUserID string) (int, error) {
	count := 0
	for _, note := range s.notes {
		if note.RecipientUserID == recipientUserID && !note.Read() {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) MarkNotificationRead(_ context.Context, notificationID string, readAt time.Time) (Notification, error) {
	note, ok := s.notes[notificationID]
	if !ok {
		return Notification{}, ErrNotFound
	}
	note.ReadAt = &readAt
	s.notes[notificationID] = note
	return note, nil
}

func (s *fakeStore) MarkAllNotificationsRead(_ context.Context, recipientUserID string, readAt time.Time) error {
	s.markedAll = recipientUserID
	for id, note := range s.notes {
		if note.RecipientUserID == recipientUserID && !note.Read() {
			note.ReadAt = &readAt
			s.notes[id] = note
		}
	}
	return nil
}

func TestMarkReadEnforcesOwnership(t *testing.T) {
	store := &fakeStore{notes: map[string]Notification{
		"n1": {ID: "n1", RecipientUserID: "user-2", Kind: KindCollabRequested, Message: "m"},
	}}
	service := NewService(store, fixedClock)

	if _, err := service.MarkRead(context.Background(), "user-9", "n1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, ErrNotFound)
	}

	note, err := service.MarkRead(context.Background(), "user-2", "n1")
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !note.Read() {
		t.Fatal("expected notification to be read")
	}
}

func TestMarkReadIdempotent(t *testing.T) {
	readAt := fixedClock().Add(-time.Hour)
	store := &fakeStore{notes: map[string]Notification{
		"n1": {ID: "n1", RecipientUserID: "user-2", ReadAt: &readAt},
	}}
	service := NewService(store, fixedClock)

	note, err := service.MarkRead(context.Background(), "user-2", "n1")
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !note.ReadAt.Equal(readAt) {
		t.Fatalf("expected original read timestamp preserved, got %v", note.ReadAt)
	}
}

func TestMarkAllReadScopedToRecipient(t *testing.T) {
	store := &fakeStore{notes: map[string]Notification{
		"n1": {ID: "n1", RecipientUserID: "user-2"},
		"n2": {ID: "n2", RecipientUserID: "user-3"},
	}}
	service := NewService(store, fixedClock)

	if err := service.MarkAllRead(context.Background(), "user-2"); err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if store.markedAll != "user-2" {
		t.Fatalf("marked recipient = %q, want user-2", store.markedAll)
	}
	if !store.notes["n1"].Read() {
		t.Fatal("expected user-2 notification read")
	}
	if store.notes["n2"].Read() {
		t.Fatal("expected user-3 notification untouched")
	}
}

func TestCountUnread(t *testing.T) {
	readAt := fixedClock()
	store := &fakeStore{notes: map[string]Notification{
		"n1": {ID: "n1", RecipientUserID: "user-2"},
		"n2": {ID: "n2", RecipientUserID: "user-2", ReadAt: &readAt},
	}}
	service := NewService(store, fixedClock)

	count, err := service.CountUnread(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("count unread: %v", err)
	}
	if count != 1 {
		t.Fatalf("unread = %d, want 1", count)
	}
}
