package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/reelcrew/reelcrew/internal/notification"
)

const notificationColumns = `id, recipient_user_id, kind, message, related_entity_id, created_at, read_at`

// GetNotification returns one notification by ID.
func (s *Store) GetNotification(ctx context.Context, notificationID string) (notification.Notification, error) {
	if err := ctx.Err(); err != nil {
		return notification.Notification{}, err
	}
	if err := s.ready(); err != nil {
		return notification.Notification{}, err
	}
	notificationID = strings.TrimSpace(notificationID)
	if notificationID == "" {
		return notification.Notification{}, notification.ErrNotFound
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = ?`,
		notificationID,
	)
	note, err := scanNotification(row)
	if err != nil {
		if isNoRows(err) {
			return notification.Notification{}, notification.ErrNotFound
		}
		return notification.Notification{}, fmt.Errorf("get notification: %w", err)
	}
	return note, nil
}

// ListNotificationsByRecipient returns a recipient's notifications, newest
// first, capped at limit.
func (s *Store) ListNotificationsByRecipient(ctx context.Context, recipientUserID string, limit int) ([]notification.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+notificationColumns+`
		 FROM notifications
		 WHERE recipient_user_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		strings.TrimSpace(recipientUserID),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notes []notification.Notification
	for rows.Next() {
		note, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("list notifications: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notes, nil
}

// CountUnreadByRecipient returns a recipient's unread notification count.
func (s *Store) CountUnreadByRecipient(ctx context.Context, recipientUserID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.ready(); err != nil {
		return 0, err
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT COUNT(*)
		 FROM notifications
		 WHERE recipient_user_id = ? AND read_at IS NULL`,
		strings.TrimSpace(recipientUserID),
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// MarkNotificationRead stamps one notification as read and returns the
// stored copy. Already-read notifications keep their original timestamp.
func (s *Store) MarkNotificationRead(ctx context.Context, notificationID string, readAt time.Time) (notification.Notification, error) {
	if err := ctx.Err(); err != nil {
		return notification.Notification{}, err
	}
	if err := s.ready(); err != nil {
		return notification.Notification{}, err
	}
	notificationID = strings.TrimSpace(notificationID)
	if notificationID == "" {
		return notification.Notification{}, notification.ErrNotFound
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE notifications
		 SET read_at = ?
		 WHERE id = ? AND read_at IS NULL`,
		toMillis(readAt),
		notificationID,
	)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("mark notification read: %w", err)
	}
	if _, err := result.RowsAffected(); err != nil {
		return notification.Notification{}, fmt.Errorf("mark notification read: %w", err)
	}
	return s.GetNotification(ctx, notificationID)
}

// MarkAllNotificationsRead stamps every unread notification for a recipient.
func (s *Store) MarkAllNotificationsRead(ctx context.Context, recipientUserID string, readAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE notifications
		 SET read_at = ?
		 WHERE recipient_user_id = ? AND read_at IS NULL`,
		toMillis(readAt),
		strings.TrimSpace(recipientUserID),
	)
	if err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}

func scanNotification(row rowScanner) (notification.Notification, error) {
	var (
		note      notification.Notification
		kind      string
		createdAt int64
		readAt    sql.NullInt64
	)
	err := row.Scan(
		&note.ID,
		&note.RecipientUserID,
		&kind,
		&note.Message,
		&note.RelatedEntityID,
		&createdAt,
		&readAt,
	)
	if err != nil {
		return notification.Notification{}, err
	}
	note.Kind = notification.Kind(kind)
	note.CreatedAt = fromMillis(createdAt)
	if readAt.Valid {
		stamp := fromMillis(readAt.Int64)
		note.ReadAt = &stamp
	}
	return note, nil
}

var _ notification.Store = (*Store)(nil)
