package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/reelcrew/reelcrew/internal/collab"
	"github.com/reelcrew/reelcrew/internal/notification"
)

const requestColumns = `id, sender_id, receiver_id, project_id, message, status, created_at, updated_at`

// GetRequest returns one collaboration request by ID.
func (s *Store) GetRequest(ctx context.Context, requestID string) (collab.Request, error) {
	if err := ctx.Err(); err != nil {
		return collab.Request{}, err
	}
	if err := s.ready(); err != nil {
		return collab.Request{}, err
	}
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return collab.Request{}, collab.ErrNotFound
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+requestColumns+` FROM collab_requests WHERE id = ?`,
		requestID,
	)
	request, err := scanRequest(row)
	if err != nil {
		if isNoRows(err) {
			return collab.Request{}, collab.ErrNotFound
		}
		return collab.Request{}, fmt.Errorf("get request: %w", err)
	}
	return request, nil
}

// ListPendingByReceiver returns pending requests addressed to a user in
// creation order.
func (s *Store) ListPendingByReceiver(ctx context.Context, receiverID string) ([]collab.Request, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+requestColumns+`
		 FROM collab_requests
		 WHERE receiver_id = ? AND status = ?
		 ORDER BY created_at ASC, id ASC`,
		strings.TrimSpace(receiverID),
		collab.StatusLabel(collab.StatusPending),
	)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}
	defer rows.Close()

	var requests []collab.Request
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("list pending requests: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}
	return requests, nil
}

// CreateRequest stores a pending request and the receiver's notification in
// one transaction. The partial unique index on pending rows turns a
// concurrent duplicate into ErrDuplicateRequest.
func (s *Store) CreateRequest(ctx context.Context, request collab.Request, note notification.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	if strings.TrimSpace(request.ID) == "" {
		return fmt.Errorf("request id is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create request: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO collab_requests (`+requestColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		request.ID,
		request.SenderID,
		request.ReceiverID,
		request.ProjectID,
		request.Message,
		collab.StatusLabel(request.Status),
		toMillis(request.CreatedAt),
		toMillis(request.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err, "collab_requests.sender_id") {
			return collab.ErrDuplicateRequest
		}
		return fmt.Errorf("insert request: %w", err)
	}

	if err := insertNotification(ctx, tx, note); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create request: %w", err)
	}
	return nil
}

// ApplyDecision transitions a pending request, adds the collaborator on
// accept, and stores the sender's notification, all in one transaction. The
// status guard on the UPDATE makes concurrent decisions lose cleanly.
func (s *Store) ApplyDecision(ctx context.Context, write collab.DecisionWrite) (collab.Request, error) {
	if err := ctx.Err(); err != nil {
		return collab.Request{}, err
	}
	if err := s.ready(); err != nil {
		return collab.Request{}, err
	}
	requestID := strings.TrimSpace(write.RequestID)
	if requestID == "" {
		return collab.Request{}, collab.ErrNotFound
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return collab.Request{}, fmt.Errorf("begin apply decision: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(
		ctx,
		`UPDATE collab_requests
		 SET status = ?, updated_at = ?
		 WHERE id = ? AND status = ?`,
		collab.StatusLabel(write.Status),
		toMillis(write.DecidedAt),
		requestID,
		collab.StatusLabel(collab.StatusPending),
	)
	if err != nil {
		return collab.Request{}, fmt.Errorf("transition request: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return collab.Request{}, fmt.Errorf("transition request: %w", err)
	}
	if affected == 0 {
		// Either the request is gone or another decision landed first.
		row := tx.QueryRowContext(
			ctx,
			`SELECT 1 FROM collab_requests WHERE id = ?`,
			requestID,
		)
		var found int
		if scanErr := row.Scan(&found); scanErr != nil {
			if isNoRows(scanErr) {
				return collab.Request{}, collab.ErrNotFound
			}
			return collab.Request{}, fmt.Errorf("transition request: %w", scanErr)
		}
		return collab.Request{}, collab.ErrAlreadyProcessed
	}

	if write.CollaboratorID != "" {
		_, err = tx.ExecContext(
			ctx,
			`INSERT OR IGNORE INTO project_collaborators (project_id, user_id, added_at)
			 VALUES (?, ?, ?)`,
			write.ProjectID,
			write.CollaboratorID,
			toMillis(write.DecidedAt),
		)
		if err != nil {
			return collab.Request{}, fmt.Errorf("add collaborator: %w", err)
		}
	}

	if err := insertNotification(ctx, tx, write.Notification); err != nil {
		return collab.Request{}, err
	}

	row := tx.QueryRowContext(
		ctx,
		`SELECT `+requestColumns+` FROM collab_requests WHERE id = ?`,
		requestID,
	)
	request, err := scanRequest(row)
	if err != nil {
		return collab.Request{}, fmt.Errorf("reload request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return collab.Request{}, fmt.Errorf("commit apply decision: %w", err)
	}
	return request, nil
}

func insertNotification(ctx context.Context, tx *sql.Tx, note notification.Notification) error {
	if strings.TrimSpace(note.ID) == "" {
		return fmt.Errorf("notification id is required")
	}
	var readAt any
	if note.ReadAt != nil {
		readAt = toMillis(*note.ReadAt)
	}
	_, err := tx.ExecContext(
		ctx,
		`INSERT INTO notifications (id, recipient_user_id, kind, message, related_entity_id, created_at, read_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		note.ID,
		note.RecipientUserID,
		string(note.Kind),
		note.Message,
		note.RelatedEntityID,
		toMillis(note.CreatedAt),
		readAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func scanRequest(row rowScanner) (collab.Request, error) {
	var (
		request   collab.Request
		status    string
		createdAt int64
		updatedAt int64
	)
	err := row.Scan(
		&request.ID,
		&request.SenderID,
		&request.ReceiverID,
		&request.ProjectID,
		&request.Message,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return collab.Request{}, err
	}
	request.Status = collab.StatusFromLabel(status)
	request.CreatedAt = fromMillis(createdAt)
	request.UpdatedAt = fromMillis(updatedAt)
	return request, nil
}

var _ collab.Store = (*Store)(nil)
