package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/reelcrew/reelcrew/internal/identity"
)

const userColumns = `id, name, email, artist_type, bio, contact_info, profile_pic, created_at, updated_at`

// PutUser inserts one profile record.
func (s *Store) PutUser(ctx context.Context, user identity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	if strings.TrimSpace(user.ID) == "" {
		return fmt.Errorf("user id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Name,
		user.Email,
		user.ArtistType,
		user.Bio,
		user.ContactInfo,
		user.ProfilePic,
		toMillis(user.CreatedAt),
		toMillis(user.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err, "users.email") {
			return identity.ErrEmailTaken
		}
		return fmt.Errorf("put user: %w", err)
	}
	return nil
}

// GetUser returns one profile record by ID.
func (s *Store) GetUser(ctx context.Context, userID string) (identity.User, error) {
	if err := ctx.Err(); err != nil {
		return identity.User{}, err
	}
	if err := s.ready(); err != nil {
		return identity.User{}, err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return identity.User{}, identity.ErrNotFound
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`,
		userID,
	)
	user, err := scanUser(row)
	if err != nil {
		if isNoRows(err) {
			return identity.User{}, identity.ErrNotFound
		}
		return identity.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateUser overwrites one profile record and returns the stored copy.
func (s *Store) UpdateUser(ctx context.Context, user identity.User) (identity.User, error) {
	if err := ctx.Err(); err != nil {
		return identity.User{}, err
	}
	if err := s.ready(); err != nil {
		return identity.User{}, err
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE users
		 SET name = ?, artist_type = ?, bio = ?, contact_info = ?, profile_pic = ?, updated_at = ?
		 WHERE id = ?`,
		user.Name,
		user.ArtistType,
		user.Bio,
		user.ContactInfo,
		user.ProfilePic,
		toMillis(user.UpdatedAt),
		user.ID,
	)
	if err != nil {
		return identity.User{}, fmt.Errorf("update user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return identity.User{}, fmt.Errorf("update user: %w", err)
	}
	if affected == 0 {
		return identity.User{}, identity.ErrNotFound
	}
	return s.GetUser(ctx, user.ID)
}

// ListUsers returns all profiles except the excluded one, name order.
func (s *Store) ListUsers(ctx context.Context, excludeUserID string) ([]identity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+userColumns+`
		 FROM users
		 WHERE id != ?
		 ORDER BY name COLLATE NOCASE ASC`,
		strings.TrimSpace(excludeUserID),
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []identity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (identity.User, error) {
	var (
		user      identity.User
		createdAt int64
		updatedAt int64
	)
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.ArtistType,
		&user.Bio,
		&user.ContactInfo,
		&user.ProfilePic,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return identity.User{}, err
	}
	user.CreatedAt = fromMillis(createdAt)
	user.UpdatedAt = fromMillis(updatedAt)
	return user, nil
}

var _ identity.Store = (*Store)(nil)
