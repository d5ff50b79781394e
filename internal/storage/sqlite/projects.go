package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/reelcrew/reelcrew/internal/project"
)

const projectColumns = `id, owner_id, title, status, summary, created_at, updated_at`

// PutProject inserts one project record.
func (s *Store) PutProject(ctx context.Context, record project.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("project id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO projects (`+projectColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.OwnerID,
		record.Title,
		project.StatusLabel(record.Status),
		record.Summary,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put project: %w", err)
	}
	return nil
}

// GetProject returns one project with its collaborator membership.
func (s *Store) GetProject(ctx context.Context, projectID string) (project.Project, error) {
	if err := ctx.Err(); err != nil {
		return project.Project{}, err
	}
	if err := s.ready(); err != nil {
		return project.Project{}, err
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return project.Project{}, project.ErrNotFound
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`,
		projectID,
	)
	record, err := scanProject(row)
	if err != nil {
		if isNoRows(err) {
			return project.Project{}, project.ErrNotFound
		}
		return project.Project{}, fmt.Errorf("get project: %w", err)
	}

	record.Collaborators, err = s.listCollaboratorIDs(ctx, record.ID)
	if err != nil {
		return project.Project{}, err
	}
	return record, nil
}

// UpdateProject overwrites one project's mutable fields and returns the
// stored copy. Collaborator membership changes only through the request
// engine's decision writes.
func (s *Store) UpdateProject(ctx context.Context, record project.Project) (project.Project, error) {
	if err := ctx.Err(); err != nil {
		return project.Project{}, err
	}
	if err := s.ready(); err != nil {
		return project.Project{}, err
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE projects
		 SET title = ?, status = ?, summary = ?, updated_at = ?
		 WHERE id = ?`,
		record.Title,
		project.StatusLabel(record.Status),
		record.Summary,
		toMillis(record.UpdatedAt),
		record.ID,
	)
	if err != nil {
		return project.Project{}, fmt.Errorf("update project: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return project.Project{}, fmt.Errorf("update project: %w", err)
	}
	if affected == 0 {
		return project.Project{}, project.ErrNotFound
	}
	return s.GetProject(ctx, record.ID)
}

// ListProjectsByOwner returns the projects a user owns, newest first.
func (s *Store) ListProjectsByOwner(ctx context.Context, ownerID string) ([]project.Project, error) {
	return s.listProjects(
		ctx,
		`SELECT `+projectColumns+`
		 FROM projects
		 WHERE owner_id = ?
		 ORDER BY created_at DESC, id DESC`,
		strings.TrimSpace(ownerID),
	)
}

// ListProjectsByCollaborator returns the projects a user collaborates on,
// newest first.
func (s *Store) ListProjectsByCollaborator(ctx context.Context, userID string) ([]project.Project, error) {
	return s.listProjects(
		ctx,
		`SELECT p.id, p.owner_id, p.title, p.status, p.summary, p.created_at, p.updated_at
		 FROM projects p
		 JOIN project_collaborators pc ON pc.project_id = p.id
		 WHERE pc.user_id = ?
		 ORDER BY p.created_at DESC, p.id DESC`,
		strings.TrimSpace(userID),
	)
}

// ListFinishedProjects returns every finished project, newest first.
func (s *Store) ListFinishedProjects(ctx context.Context) ([]project.Project, error) {
	return s.listProjects(
		ctx,
		`SELECT `+projectColumns+`
		 FROM projects
		 WHERE status = ?
		 ORDER BY created_at DESC, id DESC`,
		project.StatusLabel(project.StatusFinished),
	)
}

func (s *Store) listProjects(ctx context.Context, query string, args ...any) ([]project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var records []project.Project
	for rows.Next() {
		record, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	for i := range records {
		records[i].Collaborators, err = s.listCollaboratorIDs(ctx, records[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return records, nil
}

func (s *Store) listCollaboratorIDs(ctx context.Context, projectID string) ([]string, error) {
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT user_id
		 FROM project_collaborators
		 WHERE project_id = ?
		 ORDER BY added_at ASC, user_id ASC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list collaborators: %w", err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("list collaborators: %w", err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list collaborators: %w", err)
	}
	return userIDs, nil
}

func scanProject(row rowScanner) (project.Project, error) {
	var (
		record    project.Project
		status    string
		createdAt int64
		updatedAt int64
	)
	err := row.Scan(
		&record.ID,
		&record.OwnerID,
		&record.Title,
		&status,
		&record.Summary,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return project.Project{}, err
	}
	record.Status = project.StatusFromLabel(status)
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

var _ project.Store = (*Store)(nil)
