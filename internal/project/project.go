// Package project provides film project management and collaborator membership.
package project

import (
	"fmt"
	"slices"
	"strings"
	"time"

	apperrors "github.com/reelcrew/reelcrew/internal/platform/errors"
	"github.com/reelcrew/reelcrew/internal/platform/id"
)

// Status represents the lifecycle status of a project.
type Status int

const (
	// StatusUnspecified represents an invalid project status.
	StatusUnspecified Status = iota
	// StatusOngoing indicates a project still in production.
	StatusOngoing
	// StatusFinished indicates a completed project.
	StatusFinished
)

var (
	// ErrEmptyTitle indicates a missing project title.
	ErrEmptyTitle = apperrors.New(apperrors.CodeProjectTitleEmpty, "project title is required")
	// ErrEmptySummary indicates a missing project summary.
	ErrEmptySummary = apperrors.New(apperrors.CodeProjectSummaryEmpty, "project summary is required")
	// ErrInvalidStatus indicates a missing or invalid project status.
	ErrInvalidStatus = apperrors.New(apperrors.CodeProjectInvalidStatus, "project status is invalid")
	// ErrNotOwner indicates the acting user does not own the project.
	ErrNotOwner = apperrors.New(apperrors.CodeProjectNotOwner, "not the project owner")
	// ErrOwnerCollaborator indicates an attempt to add the owner as a collaborator.
	ErrOwnerCollaborator = apperrors.New(apperrors.CodeProjectOwnerCollaborator, "owner cannot be a collaborator")
	// ErrNotFound indicates a requested project record is missing.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "project not found")
)

// Project represents one film project and its collaborator membership.
type Project struct {
	ID            string
	OwnerID       string
	Title         string
	Status        Status
	Summary       string
	Collaborators []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasCollaborator reports whether the user is a member of the collaborator set.
func (p Project) HasCollaborator(userID string) bool {
	return slices.Contains(p.Collaborators, userID)
}

// CreateProjectInput describes the metadata needed to create a project.
type CreateProjectInput struct {
	OwnerID string
	Title   string
	Status  Status
	Summary string
}

// CreateProject creates a new project with a generated ID and timestamps.
func CreateProject(input CreateProjectInput, now func() time.Time, idGenerator func() (string, error)) (Project, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateProjectInput(input)
	if err != nil {
		return Project{}, err
	}

	projectID, err := idGenerator()
	if err != nil {
		return Project{}, fmt.Errorf("generate project id: %w", err)
	}

	createdAt := now().UTC()
	return Project{
		ID:        projectID,
		OwnerID:   normalized.OwnerID,
		Title:     normalized.Title,
		Status:    normalized.Status,
		Summary:   normalized.Summary,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}, nil
}

// NormalizeCreateProjectInput trims and validates project input metadata.
func NormalizeCreateProjectInput(input CreateProjectInput) (CreateProjectInput, error) {
	input.OwnerID = strings.TrimSpace(input.OwnerID)
	if input.OwnerID == "" {
		return CreateProjectInput{}, ErrNotOwner
	}
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return CreateProjectInput{}, ErrEmptyTitle
	}
	input.Summary = strings.TrimSpace(input.Summary)
	if input.Summary == "" {
		return CreateProjectInput{}, ErrEmptySummary
	}
	if input.Status != StatusOngoing && input.Status != StatusFinished {
		return CreateProjectInput{}, ErrInvalidStatus
	}
	return input, nil
}

// UpdateProjectInput describes the mutable project fields.
type UpdateProjectInput struct {
	Title   string
	Status  Status
	Summary string
}

// ApplyProjectUpdate validates input and returns the updated project record.
// Collaborator membership is never mutated here; it changes only through
// collaboration request acceptance.
func ApplyProjectUpdate(project Project, input UpdateProjectInput, now func() time.Time) (Project, error) {
	if now == nil {
		now = time.Now
	}
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return Project{}, ErrEmptyTitle
	}
	input.Summary = strings.TrimSpace(input.Summary)
	if input.Summary == "" {
		return Project{}, ErrEmptySummary
	}
	if input.Status != StatusOngoing && input.Status != StatusFinished {
		return Project{}, ErrInvalidStatus
	}

	project.Title = input.Title
	project.Status = input.Status
	project.Summary = input.Summary
	project.UpdatedAt = now().UTC()
	return project, nil
}

// ValidateCollaborator reports whether the user may join the collaborator set.
// The owner is implicit and never a member.
func ValidateCollaborator(project Project, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" || userID == project.OwnerID {
		return ErrOwnerCollaborator
	}
	return nil
}

// StatusLabel returns the wire label for a project status.
func StatusLabel(status Status) string {
	switch status {
	case StatusOngoing:
		return "ongoing"
	case StatusFinished:
		return "finished"
	default:
		return "unspecified"
	}
}

// StatusFromLabel converts a wire label to a Status value.
func StatusFromLabel(label string) Status {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "ongoing":
		return StatusOngoing
	case "finished":
		return StatusFinished
	default:
		return StatusUnspecified
	}
}
