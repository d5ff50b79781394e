package project

import (
	"errors"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
}

func fixedID() (string, error) {
	return "project-fixed-id", nil
}

func TestCreateProjectNormalizesFields(t *testing.T) {
	project, err := CreateProject(CreateProjectInput{
		OwnerID: " user-1 ",
		Title:   "  Night Shift ",
		Status:  StatusOngoing,
		Summary: " a short film about a hospital ",
	}, fixedClock, fixedID)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if project.ID != "project-fixed-id" {
		t.Fatalf("id = %q, want project-fixed-id", project.ID)
	}
	if project.OwnerID != "user-1" {
		t.Fatalf("owner = %q, want user-1", project.OwnerID)
	}
	if project.Title != "Night Shift" {
		t.Fatalf("title = %q, want Night Shift", project.Title)
	}
	if len(project.Collaborators) != 0 {
		t.Fatalf("expected empty collaborator set, got %v", project.Collaborators)
	}
}

func TestCreateProjectValidation(t *testing.T) {
	cases := []struct {
		name  string
		input CreateProjectInput
		want  error
	}{
		{"missing owner", CreateProjectInput{Title: "T", Status: StatusOngoing, Summary: "S"}, ErrNotOwner},
		{"missing title", CreateProjectInput{OwnerID: "u1", Status: StatusOngoing, Summary: "S"}, ErrEmptyTitle},
		{"missing summary", CreateProjectInput{OwnerID: "u1", Title: "T", Status: StatusOngoing}, ErrEmptySummary},
		{"invalid status", CreateProjectInput{OwnerID: "u1", Title: "T", Summary: "S"}, ErrInvalidStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CreateProject(tc.input, fixedClock, fixedID)
			if !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestApplyProjectUpdatePreservesMembership(t *testing.T) {
	project := Project{
		ID:            "p1",
		OwnerID:       "u1",
		Title:         "Night Shift",
		Status:        StatusOngoing,
		Summary:       "v1",
		Collaborators: []string{"u2"},
		CreatedAt:     fixedClock(),
		UpdatedAt:     fixedClock(),
	}

	later := func() time.Time { return fixedClock().Add(time.Hour) }
	updated, err := ApplyProjectUpdate(project, UpdateProjectInput{
		Title:   "Night Shift",
		Status:  StatusFinished,
		Summary: "v2",
	}, later)
	if err != nil {
		t.Fatalf("apply update: %v", err)
	}
	if updated.Status != StatusFinished {
		t.Fatalf("status = %v, want finished", updated.Status)
	}
	if len(updated.Collaborators) != 1 || updated.Collaborators[0] != "u2" {
		t.Fatalf("expected collaborators untouched, got %v", updated.Collaborators)
	}
}

func TestValidateCollaboratorRejectsOwner(t *testing.T) {
	project := Project{ID: "p1", OwnerID: "u1"}

	if err := ValidateCollaborator(project, "u1"); !errors.Is(err, ErrOwnerCollaborator) {
		t.Fatalf("error = %v, want %v", err, ErrOwnerCollaborator)
	}
	if err := ValidateCollaborator(project, ""); !errors.Is(err, ErrOwnerCollaborator) {
		t.Fatalf("error = %v, want %v", err, ErrOwnerCollaborator)
	}
	if err := ValidateCollaborator(project, "u2"); err != nil {
		t.Fatalf("expected nil error for non-owner, got %v", err)
	}
}

func TestHasCollaborator(t *testing.T) {
	project := Project{Collaborators: []string{"u2", "u3"}}
	if !project.HasCollaborator("u2") {
		t.Fatal("expected u2 to be a collaborator")
	}
	if project.HasCollaborator("u9") {
		t.Fatal("did not expect u9 to be a collaborator")
	}
}

func TestStatusLabelRoundTrip(t *testing.T) {
	for _, status := range []Status{StatusOngoing, StatusFinished} {
		if got := StatusFromLabel(StatusLabel(status)); got != status {
			t.Fatalf("round trip %v -> %v", status, got)
		}
	}
	if got := StatusFromLabel("archived"); got != StatusUnspecified {
		t.Fatalf("expected unspecified for unknown label, got %v", got)
	}
	if got := StatusFromLabel(" FINISHED "); got != StatusFinished {
		t.Fatalf("expected case-insensitive parse, got %v", got)
	}
}
