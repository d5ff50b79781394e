package project

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/reelcrew/reelcrew/internal/platform/id"
)

// Store is the persistence boundary for project records.
//
// There is intentionally no collaborator write here: membership changes only
// through the collaboration engine's accept transition.
type Store interface {
	PutProject(ctx context.Context, project Project) error
	GetProject(ctx context.Context, projectID string) (Project, error)
	UpdateProject(ctx context.Context, project Project) (Project, error)
	ListProjectsByOwner(ctx context.Context, ownerID string) ([]Project, error)
	ListProjectsByCollaborator(ctx context.Context, userID string) ([]Project, error)
	ListFinishedProjects(ctx context.Context) ([]Project, error)
}

// View wraps a project with the acting user's relationship to it.
type View struct {
	Project         Project
	IsOwner         bool
	IsCollaborative bool
}

// Service orchestrates project lifecycle behavior.
type Service struct {
	store Store
	clock func() time.Time
	newID func() (string, error)
}

// NewService constructs project use-cases.
func NewService(store Store, clock func() time.Time, newID func() (string, error)) *Service {
	if clock == nil {
		clock = time.Now
	}
	if newID == nil {
		newID = id.NewID
	}
	return &Service{
		store: store,
		clock: clock,
		newID: newID,
	}
}

// Create registers one project owned by the acting user.
func (s *Service) Create(ctx context.Context, input CreateProjectInput) (Project, error) {
	project, err := CreateProject(input, s.clock, s.newID)
	if err != nil {
		return Project{}, err
	}
	if err := s.store.PutProject(ctx, project); err != nil {
		return Project{}, err
	}
	return project, nil
}

// Get loads one project by ID.
func (s *Service) Get(ctx context.Context, projectID string) (Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return Project{}, ErrNotFound
	}
	return s.store.GetProject(ctx, projectID)
}

// Update applies mutable project fields; only the owner may update.
func (s *Service) Update(ctx context.Context, projectID string, actingUserID string, input UpdateProjectInput) (Project, error) {
	project, err := s.Get(ctx, projectID)
	if err != nil {
		return Project{}, err
	}
	if project.OwnerID != strings.TrimSpace(actingUserID) {
		return Project{}, ErrNotOwner
	}
	updated, err := ApplyProjectUpdate(project, input, s.clock)
	if err != nil {
		return Project{}, err
	}
	return s.store.UpdateProject(ctx, updated)
}

// ListMine returns the user's owned and collaborative projects, newest first.
func (s *Service) ListMine(ctx context.Context, userID string) ([]View, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrNotFound
	}

	owned, err := s.store.ListProjectsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	collaborative, err := s.store.ListProjectsByCollaborator(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(owned)+len(collaborative))
	for _, project := range owned {
		views = append(views, View{
			Project:         project,
			IsOwner:         true,
			IsCollaborative: len(project.Collaborators) > 0,
		})
	}
	for _, project := range collaborative {
		views = append(views, View{
			Project:         project,
			IsCollaborative: true,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Project.CreatedAt.After(views[j].Project.CreatedAt)
	})
	return views, nil
}

// ListFinished returns all finished projects, newest first.
func (s *Service) ListFinished(ctx context.Context) ([]Project, error) {
	return s.store.ListFinishedProjects(ctx)
}
