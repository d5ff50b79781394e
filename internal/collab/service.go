package collab

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/reelcrew/reelcrew/internal/identity"
	"github.com/reelcrew/reelcrew/internal/notification"
	"github.com/reelcrew/reelcrew/internal/notification/render"
	"github.com/reelcrew/reelcrew/internal/platform/id"
	"github.com/reelcrew/reelcrew/internal/project"
)

// Store persists collaboration requests. Writes that change a request also
// carry the matching notification so both land in one transaction.
type Store interface {
	// GetRequest returns a request by ID or ErrNotFound.
	GetRequest(ctx context.Context, requestID string) (Request, error)
	// ListPendingByReceiver returns pending requests addressed to a user
	// in creation order.
	ListPendingByReceiver(ctx context.Context, receiverID string) ([]Request, error)
	// CreateRequest stores a pending request and its notification atomically.
	// Returns ErrDuplicateRequest when a pending request already exists for
	// the same sender, receiver and project.
	CreateRequest(ctx context.Context, request Request, note notification.Notification) error
	// ApplyDecision transitions a pending request to a terminal status,
	// records the membership change on accept, and stores the outcome
	// notification, all atomically. Returns ErrAlreadyProcessed when the
	// request left the pending status concurrently.
	ApplyDecision(ctx context.Context, write DecisionWrite) (Request, error)
}

// DecisionWrite describes the atomic write for one decision: the request
// transition, the optional membership change, and the outcome notification.
type DecisionWrite struct {
	RequestID string
	Status    Status
	DecidedAt time.Time
	// CollaboratorID joins the project on accept. Empty on deny.
	CollaboratorID string
	ProjectID      string
	Notification   notification.Notification
}

// UserDirectory resolves user profiles referenced by requests.
type UserDirectory interface {
	GetUser(ctx context.Context, userID string) (identity.User, error)
}

// ProjectCatalog resolves projects referenced by requests.
type ProjectCatalog interface {
	GetProject(ctx context.Context, projectID string) (project.Project, error)
	ListProjectsByCollaborator(ctx context.Context, userID string) ([]project.Project, error)
}

// Service coordinates the collaboration request lifecycle.
type Service struct {
	store     Store
	users     UserDirectory
	projects  ProjectCatalog
	localizer render.Localizer
	clock     func() time.Time
	newID     func() (string, error)
}

// NewService creates a collaboration service backed by the provided stores.
func NewService(store Store, users UserDirectory, projects ProjectCatalog, localizer render.Localizer) *Service {
	if localizer == nil {
		localizer = render.DefaultLocalizer()
	}
	return &Service{
		store:     store,
		users:     users,
		projects:  projects,
		localizer: localizer,
		clock:     time.Now,
		newID:     id.NewID,
	}
}

// WithClock overrides the service clock. Intended for tests.
func (s *Service) WithClock(clock func() time.Time) *Service {
	if s == nil || clock == nil {
		return s
	}
	s.clock = clock
	return s
}

// WithIDGenerator overrides the service ID generator. Intended for tests.
func (s *Service) WithIDGenerator(generator func() (string, error)) *Service {
	if s == nil || generator == nil {
		return s
	}
	s.newID = generator
	return s
}

// Submit creates a pending collaboration request from the sender's own
// project to the receiver and notifies the receiver.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (Request, error) {
	if s == nil || s.store == nil {
		return Request{}, fmt.Errorf("collab service is not configured")
	}

	normalized, err := NormalizeSubmitInput(input)
	if err != nil {
		return Request{}, err
	}

	offered, err := s.projects.GetProject(ctx, normalized.ProjectID)
	if err != nil {
		return Request{}, err
	}
	if offered.OwnerID != normalized.SenderID {
		return Request{}, ErrProjectNotOwned
	}

	sender, err := s.users.GetUser(ctx, normalized.SenderID)
	if err != nil {
		return Request{}, err
	}
	if _, err := s.users.GetUser(ctx, normalized.ReceiverID); err != nil {
		return Request{}, err
	}

	request, err := NewRequest(normalized, s.clock, s.newID)
	if err != nil {
		return Request{}, err
	}

	note, err := notification.New(notification.NewInput{
		RecipientUserID: request.ReceiverID,
		Kind:            notification.KindCollabRequested,
		Message: render.Message(s.localizer, render.Input{
			Kind:         notification.KindCollabRequested,
			ActorName:    sender.Name,
			ProjectTitle: offered.Title,
		}),
		RelatedEntityID: request.ID,
	}, s.clock, s.newID)
	if err != nil {
		return Request{}, err
	}

	if err := s.store.CreateRequest(ctx, request, note); err != nil {
		return Request{}, err
	}
	return request, nil
}

// RespondInput describes a decision on a pending request.
type RespondInput struct {
	RequestID    string
	ActingUserID string
	Decision     Decision
}

// RespondResult carries the decided request. Project is set on accept and
// reflects the membership after the join.
type RespondResult struct {
	Request Request
	Project *project.Project
}

// Respond applies the receiver's decision. Accepting adds the receiver to
// the project's collaborators; either outcome notifies the sender. The
// transition, the membership change and the notification commit together.
func (s *Service) Respond(ctx context.Context, input RespondInput) (RespondResult, error) {
	if s == nil || s.store == nil {
		return RespondResult{}, fmt.Errorf("collab service is not configured")
	}

	requestID := strings.TrimSpace(input.RequestID)
	if requestID == "" {
		return RespondResult{}, ErrNotFound
	}
	actingUserID := strings.TrimSpace(input.ActingUserID)

	terminal, err := StatusForDecision(input.Decision)
	if err != nil {
		return RespondResult{}, err
	}

	request, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return RespondResult{}, err
	}
	if request.ReceiverID != actingUserID {
		return RespondResult{}, ErrNotReceiver
	}
	if !request.Pending() {
		return RespondResult{}, ErrAlreadyProcessed
	}

	receiver, err := s.users.GetUser(ctx, actingUserID)
	if err != nil {
		return RespondResult{}, err
	}
	offered, err := s.projects.GetProject(ctx, request.ProjectID)
	if err != nil {
		return RespondResult{}, err
	}

	kind := notification.KindCollabDenied
	collaboratorID := ""
	if terminal == StatusAccepted {
		kind = notification.KindCollabAccepted
		if err := project.ValidateCollaborator(offered, actingUserID); err != nil {
			return RespondResult{}, err
		}
		collaboratorID = actingUserID
	}

	note, err := notification.New(notification.NewInput{
		RecipientUserID: request.SenderID,
		Kind:            kind,
		Message: render.Message(s.localizer, render.Input{
			Kind:         kind,
			ActorName:    receiver.Name,
			ProjectTitle: offered.Title,
		}),
		RelatedEntityID: offered.ID,
	}, s.clock, s.newID)
	if err != nil {
		return RespondResult{}, err
	}

	decided, err := s.store.ApplyDecision(ctx, DecisionWrite{
		RequestID:      request.ID,
		Status:         terminal,
		DecidedAt:      s.clock().UTC(),
		CollaboratorID: collaboratorID,
		ProjectID:      offered.ID,
		Notification:   note,
	})
	if err != nil {
		return RespondResult{}, err
	}

	result := RespondResult{Request: decided}
	if terminal == StatusAccepted {
		joined, err := s.projects.GetProject(ctx, offered.ID)
		if err != nil {
			return RespondResult{}, err
		}
		result.Project = &joined
	}
	return result, nil
}

// IncomingRequest pairs a pending request with its sender and project.
type IncomingRequest struct {
	Request Request
	Sender  identity.User
	Project project.Project
}

// ListIncoming returns the pending requests addressed to a user in creation
// order, with sender and project details resolved.
func (s *Service) ListIncoming(ctx context.Context, userID string) ([]IncomingRequest, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("collab service is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrEmptyReceiverID
	}

	requests, err := s.store.ListPendingByReceiver(ctx, userID)
	if err != nil {
		return nil, err
	}

	incoming := make([]IncomingRequest, 0, len(requests))
	for _, request := range requests {
		sender, err := s.users.GetUser(ctx, request.SenderID)
		if err != nil {
			return nil, fmt.Errorf("resolve sender %s: %w", request.SenderID, err)
		}
		offered, err := s.projects.GetProject(ctx, request.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("resolve project %s: %w", request.ProjectID, err)
		}
		incoming = append(incoming, IncomingRequest{
			Request: request,
			Sender:  sender,
			Project: offered,
		})
	}
	return incoming, nil
}

// CollaborativeProject pairs a project with its resolved owner and
// collaborator profiles.
type CollaborativeProject struct {
	Project       project.Project
	Owner         identity.User
	Collaborators []identity.User
}

// ListCollaborativeProjects returns the projects where the user is a
// collaborator, with owner and collaborator profiles resolved.
func (s *Service) ListCollaborativeProjects(ctx context.Context, userID string) ([]CollaborativeProject, error) {
	if s == nil || s.projects == nil {
		return nil, fmt.Errorf("collab service is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrEmptyReceiverID
	}

	joined, err := s.projects.ListProjectsByCollaborator(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]CollaborativeProject, 0, len(joined))
	for _, proj := range joined {
		owner, err := s.users.GetUser(ctx, proj.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("resolve owner %s: %w", proj.OwnerID, err)
		}
		members := make([]identity.User, 0, len(proj.Collaborators))
		for _, memberID := range proj.Collaborators {
			member, err := s.users.GetUser(ctx, memberID)
			if err != nil {
				return nil, fmt.Errorf("resolve collaborator %s: %w", memberID, err)
			}
			members = append(members, member)
		}
		result = append(result, CollaborativeProject{
			Project:       proj,
			Owner:         owner,
			Collaborators: members,
		})
	}
	return result, nil
}
