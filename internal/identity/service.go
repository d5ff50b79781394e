package identity

import (
	"context"
	"strings"
	"time"

	"github.com/reelcrew/reelcrew/internal/platform/id"
)

// Store is the persistence boundary for profile records.
type Store interface {
	PutUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, userID string) (User, error)
	UpdateUser(ctx context.Context, user User) (User, error)
	ListUsers(ctx context.Context, excludeUserID string) ([]User, error)
}

// Service orchestrates profile lifecycle behavior.
type Service struct {
	store Store
	clock func() time.Time
	newID func() (string, error)
}

// NewService constructs identity use-cases.
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

// CreateProfile registers one filmmaker profile.
func (s *Service) CreateProfile(ctx context.Context, input CreateUserInput) (User, error) {
	user, err := CreateUser(input, s.clock, s.newID)
	if err != nil {
		return User{}, err
	}
	if err := s.store.PutUser(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// GetUser loads one profile by ID.
func (s *Service) GetUser(ctx context.Context, userID string) (User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return User{}, ErrNotFound
	}
	return s.store.GetUser(ctx, userID)
}

// UpdateProfile applies mutable profile fields for the acting user.
func (s *Service) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return User{}, err
	}
	updated, err := ApplyProfileUpdate(user, input, s.clock)
	if err != nil {
		return User{}, err
	}
	return s.store.UpdateUser(ctx, updated)
}

// ListProfiles returns every profile except the excluded user, sorted by name.
func (s *Service) ListProfiles(ctx context.Context, excludeUserID string) ([]User, error) {
	return s.store.ListUsers(ctx, strings.TrimSpace(excludeUserID))
}
