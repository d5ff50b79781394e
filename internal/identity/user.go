// Package identity provides filmmaker profile management.
package identity

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	apperrors "github.com/reelcrew/reelcrew/internal/platform/errors"
	"github.com/reelcrew/reelcrew/internal/platform/id"
)

var (
	// ErrEmptyName indicates a missing profile name.
	ErrEmptyName = apperrors.New(apperrors.CodeUserNameEmpty, "name is required")
	// ErrEmptyEmail indicates a missing email address.
	ErrEmptyEmail = apperrors.New(apperrors.CodeUserEmailEmpty, "email is required")
	// ErrInvalidEmail indicates an email address that cannot be parsed.
	ErrInvalidEmail = apperrors.New(apperrors.CodeUserEmailInvalid, "email is invalid")
	// ErrEmptyArtistType indicates a missing artist type.
	ErrEmptyArtistType = apperrors.New(apperrors.CodeUserArtistTypeEmpty, "artist type is required")
	// ErrEmailTaken indicates the email address is already claimed.
	ErrEmailTaken = apperrors.New(apperrors.CodeUserEmailTaken, "email is already registered")
	// ErrNotFound indicates a requested user record is missing.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "user not found")
)

// User represents one filmmaker profile record.
type User struct {
	ID          string
	Name        string
	Email       string
	ArtistType  string
	Bio         string
	ContactInfo string
	ProfilePic  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateUserInput describes the metadata needed to create a profile.
type CreateUserInput struct {
	Name        string
	Email       string
	ArtistType  string
	Bio         string
	ContactInfo string
	ProfilePic  string
}

// CreateUser creates a new user with a generated ID and timestamps.
func CreateUser(input CreateUserInput, now func() time.Time, idGenerator func() (string, error)) (User, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateUserInput(input)
	if err != nil {
		return User{}, err
	}

	userID, err := idGenerator()
	if err != nil {
		return User{}, fmt.Errorf("generate user id: %w", err)
	}

	createdAt := now().UTC()
	return User{
		ID:          userID,
		Name:        normalized.Name,
		Email:       normalized.Email,
		ArtistType:  normalized.ArtistType,
		Bio:         normalized.Bio,
		ContactInfo: normalized.ContactInfo,
		ProfilePic:  normalized.ProfilePic,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}, nil
}

// NormalizeCreateUserInput trims and validates profile input metadata.
func NormalizeCreateUserInput(input CreateUserInput) (CreateUserInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return CreateUserInput{}, ErrEmptyName
	}
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return CreateUserInput{}, err
	}
	input.Email = email
	input.ArtistType = strings.TrimSpace(input.ArtistType)
	if input.ArtistType == "" {
		return CreateUserInput{}, ErrEmptyArtistType
	}
	input.Bio = strings.TrimSpace(input.Bio)
	input.ContactInfo = strings.TrimSpace(input.ContactInfo)
	input.ProfilePic = strings.TrimSpace(input.ProfilePic)
	return input, nil
}

// UpdateProfileInput describes the mutable profile fields.
type UpdateProfileInput struct {
	Name        string
	ArtistType  string
	Bio         string
	ContactInfo string
}

// ApplyProfileUpdate validates input and returns the updated user record.
func ApplyProfileUpdate(user User, input UpdateProfileInput, now func() time.Time) (User, error) {
	if now == nil {
		now = time.Now
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return User{}, ErrEmptyName
	}
	input.ArtistType = strings.TrimSpace(input.ArtistType)
	if input.ArtistType == "" {
		return User{}, ErrEmptyArtistType
	}

	user.Name = input.Name
	user.ArtistType = input.ArtistType
	user.Bio = strings.TrimSpace(input.Bio)
	user.ContactInfo = strings.TrimSpace(input.ContactInfo)
	user.UpdatedAt = now().UTC()
	return user, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", ErrEmptyEmail
	}
	parsed, err := mail.ParseAddress(email)
	if err != nil {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(parsed.Address), nil
}
