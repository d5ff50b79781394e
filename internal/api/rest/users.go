package rest

import (
	"net/http"
	"time"

	"github.com/reelcrew/reelcrew/internal/identity"
)

type userResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	ArtistType  string    `json:"artistType"`
	Bio         string    `json:"bio,omitempty"`
	ContactInfo string    `json:"contactInfo,omitempty"`
	ProfilePic  string    `json:"profilePic,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toUserResponse(user identity.User) userResponse {
	return userResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		ArtistType:  user.ArtistType,
		Bio:         user.Bio,
		ContactInfo: user.ContactInfo,
		ProfilePic:  user.ProfilePic,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

type createUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	ArtistType  string `json:"artistType"`
	Bio         string `json:"bio"`
	ContactInfo string `json:"contactInfo"`
	ProfilePic  string `json:"profilePic"`
}

func (h *apiHandler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var body createUserRequest
	if err := decodeJSON(r, &body); err != nil {
		writeInvalidJSON(w)
		return
	}

	user, err := h.users.CreateProfile(r.Context(), identity.CreateUserInput{
		Name:        body.Name,
		Email:       body.Email,
		ArtistType:  body.ArtistType,
		Bio:         body.Bio,
		ContactInfo: body.ContactInfo,
		ProfilePic:  body.ProfilePic,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func (h *apiHandler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

type updateProfileRequest struct {
	Name        string `json:"name"`
	ArtistType  string `json:"artistType"`
	Bio         string `json:"bio"`
	ContactInfo string `json:"contactInfo"`
}

func (h *apiHandler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)
	if caller == "" {
		writeUnauthenticated(w)
		return
	}

	var body updateProfileRequest
	if err := decodeJSON(r, &body); err != nil {
		writeInvalidJSON(w)
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), caller, identity.UpdateProfileInput{
		Name:        body.Name,
		ArtistType:  body.ArtistType,
		Bio:         body.Bio,
		ContactInfo: body.ContactInfo,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *apiHandler) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListProfiles(r.Context(), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	responses := make([]userResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": responses})
}
