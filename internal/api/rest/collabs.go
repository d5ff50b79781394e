package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/reelcrew/reelcrew/internal/collab"
)

type requestResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	ProjectID  string    `json:"projectId"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toRequestResponse(request collab.Request) requestResponse {
	return requestResponse{
		ID:         request.ID,
		SenderID:   request.SenderID,
		ReceiverID: request.ReceiverID,
		ProjectID:  request.ProjectID,
		Message:    request.Message,
		Status:     collab.StatusLabel(request.Status),
		CreatedAt:  request.CreatedAt,
		UpdatedAt:  request.UpdatedAt,
	}
}

type submitRequestBody struct {
	ReceiverID string `json:"receiverId"`
	ProjectID  string `json:"projectId"`
	Message    string `json:"message"`
}

func (h *apiHandler) handleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)
	if caller == "" {
		writeUnauthenticated(w)
		return
	}

	var body submitRequestBody
	if err := decodeJSON(r, &body); err != nil {
		writeInvalidJSON(w)
		return
	}

	request, err := h.collabs.Submit(r.Context(), collab.SubmitInput{
		SenderID:   caller,
		ReceiverID: body.ReceiverID,
		ProjectID:  body.ProjectID,
		Message:    body.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRequestResponse(request))
}

func (h *apiHandler) handleAcceptRequest(w http.ResponseWriter, r *http.Request) {
	h.respondToRequest(w, r, collab.DecisionAccept)
}

func (h *apiHandler) handleDenyRequest(w http.ResponseWriter, r *http.Request) {
	h.respondToRequest(w, r, collab.DecisionDeny)
}

type decisionResponse struct {
	Request requestResponse  `json:"request"`
	Project *projectResponse `json:"project,omitempty"`
}

func (h *apiHandler) respondToRequest(w http.ResponseWriter, r *http.Request, decision collab.Decision) {
	caller := callerID(r)
	if caller == "" {
		writeUnauthenticated(w)
		return
	}

	result, err := h.collabs.Respond(r.Context(), collab.RespondInput{
		RequestID:    r.PathValue("id"),
		ActingUserID: caller,
		Decision:     decision,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	response := decisionResponse{Request: toRequestResponse(result.Request)}
	if result.Project != nil {
		projectBody := toProjectResponse(*result.Project)
		response.Project = &projectBody
	}
	writeJSON(w, http.StatusOK, response)
}

type incomingRequestResponse struct {
	Request requestResponse `json:"request"`
	Sender  userResponse    `json:"sender"`
	Project projectResponse `json:"project"`
}

func (h *apiHandler) handleListIncoming(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		userID = callerID(r)
	}
	if userID == "" {
		writeUnauthenticated(w)
		return
	}

	incoming, err := h.collabs.ListIncoming(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	responses := make([]incomingRequestResponse, 0, len(incoming))
	for _, item := range incoming {
		responses = append(responses, incomingRequestResponse{
			Request: toRequestResponse(item.Request),
			Sender:  toUserResponse(item.Sender),
			Project: toProjectResponse(item.Project),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"requests": responses})
}

type collaborativeProjectResponse struct {
	Project       projectResponse `json:"project"`
	Owner         userResponse    `json:"owner"`
	Collaborators []userResponse  `json:"collaborators"`
}

func (h *apiHandler) handleListCollaborativeProjects(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		userID = callerID(r)
	}
	if userID == "" {
		writeUnauthenticated(w)
		return
	}

	joined, err := h.collabs.ListCollaborativeProjects(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	responses := make([]collaborativeProjectResponse, 0, len(joined))
	for _, item := range joined {
		members := make([]userResponse, 0, len(item.Collaborators))
		for _, member := range item.Collaborators {
			members = append(members, toUserResponse(member))
		}
		responses = append(responses, collaborativeProjectResponse{
			Project:       toProjectResponse(item.Project),
			Owner:         toUserResponse(item.Owner),
			Collaborators: members,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": responses})
}
