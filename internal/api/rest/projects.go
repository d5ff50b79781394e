package rest

import (
	"net/http"
	"time"

	"github.com/reelcrew/reelcrew/internal/project"
)

type projectResponse struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"ownerId"`
	Title         string    `json:"title"`
	Status        string    `json:"status"`
	Summary       string    `json:"summary"`
	Collaborators []string  `json:"collaborators"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toProjectResponse(record project.Project) projectResponse {
	collaborators := record.Collaborators
	if collaborators == nil {
		collaborators = []string{}
	}
	return projectResponse{
		ID:            record.ID,
		OwnerID:       record.OwnerID,
		Title:         record.Title,
		Status:        project.StatusLabel(record.Status),
		Summary:       record.Summary,
		Collaborators: collaborators,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}

type projectViewResponse struct {
	Project         projectResponse `json:"project"`
	IsOwner         bool            `json:"isOwner"`
	IsCollaborative bool            `json:"isCollaborative"`
}

type projectWriteRequest struct {
	Title   string `json:"title"`
	Status  string `json:"status"`
	Summary string `json:"summary"`
}

func (h *apiHandler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)
	if caller == "" {
		writeUnauthenticated(w)
		return
	}

	var body projectWriteRequest
	if err := decodeJSON(r, &body); err != nil {
		writeInvalidJSON(w)
		return
	}

	record, err := h.projects.Create(r.Context(), project.CreateProjectInput{
		OwnerID: caller,
		Title:   body.Title,
		Status:  project.StatusFromLabel(body.Status),
		Summary: body.Summary,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProjectResponse(record))
}

func (h *apiHandler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	record, err := h.projects.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(record))
}

func (h *apiHandler) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)
	if caller == "" {
		writeUnauthenticated(w)
		return
	}

	var body projectWriteRequest
	if err := decodeJSON(r, &body); err != nil {
		writeInvalidJSON(w)
		return
	}

	record, err := h.projects.Update(r.Context(), r.PathValue("id"), caller, project.UpdateProjectInput{
		Title:   body.Title,
		Status:  project.StatusFromLabel(body.Status),
		Summary: body.Summary,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(record))
}

func (h *apiHandler) handleListMyProjects(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)
	if caller == "" {
		writeUnauthenticated(w)
		return
	}

	views, err := h.projects.ListMine(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}
	responses := make([]projectViewResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, projectViewResponse{
			Project:         toProjectResponse(view.Project),
			IsOwner:         view.IsOwner,
			IsCollaborative: view.IsCollaborative,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": responses})
}

func (h *apiHandler) handleListFinishedProjects(w http.ResponseWriter, r *http.Request) {
	records, err := h.projects.ListFinished(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	responses := make([]projectResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toProjectResponse(record))
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": responses})
}
