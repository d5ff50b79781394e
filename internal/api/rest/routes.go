package rest

import "net/http"

// routes wires every API endpoint onto a method-aware mux.
func (h *apiHandler) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.handleHealthz)

	mux.HandleFunc("POST /api/users", h.handleCreateUser)
	mux.HandleFunc("GET /api/users/profiles", h.handleListProfiles)
	mux.HandleFunc("PUT /api/users/profile", h.handleUpdateProfile)
	mux.HandleFunc("GET /api/users/{id}", h.handleGetUser)

	mux.HandleFunc("POST /api/projects", h.handleCreateProject)
	mux.HandleFunc("GET /api/projects/my", h.handleListMyProjects)
	mux.HandleFunc("GET /api/projects/finished", h.handleListFinishedProjects)
	mux.HandleFunc("GET /api/projects/{id}", h.handleGetProject)
	mux.HandleFunc("PUT /api/projects/{id}", h.handleUpdateProject)

	mux.HandleFunc("POST /api/collaboration-requests", h.handleSubmitRequest)
	mux.HandleFunc("GET /api/collaboration-requests/incoming", h.handleListIncoming)
	mux.HandleFunc("POST /api/collaboration-requests/{id}/accept", h.handleAcceptRequest)
	mux.HandleFunc("POST /api/collaboration-requests/{id}/deny", h.handleDenyRequest)
	mux.HandleFunc("GET /api/collaboration-projects", h.handleListCollaborativeProjects)

	mux.HandleFunc("GET /api/notifications", h.handleListNotifications)
	mux.HandleFunc("POST /api/notifications/read-all", h.handleReadAllNotifications)
	mux.HandleFunc("POST /api/notifications/{id}/read", h.handleReadNotification)

	return mux
}

func (h *apiHandler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
