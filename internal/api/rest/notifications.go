package rest

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/reelcrew/reelcrew/internal/notification"
)

type notificationResponse struct {
	ID              string     `json:"id"`
	Kind            string     `json:"kind"`
	Message         string     `json:"message"`
	RelatedEntityID string     `json:"relatedEntityId,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	ReadAt          *time.Time `json:"readAt,omitempty"`
}

func toNotificationResponse(note notification.Notification) notificationResponse {
	return notificationResponse{
		ID:              note.ID,
		Kind:            string(note.Kind),
		Message:         note.Message,
		RelatedEntityID: note.RelatedEntityID,
		CreatedAt:       note.CreatedAt,
		ReadAt:          note.ReadAt,
	}
}

func (h *apiHandler) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)
	if caller == "" {
		writeUnauthenticated(w)
		return
	}

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeStatusError(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be an integer")
			return
		}
		limit = parsed
	}

	notes, err := h.notifications.ListInbox(r.Context(), caller, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	unread, err := h.notifications.CountUnread(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}

	responses := make([]notificationResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, toNotificationResponse(note))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"notifications": responses,
		"unreadCount":   unread,
	})
}

func (h *apiHandler) handleReadNotification(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)
	if caller == "" {
		writeUnauthenticated(w)
		return
	}

	note, err := h.notifications.MarkRead(r.Context(), caller, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationResponse(note))
}

func (h *apiHandler) handleReadAllNotifications(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)
	if caller == "" {
		writeUnauthenticated(w)
		return
	}

	if err := h.notifications.MarkAllRead(r.Context(), caller); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
