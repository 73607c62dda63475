package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/finnova/finnova/internal/log"
	"github.com/finnova/finnova/internal/session"
)

// sessionHandler handles conversation management endpoints.
type sessionHandler struct {
	store  *session.Store
	logger log.Logger
}

// CreateSessionResponse is the response body for POST /api/v1/sessions.
type CreateSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// create starts a new empty conversation and returns its ID.
func (h *sessionHandler) create(w http.ResponseWriter, _ *http.Request) {
	id := h.store.Create()
	writeJSON(w, http.StatusCreated, CreateSessionResponse{SessionID: id.String()}, h.logger)
}

// list returns all conversations, most recently active first.
func (h *sessionHandler) list(w http.ResponseWriter, _ *http.Request) {
	sessions := h.store.List()
	writeJSON(w, http.StatusOK, map[string]any{
		"sessions": sessions,
		"total":    len(sessions),
	}, h.logger)
}

// delete removes a conversation and its memory. The default conversation
// cannot be deleted.
func (h *sessionHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "session id must be a UUID", h.logger)
		return
	}

	if err := h.store.Delete(id); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			writeError(w, http.StatusNotFound, "unknown_session", "session not found", h.logger)
			return
		}
		h.logger.Error("failed to delete session", "error", err, "session_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
