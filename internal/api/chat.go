package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/finnova/finnova/internal/chat"
	"github.com/finnova/finnova/internal/log"
	"github.com/finnova/finnova/internal/session"
)

// maxChatBodyBytes caps the chat request body size.
const maxChatBodyBytes = 1 << 20 // 1MB

// upstreamErrorMessage is the stable generic message returned when the
// model or the retrieval index cannot be reached. Internal details never
// leak to clients.
const upstreamErrorMessage = "could not reach the assistant"

// ChatService answers a question within a conversation.
// Implemented by chat.Engine.
type ChatService interface {
	Chat(ctx context.Context, sessionID uuid.UUID, message string) (string, error)
}

// chatHandler handles POST /api/v1/chat.
type chatHandler struct {
	service  ChatService
	sessions *session.Store
	logger   log.Logger
}

// ChatRequest is the request body for POST /api/v1/chat.
// SessionID is optional; when empty, the shared default conversation is used.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
}

// ChatResponse is the response body for POST /api/v1/chat.
type ChatResponse struct {
	Answer    string `json:"answer"`
	SessionID string `json:"sessionId"`
}

func (h *chatHandler) send(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxChatBodyBytes)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body", h.logger)
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "message is required", h.logger)
		return
	}

	sessionID := h.sessions.DefaultID()
	if req.SessionID != "" {
		id, err := uuid.Parse(req.SessionID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "sessionId must be a UUID", h.logger)
			return
		}
		sessionID = id
	}

	answer, err := h.service.Chat(r.Context(), sessionID, req.Message)
	if err != nil {
		h.writeChatError(w, sessionID, err)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		Answer:    answer,
		SessionID: sessionID.String(),
	}, h.logger)
}

// writeChatError maps engine errors to HTTP status codes. Upstream
// failures all collapse to 502 with the same generic message.
func (h *chatHandler) writeChatError(w http.ResponseWriter, sessionID uuid.UUID, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeError(w, http.StatusNotFound, "unknown_session", "session not found", h.logger)
	case errors.Is(err, chat.ErrRetrieval), errors.Is(err, chat.ErrGeneration),
		errors.Is(err, context.DeadlineExceeded):
		h.logger.Error("upstream failure",
			"error", err,
			"session_id", sessionID,
		)
		writeError(w, http.StatusBadGateway, "upstream_error", upstreamErrorMessage, h.logger)
	default:
		h.logger.Error("chat failed",
			"error", err,
			"session_id", sessionID,
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error", h.logger)
	}
}
