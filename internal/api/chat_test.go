package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/finnova/finnova/internal/chat"
	"github.com/finnova/finnova/internal/log"
	"github.com/finnova/finnova/internal/session"
)

// stubChatService returns a canned answer or error and records calls.
type stubChatService struct {
	answer     string
	err        error
	lastID     uuid.UUID
	lastText   string
	callsTotal int
}

func (s *stubChatService) Chat(_ context.Context, sessionID uuid.UUID, message string) (string, error) {
	s.callsTotal++
	s.lastID = sessionID
	s.lastText = message
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

func newTestServer(t *testing.T, svc ChatService, store *session.Store) *Server {
	t.Helper()

	srv, err := NewServer(ServerConfig{
		Logger:       log.NewNop(),
		ChatService:  svc,
		SessionStore: store,
		RateBurst:    1000,
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return srv
}

func postChat(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestChatDefaultSession(t *testing.T) {
	svc := &stubChatService{answer: "an answer"}
	store := session.NewStore()
	srv := newTestServer(t, svc, store)

	rec := postChat(t, srv, `{"message":"what is a bond?"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Answer != "an answer" {
		t.Errorf("answer = %q", resp.Answer)
	}
	if resp.SessionID != store.DefaultID().String() {
		t.Errorf("sessionId = %q, want default conversation", resp.SessionID)
	}
	if svc.lastID != store.DefaultID() {
		t.Error("service not called with the default conversation ID")
	}
	if svc.lastText != "what is a bond?" {
		t.Errorf("service message = %q", svc.lastText)
	}
}

func TestChatExplicitSession(t *testing.T) {
	svc := &stubChatService{answer: "ok"}
	store := session.NewStore()
	srv := newTestServer(t, svc, store)

	id := store.Create()
	rec := postChat(t, srv, fmt.Sprintf(`{"message":"hello","sessionId":%q}`, id))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if svc.lastID != id {
		t.Errorf("service session = %v, want %v", svc.lastID, id)
	}
}

func TestChatErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed JSON",
			body:       `{"message":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_request",
		},
		{
			name:       "empty message",
			body:       `{"message":""}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_request",
		},
		{
			name:       "malformed session id",
			body:       `{"message":"hi","sessionId":"not-a-uuid"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_request",
		},
		{
			name:       "unknown session",
			body:       fmt.Sprintf(`{"message":"hi","sessionId":%q}`, uuid.New()),
			serviceErr: fmt.Errorf("session %v: %w", uuid.New(), session.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "unknown_session",
		},
		{
			name:       "retrieval failure",
			body:       `{"message":"hi"}`,
			serviceErr: fmt.Errorf("%w: index offline", chat.ErrRetrieval),
			wantStatus: http.StatusBadGateway,
			wantCode:   "upstream_error",
		},
		{
			name:       "generation failure",
			body:       `{"message":"hi"}`,
			serviceErr: fmt.Errorf("%w: model unavailable", chat.ErrGeneration),
			wantStatus: http.StatusBadGateway,
			wantCode:   "upstream_error",
		},
		{
			name:       "upstream timeout",
			body:       `{"message":"hi"}`,
			serviceErr: context.DeadlineExceeded,
			wantStatus: http.StatusBadGateway,
			wantCode:   "upstream_error",
		},
		{
			name:       "unexpected failure",
			body:       `{"message":"hi"}`,
			serviceErr: errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubChatService{answer: "never", err: tt.serviceErr}
			srv := newTestServer(t, svc, session.NewStore())

			rec := postChat(t, srv, tt.body)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}

			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decoding error body: %v", err)
			}
			if resp.Error != tt.wantCode {
				t.Errorf("error code = %q, want %q", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestChatUpstreamErrorsNeverLeakDetails(t *testing.T) {
	svc := &stubChatService{err: fmt.Errorf("%w: secret-internal-host:9200 refused", chat.ErrRetrieval)}
	srv := newTestServer(t, svc, session.NewStore())

	rec := postChat(t, srv, `{"message":"hi"}`)

	body := rec.Body.String()
	if strings.Contains(body, "secret-internal-host") {
		t.Errorf("upstream detail leaked to client: %s", body)
	}
	if !strings.Contains(body, upstreamErrorMessage) {
		t.Errorf("missing stable generic message: %s", body)
	}
}

func TestNewServerValidation(t *testing.T) {
	if _, err := NewServer(ServerConfig{SessionStore: session.NewStore()}); err == nil {
		t.Error("NewServer() without chat service succeeded")
	}
	if _, err := NewServer(ServerConfig{ChatService: &stubChatService{}}); err == nil {
		t.Error("NewServer() without session store succeeded")
	}
}
