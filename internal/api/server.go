package api

import (
	"errors"
	"net/http"

	"github.com/finnova/finnova/internal/log"
	"github.com/finnova/finnova/internal/session"
)

// ServerConfig contains configuration for creating the API server.
type ServerConfig struct {
	Logger       log.Logger
	ChatService  ChatService    // Required
	SessionStore *session.Store // Required
	ReadyCheck   func() error   // Optional: nil means always ready
	CORSOrigins  []string       // Allowed origins for CORS
	TrustProxy   bool           // Trust X-Real-IP/X-Forwarded-For headers (behind reverse proxy)
	RateBurst    int            // Rate limiter burst size per IP (0 = default 60)
}

// Server is the JSON API HTTP server.
type Server struct {
	mux *http.ServeMux
}

// NewServer creates a new API server with all routes configured.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.ChatService == nil {
		return nil, errors.New("chat service is required")
	}
	if cfg.SessionStore == nil {
		return nil, errors.New("session store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNop()
	}

	ch := &chatHandler{
		service:  cfg.ChatService,
		sessions: cfg.SessionStore,
		logger:   logger,
	}
	sh := &sessionHandler{
		store:  cfg.SessionStore,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/chat", ch.send)
	mux.HandleFunc("GET /api/v1/sessions", sh.list)
	mux.HandleFunc("POST /api/v1/sessions", sh.create)
	mux.HandleFunc("DELETE /api/v1/sessions/{id}", sh.delete)

	// Rate limiter: per-IP token bucket (1 token/sec refill)
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 60
	}
	rl := newRateLimiter(1.0, burst)

	// Middleware stack (outermost first):
	//   Recovery → Logging → CORS → RateLimit → Routes
	// CORS must be before RateLimit so preflight OPTIONS gets proper
	// CORS headers.
	var handler http.Handler = mux
	handler = rateLimitMiddleware(rl, cfg.TrustProxy, logger)(handler)
	handler = corsMiddleware(cfg.CORSOrigins)(handler)
	handler = loggingMiddleware(logger)(handler)
	handler = recoveryMiddleware(logger)(handler)

	// Top-level mux keeps health probes outside the middleware stack.
	topMux := http.NewServeMux()
	topMux.HandleFunc("GET /health", health(logger))
	topMux.HandleFunc("GET /ready", readiness(cfg.ReadyCheck, logger))
	topMux.Handle("/", handler)

	return &Server{mux: topMux}, nil
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}
