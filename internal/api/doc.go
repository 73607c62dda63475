// Package api implements the JSON HTTP API for the assistant.
//
// Endpoints:
//   - POST /api/v1/chat               - ask a question, get an answer
//   - GET /api/v1/sessions            - list conversations
//   - POST /api/v1/sessions           - create a conversation
//   - DELETE /api/v1/sessions/{id}    - delete a conversation
//   - GET /health, GET /ready         - probes (outside the middleware stack)
//
// Middleware stack (outermost first): Recovery, Logging, CORS, RateLimit.
// Upstream failures map to 502 with a stable generic message so model and
// retrieval errors never leak to clients.
package api
