// Package app provides application initialization and dependency injection.
//
// App is the container that wires Genkit, the knowledge store, conversation
// state, and the dialogue engine together. Setup builds everything in
// dependency order; Close releases resources in reverse.
package app

import (
	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/finnova/finnova/internal/chat"
	"github.com/finnova/finnova/internal/config"
	"github.com/finnova/finnova/internal/knowledge"
	"github.com/finnova/finnova/internal/log"
	"github.com/finnova/finnova/internal/session"
)

// App is the core application container.
type App struct {
	Config *config.Config
	Logger log.Logger

	Genkit    *genkit.Genkit
	Embedder  ai.Embedder
	Knowledge *knowledge.Store
	Sessions  *session.Store
	Engine    *chat.Engine
	Flow      *chat.Flow

	otelCleanup func()
}

// Close gracefully shuts down all resources.
func (a *App) Close() error {
	if a.Logger != nil {
		a.Logger.Info("shutting down application")
	}

	if a.otelCleanup != nil {
		a.otelCleanup()
	}

	return nil
}

// Ready reports whether the application can answer questions. It fails
// until the reference corpus has been indexed.
func (a *App) Ready() error {
	if a.Knowledge == nil || a.Knowledge.Count() == 0 {
		return errNotIndexed
	}
	return nil
}
