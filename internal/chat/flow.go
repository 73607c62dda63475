package chat

import (
	"context"
	"fmt"
	"sync"

	"github.com/firebase/genkit/go/core"
	"github.com/firebase/genkit/go/genkit"
	"github.com/google/uuid"
)

// Input defines the request payload for the chat flow.
type Input struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"` // empty uses the default conversation
}

// Output defines the response payload from the chat flow.
type Output struct {
	Answer    string `json:"answer"`
	SessionID string `json:"sessionId"`
}

// FlowName is the registered name of the chat flow in Genkit.
const FlowName = "finnova/chat"

// Flow is the Genkit flow wrapping the Engine, giving DevUI tracing and a
// typed Input/Output schema around Engine.Chat.
type Flow = core.Flow[Input, Output, struct{}]

// Package-level singleton: genkit.DefineFlow panics on re-registration,
// so the flow is defined once per process.
var (
	flowOnce sync.Once
	flow     *Flow
)

// NewFlow returns the chat Flow singleton, initializing it on first call.
// Subsequent calls return the existing Flow and ignore the parameters.
func NewFlow(g *genkit.Genkit, engine *Engine) *Flow {
	flowOnce.Do(func() {
		flow = engine.DefineFlow(g)
	})
	return flow
}

// ResetFlowForTesting resets the Flow singleton. Tests only; not safe for
// concurrent use.
func ResetFlowForTesting() {
	flowOnce = sync.Once{}
	flow = nil
}

// DefineFlow registers the Genkit flow for the engine. Use NewFlow instead
// of calling this directly; defining the same flow twice panics.
func (e *Engine) DefineFlow(g *genkit.Genkit) *Flow {
	return genkit.DefineFlow(g, FlowName,
		func(ctx context.Context, input Input) (Output, error) {
			sessionID := e.sessions.DefaultID()
			if input.SessionID != "" {
				var err error
				sessionID, err = uuid.Parse(input.SessionID)
				if err != nil {
					return Output{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
				}
			}

			answer, err := e.Chat(ctx, sessionID, input.Message)
			if err != nil {
				return Output{}, err
			}

			return Output{
				Answer:    answer,
				SessionID: sessionID.String(),
			}, nil
		},
	)
}
