package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finnova/finnova/internal/log"
	"github.com/finnova/finnova/internal/session"
	"github.com/finnova/finnova/internal/tax"
)

const (
	// DefaultTopK is the number of passages retrieved per question.
	DefaultTopK = 3

	// defaultRetrieveTimeout bounds the knowledge retrieval call.
	defaultRetrieveTimeout = 10 * time.Second

	// defaultGenerateTimeout bounds each generation call.
	defaultGenerateTimeout = 60 * time.Second

	// fallbackAnswer is returned when the model produces an empty response.
	fallbackAnswer = "I couldn't come up with an answer. Could you rephrase the question?"
)

// Retriever returns the k most relevant knowledge passages for a query,
// ordered by descending relevance, at most k entries.
type Retriever interface {
	Search(ctx context.Context, query string, k int) ([]string, error)
}

// Generator produces text for a fully composed prompt. Single round-trip,
// no streaming.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config contains all required parameters for the Engine.
type Config struct {
	Retriever Retriever
	Generator Generator
	Sessions  *session.Store
	Logger    log.Logger

	// TopK is the number of passages to retrieve (default DefaultTopK).
	TopK int

	// RetrieveTimeout and GenerateTimeout bound the external calls.
	// Zero values use the defaults.
	RetrieveTimeout time.Duration
	GenerateTimeout time.Duration
}

// validate checks that required dependencies are present.
func (cfg Config) validate() error {
	if cfg.Retriever == nil {
		return errors.New("retriever is required")
	}
	if cfg.Generator == nil {
		return errors.New("generator is required")
	}
	if cfg.Sessions == nil {
		return errors.New("session store is required")
	}
	if cfg.Logger == nil {
		return errors.New("logger is required")
	}
	return nil
}

// Engine is the dialogue router. It inspects each incoming message,
// dispatches to the tax calculator or the retrieval+generation pipeline,
// updates conversation memory, and returns the answer text.
//
// Engine is safe for concurrent use. Turns within one conversation are
// serialized so concurrent requests to the same session cannot interleave
// transcript and summary updates; different conversations proceed
// independently.
type Engine struct {
	retriever Retriever
	generator Generator
	sessions  *session.Store
	logger    log.Logger

	topK            int
	retrieveTimeout time.Duration
	generateTimeout time.Duration

	// turnLocks holds one mutex per conversation, created on first use.
	turnLocks sync.Map // uuid.UUID -> *sync.Mutex
}

// New creates an Engine with the given configuration.
func New(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	topK := cfg.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	retrieveTimeout := cfg.RetrieveTimeout
	if retrieveTimeout <= 0 {
		retrieveTimeout = defaultRetrieveTimeout
	}
	generateTimeout := cfg.GenerateTimeout
	if generateTimeout <= 0 {
		generateTimeout = defaultGenerateTimeout
	}

	return &Engine{
		retriever:       cfg.Retriever,
		generator:       cfg.Generator,
		sessions:        cfg.Sessions,
		logger:          cfg.Logger,
		topK:            topK,
		retrieveTimeout: retrieveTimeout,
		generateTimeout: generateTimeout,
	}, nil
}

// Chat handles one user message in the given conversation and returns the
// answer text.
//
// Exactly one turn is appended to the transcript on success. On the
// generation path the rolling summary is replaced afterwards; on the
// calculator path it is left untouched. If retrieval or generation fails,
// the error propagates (wrapped in ErrRetrieval or ErrGeneration) and no
// turn is recorded.
func (e *Engine) Chat(ctx context.Context, sessionID uuid.UUID, userText string) (string, error) {
	st, err := e.sessions.Get(sessionID)
	if err != nil {
		return "", fmt.Errorf("looking up session %s: %w", sessionID, err)
	}

	// One in-flight turn per conversation.
	muAny, _ := e.turnLocks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := muAny.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	intent := ParseIntent(userText)
	if intent.Kind == KindTax {
		if answer, ok := e.taxTurn(st, intent.Salary, userText); ok {
			return answer, nil
		}
		// Unusable salary value: fall through and answer conversationally.
	}

	return e.generationTurn(ctx, st, userText)
}

// taxTurn runs the deterministic calculator path. The summary is not
// refreshed here: deterministic answers need no summarization, so the next
// generation turn builds on a summary that predates this exchange.
func (e *Engine) taxTurn(st *session.State, salary int64, userText string) (string, bool) {
	breakdown, err := tax.Compute(float64(salary))
	if err != nil {
		// Cannot happen for a digit-only capture, but keep the fallback
		// consistent with intent parsing: treat as no match.
		e.logger.Warn("tax computation rejected parsed salary", "salary", salary, "error", err)
		return "", false
	}

	answer := tax.FormatBreakdown(breakdown)
	st.AppendTurn(session.Turn{User: userText, Assistant: answer})

	e.logger.Debug("calculator turn completed", "salary", salary, "tax", breakdown.Tax)
	return answer, true
}

// generationTurn runs the retrieval+generation path.
func (e *Engine) generationTurn(ctx context.Context, st *session.State, userText string) (string, error) {
	// 1. Retrieve grounding passages.
	rctx, rcancel := context.WithTimeout(ctx, e.retrieveTimeout)
	passages, err := e.retriever.Search(rctx, userText, e.topK)
	rcancel()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRetrieval, err)
	}

	// 2. Generate the answer.
	prompt := buildAnswerPrompt(strings.Join(passages, "\n"), st.Summary(), userText)

	gctx, gcancel := context.WithTimeout(ctx, e.generateTimeout)
	answer, err := e.generator.Generate(gctx, prompt)
	gcancel()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	if strings.TrimSpace(answer) == "" {
		e.logger.Warn("model returned empty response")
		answer = fallbackAnswer
	}

	// 3. Record the turn, then refresh the rolling summary from the full
	// transcript. Summary refresh is best-effort: the answer is already
	// committed, so a failure here keeps the stale summary instead of
	// failing the request.
	st.AppendTurn(session.Turn{User: userText, Assistant: answer})

	sctx, scancel := context.WithTimeout(ctx, e.generateTimeout)
	summary, err := e.generator.Generate(sctx, buildSummaryPrompt(st.Turns()))
	scancel()
	if err != nil {
		e.logger.Warn("refreshing conversation summary", "error", err)
	} else {
		st.SetSummary(summary)
	}

	e.logger.Debug("generation turn completed",
		"passages", len(passages),
		"answer_length", len(answer),
	)
	return answer, nil
}
