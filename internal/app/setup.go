package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/firebase/genkit/go/core/tracing"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/finnova/finnova/internal/chat"
	"github.com/finnova/finnova/internal/config"
	"github.com/finnova/finnova/internal/knowledge"
	"github.com/finnova/finnova/internal/log"
	"github.com/finnova/finnova/internal/rag"
	"github.com/finnova/finnova/internal/session"
)

var errNotIndexed = errors.New("reference corpus not indexed")

// Setup creates and initializes the application.
// Returns an App with embedded cleanup. Call Close() to release.
func Setup(ctx context.Context, cfg *config.Config, logger log.Logger) (_ *App, retErr error) {
	a := &App{Config: cfg, Logger: logger}

	// On error, clean up everything already initialized.
	defer func() {
		if retErr != nil {
			if err := a.Close(); err != nil {
				logger.Warn("cleanup during setup failure", "error", err)
			}
		}
	}()

	a.otelCleanup = provideOtelShutdown(ctx, cfg, logger)

	g, err := provideGenkit(ctx, logger)
	if err != nil {
		return nil, err
	}
	a.Genkit = g

	embedder := googlegenai.GoogleAIEmbedder(g, cfg.EmbedderModel)
	if embedder == nil {
		return nil, fmt.Errorf("embedder %q not found", cfg.EmbedderModel)
	}
	a.Embedder = embedder

	store, err := knowledge.New(knowledge.NewEmbeddingFunc(embedder), logger)
	if err != nil {
		return nil, fmt.Errorf("creating knowledge store: %w", err)
	}
	a.Knowledge = store

	count, err := rag.Index(ctx, store, logger)
	if err != nil {
		return nil, fmt.Errorf("indexing reference corpus: %w", err)
	}
	logger.Info("reference corpus indexed", "chunks", count)

	a.Sessions = session.NewStore()

	engine, err := chat.New(chat.Config{
		Retriever:       rag.NewRetriever(store),
		Generator:       chat.NewGeminiGenerator(g, cfg.FullModelName(), cfg.Temperature),
		Sessions:        a.Sessions,
		Logger:          logger,
		TopK:            cfg.TopK,
		RetrieveTimeout: cfg.RetrieveTimeout,
		GenerateTimeout: cfg.GenerateTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("creating dialogue engine: %w", err)
	}
	a.Engine = engine
	a.Flow = chat.NewFlow(g, engine)

	return a, nil
}

// provideOtelShutdown sets up OTLP trace export before Genkit initialization
// so Genkit's TracerProvider is ready when flows start producing spans.
//
// Spans are exported to a local collector agent via OTLP HTTP. The agent
// handles authentication, buffering, and forwarding.
func provideOtelShutdown(ctx context.Context, cfg *config.Config, logger log.Logger) func() {
	tc := cfg.Tracing

	agentHost := tc.AgentHost
	if agentHost == "" {
		agentHost = "localhost:4318"
	}

	// Set OTEL env vars for Genkit's TracerProvider to pick up.
	// SAFETY: os.Setenv is not concurrent-safe, but this function runs
	// exactly once during startup, before goroutines are spawned.
	if tc.ServiceName != "" {
		_ = os.Setenv("OTEL_SERVICE_NAME", tc.ServiceName)
	}
	if tc.Environment != "" {
		_ = os.Setenv("OTEL_RESOURCE_ATTRIBUTES", "deployment.environment="+tc.Environment)
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(agentHost),
		otlptracehttp.WithInsecure(), // localhost doesn't need TLS
	)
	if err != nil {
		logger.Warn("creating trace exporter, tracing disabled", "error", err)
		return func() {}
	}

	processor := sdktrace.NewBatchSpanProcessor(exporter)
	tracing.TracerProvider().RegisterSpanProcessor(processor)

	logger.Debug("tracing enabled",
		"agent", agentHost,
		"service", tc.ServiceName,
		"environment", tc.Environment,
	)

	shutdown := tracing.TracerProvider().Shutdown

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn("shutting down tracer provider", "error", err)
		}
	}
}

// provideGenkit initializes Genkit with the Gemini provider.
// Call ordering in Setup ensures tracing is set up first.
func provideGenkit(ctx context.Context, logger log.Logger) (*genkit.Genkit, error) {
	g := genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{}))
	if g == nil {
		return nil, errors.New("initializing genkit with gemini provider")
	}
	logger.Info("initialized Genkit with gemini provider")
	return g, nil
}
