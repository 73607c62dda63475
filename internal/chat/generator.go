package chat

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"google.golang.org/genai"
)

// GeminiGenerator is the production Generator: a single non-streaming
// Genkit generate call against the configured Gemini model.
type GeminiGenerator struct {
	g           *genkit.Genkit
	model       string // provider-qualified, e.g. "googleai/gemini-2.5-flash"
	temperature float32
}

// NewGeminiGenerator creates a Generator bound to the given model.
func NewGeminiGenerator(g *genkit.Genkit, model string, temperature float32) *GeminiGenerator {
	return &GeminiGenerator{
		g:           g,
		model:       model,
		temperature: temperature,
	}
}

// Generate sends the prompt to the model and returns the generated text.
func (gg *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := genkit.Generate(ctx, gg.g,
		ai.WithModelName(gg.model),
		ai.WithPrompt(prompt),
		ai.WithConfig(&genai.GenerateContentConfig{
			Temperature: genai.Ptr(gg.temperature),
		}),
	)
	if err != nil {
		return "", fmt.Errorf("generating with %s: %w", gg.model, err)
	}

	return resp.Text(), nil
}
