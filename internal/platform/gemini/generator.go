// Package gemini implements the generation.Generator interface using
// Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/storygen/storygen-api/internal/config"
	"github.com/storygen/storygen-api/internal/generation"
	"github.com/storygen/storygen-api/internal/story"
)

// maxOutputTokens caps the size of a generated story. 800 words fits
// comfortably under it.
const maxOutputTokens = 700

// defaultModels are the built-in fallback candidates, tried in order
// after any configured override.
var defaultModels = [...]string{"gemini-2.5-flash", "gemini-2.0-flash"}

// Generator calls the Gemini API, iterating over candidate models until
// one succeeds. The client is created lazily on first use so that a
// process started without a credential can still serve validation
// errors and health checks.
type Generator struct {
	logger *slog.Logger
	cfg    config.LLMConfig

	clientOnce sync.Once
	client     *genai.Client
	clientErr  error

	// call issues a single generation request against one model. Tests
	// replace it to drive the fallback loop without the network.
	call func(ctx context.Context, model string, prompt story.Prompt) (*genai.GenerateContentResponse, error)
}

// NewGenerator creates a Gemini-backed Generator. A missing API key is
// not an error here; GenerateStory reports it per request.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	g := &Generator{
		logger: logger,
		cfg:    cfg,
	}
	g.call = g.callGemini
	return g, nil
}

// CandidateModels returns the ordered model identifiers GenerateStory
// will try: the trimmed config override first when set, then the
// built-in fallbacks. Duplicates are not removed.
func (g *Generator) CandidateModels() []string {
	models := make([]string, 0, len(defaultModels)+1)
	if override := strings.TrimSpace(g.cfg.Model); override != "" {
		models = append(models, override)
	}
	return append(models, defaultModels[:]...)
}

// GenerateStory implements generation.Generator.
//
// Candidates are tried strictly in order, one call in flight at a time.
// A model-unavailable failure moves on to the next candidate; any other
// failure stops the loop and surfaces immediately. Exhausting the list
// yields ErrNoCompatibleModel wrapping the last candidate's failure.
func (g *Generator) GenerateStory(ctx context.Context, prompt story.Prompt) (string, error) {
	if strings.TrimSpace(g.cfg.GeminiAPIKey) == "" {
		return "", generation.ErrNotConfigured
	}

	models := g.CandidateModels()
	var lastErr error

	for _, model := range models {
		resp, err := g.call(ctx, model, prompt)
		if err != nil {
			if isModelUnavailable(err) {
				lastErr = fmt.Errorf("%w: %s: %v", generation.ErrModelUnavailable, model, err)
				g.logger.WarnContext(ctx, "candidate model unavailable, trying next",
					"model", model,
					"error", err)
				continue
			}
			return "", fmt.Errorf("%w: %v", generation.ErrUpstream, err)
		}

		text := extractText(resp)
		if text == "" {
			return "", fmt.Errorf("%w: model %s", generation.ErrEmptyOutput, model)
		}

		g.logger.InfoContext(ctx, "story generated",
			"model", model,
			"story_length", len(text))
		return text, nil
	}

	return "", fmt.Errorf("%w: %v", generation.ErrNoCompatibleModel, lastErr)
}

// callGemini is the production call function: one GenerateContent
// request with the fixed system instruction, the single user message,
// and the output cap.
func (g *Generator) callGemini(
	ctx context.Context,
	model string,
	prompt story.Prompt,
) (*genai.GenerateContentResponse, error) {
	client, err := g.geminiClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return client.Models.GenerateContent(ctx, model, genai.Text(prompt.User),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(prompt.System, genai.RoleUser),
			MaxOutputTokens:   maxOutputTokens,
		})
}

// geminiClient creates the API client once and reuses it for the life
// of the process. Safe for concurrent requests.
func (g *Generator) geminiClient(ctx context.Context) (*genai.Client, error) {
	g.clientOnce.Do(func() {
		g.client, g.clientErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	return g.client, g.clientErr
}

// isModelUnavailable classifies a per-candidate failure as "this model
// does not exist or is not served", the only failure kind the fallback
// loop recovers from. This is a heuristic over the upstream error
// shape: a structured 404 when the API reports one, otherwise a message
// scan requiring both a not-found marker and a model marker.
func isModelUnavailable(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return true
	}

	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "model") {
		return false
	}
	return strings.Contains(msg, "not_found") || strings.Contains(msg, "not found")
}

// extractText concatenates the plain-text parts of the first candidate
// in their returned order and trims the result. Non-text parts are
// skipped; an all-non-text response comes back empty.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}
