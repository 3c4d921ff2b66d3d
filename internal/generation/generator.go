package generation

import (
	"context"

	"github.com/storygen/storygen-api/internal/story"
)

// Generator produces a story from a built prompt.
//
// Implementations try their configured candidate models in order and
// return the first successful result, per the error contract in
// errors.go: ErrModelUnavailable is recovered internally, everything
// else surfaces to the caller.
type Generator interface {
	// GenerateStory returns the generated story text, which is always
	// non-empty on success.
	GenerateStory(ctx context.Context, prompt story.Prompt) (string, error)
}
