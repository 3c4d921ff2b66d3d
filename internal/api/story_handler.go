package api

import (
	"log/slog"
	"net/http"

	"github.com/storygen/storygen-api/internal/api/shared"
	"github.com/storygen/storygen-api/internal/generation"
	"github.com/storygen/storygen-api/internal/story"
)

// StoryResponse is the success payload for story generation.
type StoryResponse struct {
	Story string `json:"story"`
}

// StoryHandler handles story generation HTTP requests.
type StoryHandler struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewStoryHandler creates a new StoryHandler.
func NewStoryHandler(generator generation.Generator, logger *slog.Logger) *StoryHandler {
	return &StoryHandler{
		generator: generator,
		logger:    logger,
	}
}

// GenerateStory handles POST /api/story requests: validate the roster,
// build the prompt, call the generator, return the story.
func (h *StoryHandler) GenerateStory(w http.ResponseWriter, r *http.Request) {
	body, err := shared.ReadBody(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "failed to read request body")
		return
	}

	input, err := story.Validate(body)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	prompt := story.BuildPrompt(input)

	h.logger.DebugContext(r.Context(), "generating story",
		"name_count", len(input.Names),
		"has_team_name", input.TeamName != nil)

	text, err := h.generator.GenerateStory(r.Context(), prompt)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StoryResponse{Story: text})
}

// Preflight answers bare OPTIONS probes with 200. The CORS middleware
// handles real preflight requests before routing; this catches clients
// that send OPTIONS without the preflight headers.
func (h *StoryHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
