// Package generation defines the boundary between the application core
// and the external text-generation service. It abstracts the details of
// the LLM API integration (Gemini), allowing handlers to request a story
// without coupling to a specific provider.
package generation
