// Package story holds the request-scoped domain logic for holiday story
// generation: sanitizing and validating the caller-supplied team roster,
// and assembling the prompt sent to the language model. Nothing in this
// package touches the network; it is consumed by the API handlers and the
// generation client.
package story
