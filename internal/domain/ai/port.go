package ai

import "context"

// InlinePart carries one base64-encoded document alongside the prompt text.
type InlinePart struct {
	Data      string // base64 payload
	MediaType string
}

// Client is the single boundary to the external generative model.
type Client interface {
	// GenerateContent sends the prompt plus one inline binary part and
	// returns the model's raw response text.
	GenerateContent(ctx context.Context, prompt string, doc InlinePart) (string, error)
}
