package ai

import "errors"

// Tagged failure variants raised by Client implementations at the provider
// boundary, so callers classify with errors.Is instead of sniffing messages.
var (
	// ErrRateLimited indicates the provider throttled the request (HTTP 429 or similar).
	ErrRateLimited = errors.New("ai rate limited")

	// ErrModelDeprecated indicates the configured model is being retired or migrated.
	ErrModelDeprecated = errors.New("ai model deprecated")
)
