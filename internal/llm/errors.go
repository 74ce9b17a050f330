// ABOUTME: Error types for the OpenAI provider boundary
// ABOUTME: ProviderError after retries are exhausted, SchemaValidationError fails closed
package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ProviderError wraps an embedding or generation failure that
// survived the configured retries (or was not retryable at all).
type ProviderError struct {
	Op       string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s failed after %d attempt(s): %v", e.Op, e.Attempts, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// SchemaValidationError reports a generation that does not conform to
// the requested schema. No partial answer is returned alongside it.
type SchemaValidationError struct {
	Err error
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("generated answer does not match schema: %v", e.Err)
}

func (e *SchemaValidationError) Unwrap() error { return e.Err }

// isTransient reports whether a provider call is worth retrying:
// rate limits, timeouts, and server-side failures are; other client
// errors (bad key, bad request) are not.
func isTransient(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == 429:
			return true
		case apiErr.HTTPStatusCode == 408:
			return true
		case apiErr.HTTPStatusCode >= 500:
			return true
		default:
			return false
		}
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	// Network failures and deadline overruns surface as plain errors.
	return true
}
