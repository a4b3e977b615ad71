// Package generate produces interview questions from a chat-completion
// backend. Requests are rate limited, retried with exponential backoff and
// issued in batches.
package generate

import "errors"

var (
	// ErrConfiguration means the provider is misconfigured, for example a
	// missing or rejected API key. It is never retried.
	ErrConfiguration = errors.New("generate: configuration error")
	// ErrConnection means the backend could not be reached.
	ErrConnection = errors.New("generate: connection error")
	// ErrAPI means the backend answered with an error.
	ErrAPI = errors.New("generate: api error")
	// ErrRateLimited means the backend or the local limiter refused the call.
	ErrRateLimited = errors.New("generate: rate limited")
	// ErrParse means a response could not be decoded.
	ErrParse = errors.New("generate: parse error")
)

// retryable reports whether err is worth another attempt.
func retryable(err error) bool {
	return errors.Is(err, ErrAPI) || errors.Is(err, ErrConnection) || errors.Is(err, ErrRateLimited)
}
