package chatbot

import "errors"

var (
	// ErrRateLimited is returned when a client exceeded its chat quota.
	ErrRateLimited = errors.New("chatbot: rate limit exceeded")

	// ErrInferenceFailed covers every failure to produce a reply: context
	// assembly, provider errors, timeouts and empty completions.
	ErrInferenceFailed = errors.New("chatbot: inference failed")
)

// ValidationError reports an unusable chat message. Its message is shown to
// the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
