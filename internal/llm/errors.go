package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrRateLimit is returned for HTTP 429. RetryAfter is zero unless the
// provider said how long to wait.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("llm: rate limited, retry in %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("llm: rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse carries output that is not JSON or does not match the
// request schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("llm: unusable response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable is a transport failure or a 5xx.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "llm: provider unavailable"
	}
	return fmt.Sprintf("llm: provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded holds whatever was generated before the token limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return fmt.Sprintf("llm: output cut off at the token limit after %d bytes", len(e.Content))
}

// ErrRequestRejected is a 4xx other than 429: a bad key, an unknown model,
// a malformed request. Retrying will not help.
type ErrRequestRejected struct {
	Status int
	Err    error
}

func (e *ErrRequestRejected) Error() string {
	return fmt.Sprintf("llm: request rejected with %d %s: %v", e.Status, http.StatusText(e.Status), e.Err)
}

func (e *ErrRequestRejected) Unwrap() error { return e.Err }

// classifyStatus wraps an SDK error according to its HTTP status. Zero
// means no response arrived.
func classifyStatus(status int, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	case status >= 400 && status < 500:
		return &ErrRequestRejected{Status: status, Err: err}
	default:
		return &ErrProviderUnavailable{Err: err}
	}
}

// withRetryAfter copies a Retry-After header given in seconds onto a rate
// limit error. Other errors pass through.
func withRetryAfter(err error, h http.Header) error {
	var rl *ErrRateLimit
	if h == nil || !errors.As(err, &rl) {
		return err
	}
	if secs, convErr := strconv.Atoi(h.Get("Retry-After")); convErr == nil && secs > 0 {
		rl.RetryAfter = time.Duration(secs) * time.Second
	}
	return err
}
