package gemini

import (
	"fmt"
	"time"
)

// TimeoutError reports that a generative call exceeded its per-call bound.
type TimeoutError struct {
	Op      string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("gemini: %s timed out after %s", e.Op, e.Timeout)
}

// ParseError reports that a response did not contain a parseable JSON object
// or an expected text structure.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gemini: parse failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("gemini: parse failed: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UpstreamError reports any non-timeout HTTP or network failure from the
// generative service.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gemini: %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
