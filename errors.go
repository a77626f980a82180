package imggen

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried by [Error].
const (
	// CodeValidation marks a request the service rejected with 400.
	CodeValidation = "VALIDATION"

	// CodeUnauthorized marks a missing or rejected API key (401).
	CodeUnauthorized = "UNAUTHORIZED"

	// CodeAPI marks any other error status, and transport failures
	// normalized to status 500.
	CodeAPI = "API_ERROR"

	// CodeRateLimited marks a rate limit error built with NewRateLimitError.
	CodeRateLimited = "RATE_LIMITED"

	// CodeInvalidResponse marks a successful response whose body could not
	// be decoded into the expected shape.
	CodeInvalidResponse = "INVALID_RESPONSE"
)

const defaultRateLimitMessage = "Rate limit exceeded"

// Error is the root error type returned by every Client method.
//
// Use errors.As to inspect it, or errors.Is against the sentinels:
//
//	url, err := client.GenerateImage(ctx, req)
//	switch {
//	case errors.Is(err, imggen.ErrValidation):
//	    // fix the request
//	case errors.Is(err, imggen.ErrUnauthorized):
//	    // check the API key
//	}
type Error struct {
	Code    string
	Message string
	Status  int
	Cause   error
}

func (e *Error) Error() string {
	var s string
	switch e.Code {
	case CodeAPI, CodeRateLimited:
		s = fmt.Sprintf("imggen: API error (%d): %s", e.Status, e.Message)
	default:
		s = fmt.Sprintf("imggen: %s: %s", e.Code, e.Message)
	}
	if e.Cause != nil && e.Cause.Error() != e.Message {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by code, so wrapped errors compare equal to the
// sentinels below. Any 429 API error also matches ErrRateLimited.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Code == t.Code {
		return true
	}
	// RateLimited is a specialization of API_ERROR.
	switch {
	case t.Code == CodeAPI && e.Code == CodeRateLimited:
		return true
	case t.Code == CodeRateLimited && e.Code == CodeAPI && e.Status == http.StatusTooManyRequests:
		return true
	}
	return false
}

// Sentinel errors.
var (
	ErrValidation      = &Error{Code: CodeValidation, Message: "invalid request", Status: 400}
	ErrUnauthorized    = &Error{Code: CodeUnauthorized, Message: "invalid API key", Status: 401}
	ErrAPI             = &Error{Code: CodeAPI, Message: "API error", Status: 500}
	ErrRateLimited     = &Error{Code: CodeRateLimited, Message: defaultRateLimitMessage, Status: 429}
	ErrInvalidResponse = &Error{Code: CodeInvalidResponse, Message: "unexpected response"}
)

func newError(code, message string, status int, cause error) *Error {
	return &Error{Code: code, Message: message, Status: status, Cause: cause}
}

// NewAPIError builds an API error with the given status and message.
func NewAPIError(status int, message string) *Error {
	return newError(CodeAPI, message, status, nil)
}

// NewRateLimitError builds a 429 error. An empty message becomes
// "Rate limit exceeded". The client never returns this on its own; a 429
// response surfaces as an API error that still satisfies IsRateLimited.
func NewRateLimitError(message string) *Error {
	if message == "" {
		message = defaultRateLimitMessage
	}
	return newError(CodeRateLimited, message, http.StatusTooManyRequests, nil)
}

// IsValidation reports whether err is a 400 validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnauthorized reports whether err is an authentication error.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsAPIError reports whether err is an API error, including rate limits and
// normalized transport failures.
func IsAPIError(err error) bool {
	return errors.Is(err, ErrAPI)
}

// IsRateLimited reports whether err is a rate limit error or a 429 API error.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

func isRetryable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return (e.Code == CodeAPI || e.Code == CodeRateLimited) && e.Status >= http.StatusInternalServerError
}
