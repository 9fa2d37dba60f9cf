package rest

import (
	"errors"
	"fmt"
)

var ErrMissingCredentials = errors.New("missing bearer credentials")

// StatusError is returned for any response outside the 2xx range.
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// NetworkError wraps transport-level failures: DNS, refused or reset
// connections, timeouts and cancellation.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

type DecodeError struct {
	URL  string
	Body string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON response from %s", e.URL)
}
