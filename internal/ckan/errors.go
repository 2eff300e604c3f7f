package ckan

import (
	"errors"
	"fmt"
)

// ErrAcquire is the single condition reported to callers when the payload
// could not be obtained; the concrete cause stays wrapped underneath it.
var ErrAcquire = errors.New("could not acquire data")

// NetworkError is a connection-level failure: DNS, refused connection,
// transport timeout, or a broken body read.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StatusError is a completed HTTP exchange with a non-2xx status. A non-2xx
// response is never treated as a partial result.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}
