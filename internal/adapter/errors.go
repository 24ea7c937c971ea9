package adapter

import (
	"errors"
	"fmt"
)

// ErrNetwork matches every [*NetworkError].
var ErrNetwork = errors.New("remote request failed")

// Status sentinels wrapped by [*NetworkError].
var (
	ErrTransport    = errors.New("transport error")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrRateLimited  = errors.New("rate limited")
	ErrServer       = errors.New("remote server error")
	ErrUnexpected   = errors.New("unexpected response status")
)

// ErrMalformedResponse is returned when a 2xx payload cannot be decoded.
var ErrMalformedResponse = errors.New("malformed remote response")

// NetworkError describes a failed remote request. Status is 0 for transport
// failures (DNS, connection reset, timeout, cancellation).
type NetworkError struct {
	Status  int
	Message string
	// Err is the status sentinel or the underlying transport error.
	Err error
}

func (e *NetworkError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %v: %s", ErrNetwork, e.Err, e.Message)
	}
	return fmt.Sprintf("%s: http %d: %v: %s", ErrNetwork, e.Status, e.Err, e.Message)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is makes every NetworkError match [ErrNetwork].
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}
