package spacex

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is against an *Error of the matching kind.
var (
	ErrTransport  = errors.New("transport error")
	ErrHTTPStatus = errors.New("http status error")
	ErrDecode     = errors.New("decode error")
)

// ErrorKind classifies a failed API call.
type ErrorKind int

const (
	KindTransport ErrorKind = iota + 1
	KindHTTPStatus
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTPStatus:
		return "http_status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is returned (inside a failed Result) for every API call that did not
// produce a fully decoded payload.
type Error struct {
	Kind   ErrorKind
	Op     string // request path, e.g. "launches/upcoming"
	Status int    // set for KindHTTPStatus
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("api %s returned status %d", e.Op, e.Status)
	case KindDecode:
		return fmt.Sprintf("api %s: decode response: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("api %s: execute request: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrHTTPStatus:
		return e.Kind == KindHTTPStatus
	case ErrDecode:
		return e.Kind == KindDecode
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain, or zero.
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}
