package api

import (
	"errors"
	"fmt"
)

var (
	// ErrBadHashLength is returned when a lookup hash does not have the
	// expected length, either detected locally at criterion construction
	// or reported by the server as a 400 on a hashed lookup.
	ErrBadHashLength = errors.New("wrong lookup hash length")

	// ErrUnparsedResponse is returned when a 200 response body does not
	// have the documented shape. It is never silently coerced.
	ErrUnparsedResponse = errors.New("unparsed gateway response")
)

// RequestKind classifies a request for status-code interpretation;
// a 400 means a bad hash on lookups but a bad sender or recipient on
// sends.
type RequestKind string

// Request kinds.
const (
	KindLookup  RequestKind = "lookup"
	KindCredits RequestKind = "credits"
	KindSend    RequestKind = "send"
	KindBlob    RequestKind = "blob"
)

// StatusError reports a non-200 response. It always preserves the raw
// status code, including codes outside the documented mapping.
type StatusError struct {
	StatusCode int
	Kind       RequestKind
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway %s request returned status %d", e.Kind, e.StatusCode)
}

// TransportError reports a failure below the HTTP status layer:
// connection errors, timeouts, or an unreadable response body. It is a
// distinct category, never conflated with a status outcome.
type TransportError struct {
	Err error
	// URL is the request URL without its query string; the query
	// carries the account secret.
	URL string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
