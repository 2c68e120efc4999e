package sealgate

import (
	"errors"
	"fmt"

	"github.com/sealgate/client-go/internal/api"
	"github.com/sealgate/client-go/internal/crypto"
)

// Construction errors. These indicate a programmer or configuration
// mistake and fail fast at client construction, before any network
// activity.
var (
	// ErrMissingCredentials is returned when the gateway ID or secret
	// is empty.
	ErrMissingCredentials = errors.New("gateway id and secret are required")

	// ErrMissingPrivateKey is returned by NewE2E when no private key
	// option was supplied.
	ErrMissingPrivateKey = errors.New("private key is required for end-to-end mode")

	// ErrInvalidEndpoint is returned when a custom endpoint is not an
	// http or https URL.
	ErrInvalidEndpoint = errors.New("endpoint must be an http or https URL")

	// ErrInvalidKeyLength is returned when key material is not exactly
	// KeySize bytes.
	ErrInvalidKeyLength = crypto.ErrInvalidKeyLength

	// ErrInvalidKeyEncoding is returned when a hex-encoded key cannot
	// be decoded.
	ErrInvalidKeyEncoding = crypto.ErrInvalidKeyEncoding
)

// Protocol errors. All of these are recoverable by the caller; none is
// fatal to the process.
var (
	// ErrBadSenderOrRecipient is returned when the gateway rejects the
	// sender or recipient of a send (HTTP 400).
	ErrBadSenderOrRecipient = errors.New("invalid sender or recipient")

	// ErrBadCredentials is returned when the gateway ID or secret is
	// wrong (HTTP 401).
	ErrBadCredentials = errors.New("invalid gateway id or secret")

	// ErrNoCredits is returned when the account has no credits left
	// (HTTP 402).
	ErrNoCredits = errors.New("no gateway credits remaining")

	// ErrIDNotFound is returned when the target identity or blob does
	// not exist (HTTP 404).
	ErrIDNotFound = errors.New("target id not found")

	// ErrMessageTooLong is returned when a message exceeds the
	// transport limit, either detected locally during encoding or
	// reported by the gateway (HTTP 413).
	ErrMessageTooLong = crypto.ErrMessageTooLong

	// ErrServerError is returned on a gateway-side failure (HTTP 500).
	ErrServerError = errors.New("gateway server error")

	// ErrBadHashLength is returned when a lookup hash has the wrong
	// length.
	ErrBadHashLength = api.ErrBadHashLength

	// ErrUnparsedResponse is returned when a 200 response body does not
	// have the documented shape.
	ErrUnparsedResponse = api.ErrUnparsedResponse
)

// ErrAuthenticationFailed is returned when decrypting a received
// message fails. It signals tampering or a key/nonce mismatch, both
// security-relevant, and is never downgraded to a parse error.
var ErrAuthenticationFailed = crypto.ErrAuthenticationFailed

// GatewayError is implemented by all typed SDK errors.
type GatewayError interface {
	error
	GatewayError() // marker method
}

// RequestKind classifies the request a StatusError came from.
type RequestKind = api.RequestKind

// StatusError reports a non-200 gateway response. The documented codes
// match the protocol sentinels via errors.Is; anything else surfaces
// here unclassified with the raw code preserved.
type StatusError struct {
	StatusCode int
	Kind       RequestKind
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("gateway returned status %d", e.StatusCode)
}

// GatewayError implements the GatewayError interface.
func (e *StatusError) GatewayError() {}

// Is implements errors.Is for the documented status code mapping.
func (e *StatusError) Is(target error) bool {
	switch e.StatusCode {
	case 400:
		switch e.Kind {
		case api.KindSend:
			return target == ErrBadSenderOrRecipient
		case api.KindLookup:
			return target == ErrBadHashLength
		}
		return false
	case 401:
		return target == ErrBadCredentials
	case 402:
		return target == ErrNoCredits
	case 404:
		return target == ErrIDNotFound
	case 413:
		return target == ErrMessageTooLong
	case 500:
		return target == ErrServerError
	}
	return false
}

// TransportError reports a failure below the HTTP status layer:
// connection errors, timeouts, or an unreadable response body.
type TransportError struct {
	Err error
	URL string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway transport error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// GatewayError implements the GatewayError interface.
func (e *TransportError) GatewayError() {}

// wrapError converts internal protocol errors to public errors so that
// errors.Is checks work against the public taxonomy.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return &StatusError{
			StatusCode: statusErr.StatusCode,
			Kind:       statusErr.Kind,
			Body:       statusErr.Body,
		}
	}

	var transportErr *api.TransportError
	if errors.As(err, &transportErr) {
		return &TransportError{
			Err: transportErr.Err,
			URL: transportErr.URL,
		}
	}

	return err
}
