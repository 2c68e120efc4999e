package crypto

import "errors"

var (
	// ErrInvalidKeyLength is returned when key material is not exactly
	// KeySize bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidKeyEncoding is returned when a hex-encoded key cannot
	// be decoded.
	ErrInvalidKeyEncoding = errors.New("invalid key encoding")

	// ErrInvalidNonceLength is returned when a nonce is not exactly
	// NonceSize bytes.
	ErrInvalidNonceLength = errors.New("invalid nonce length")

	// ErrInvalidBlobID is returned when a blob ID is malformed.
	ErrInvalidBlobID = errors.New("invalid blob id")

	// ErrAuthenticationFailed is returned when opening a box fails.
	// It covers tampering, a wrong key pair and a wrong nonce alike;
	// no further detail is ever exposed.
	ErrAuthenticationFailed = errors.New("message authentication failed")

	// ErrMessageTooLong is returned when the encoded plaintext cannot
	// fit within MaxMessageSize including at least one padding byte.
	ErrMessageTooLong = errors.New("message too long")

	// ErrInvalidPadding is returned when the padding of a decrypted
	// message is malformed.
	ErrInvalidPadding = errors.New("invalid message padding")

	// ErrInvalidMessage is returned when a decrypted payload does not
	// have the structure its type marker promises.
	ErrInvalidMessage = errors.New("invalid message payload")
)
