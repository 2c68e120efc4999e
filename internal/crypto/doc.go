// Package crypto implements the end-to-end encryption layer of the
// gateway protocol: Curve25519/XSalsa20/Poly1305 box encryption, the
// message wire encoding with random padding, and the per-message-type
// encryption entry points.
//
// All operations are pure functions of their inputs. The only source of
// randomness is the fresh nonce (and pad length) drawn from crypto/rand
// inside the Encrypt* entry points; nothing in this package caches keys
// or holds mutable state, so everything is safe for concurrent use.
package crypto
