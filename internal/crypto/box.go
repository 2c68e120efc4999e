package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/nacl/box"
)

const (
	// NonceSize is the size of a box nonce in bytes.
	NonceSize = 24
	// TagSize is the size of the Poly1305 authentication tag appended
	// to every ciphertext.
	TagSize = box.Overhead
)

// Nonce is a single-use value bound to one sealed box. A nonce must
// never repeat for the same key pair.
type Nonce [NonceSize]byte

// NewNonce draws a fresh random nonce from crypto/rand.
func NewNonce() (Nonce, error) {
	var n Nonce
	if _, err := rand.Read(n[:]); err != nil {
		return n, fmt.Errorf("generate nonce: %w", err)
	}
	return n, nil
}

// NonceFromBytes constructs a nonce from raw bytes, for example the
// nonce field of a received message.
func NonceFromBytes(b []byte) (Nonce, error) {
	var n Nonce
	if len(b) != NonceSize {
		return n, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidNonceLength, len(b), NonceSize)
	}
	copy(n[:], b)
	return n, nil
}

// NonceFromHex constructs a nonce from a hex string.
func NonceFromHex(s string) (Nonce, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Nonce{}, fmt.Errorf("%w: %v", ErrInvalidNonceLength, err)
	}
	return NonceFromBytes(b)
}

// Hex returns the lowercase hex encoding of the nonce.
func (n Nonce) Hex() string {
	return hex.EncodeToString(n[:])
}

// Seal encrypts and authenticates plaintext for the peer public key
// using the sender's private key and the given nonce. The result is
// len(plaintext)+TagSize bytes. Seal is deterministic; all randomness
// lives in the nonce.
func Seal(plaintext []byte, peer PublicKey, priv PrivateKey, nonce Nonce) []byte {
	n := [NonceSize]byte(nonce)
	return box.Seal(nil, plaintext, &n, (*[KeySize]byte)(&peer), (*[KeySize]byte)(&priv))
}

// Open decrypts and verifies a ciphertext produced by Seal with the
// counterpart key pair. Any mismatch, including a single flipped bit in
// ciphertext or tag, yields ErrAuthenticationFailed; the tag comparison
// is constant-time and no partial plaintext ever escapes.
func Open(ciphertext []byte, peer PublicKey, priv PrivateKey, nonce Nonce) ([]byte, error) {
	n := [NonceSize]byte(nonce)
	plaintext, ok := box.Open(nil, ciphertext, &n, (*[KeySize]byte)(&peer), (*[KeySize]byte)(&priv))
	if !ok {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}
