package crypto

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/curve25519"
)

// KeySize is the size of Curve25519 private and public keys in bytes.
const KeySize = 32

// PrivateKey is a sender's long-term Curve25519 secret key.
type PrivateKey [KeySize]byte

// PublicKey is a Curve25519 public key, typically a recipient's
// long-term key obtained out-of-band or via a directory lookup.
type PublicKey [KeySize]byte

// PrivateKeyFromBytes constructs a private key from raw bytes.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	var key PrivateKey
	if len(b) != KeySize {
		return key, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(b), KeySize)
	}
	copy(key[:], b)
	return key, nil
}

// PrivateKeyFromHex constructs a private key from a hex string.
func PrivateKeyFromHex(s string) (PrivateKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	return PrivateKeyFromBytes(b)
}

// Public derives the Curve25519 public key for this private key.
func (k PrivateKey) Public() PublicKey {
	var pub, priv [KeySize]byte
	priv = k
	curve25519.ScalarBaseMult(&pub, &priv)
	return PublicKey(pub)
}

// String returns a redacted placeholder. Private keys must never reach
// log output or error messages, so all formatted output goes through here.
func (PrivateKey) String() string {
	return "PrivateKey(redacted)"
}

// GoString returns the same redacted placeholder for %#v formatting.
func (k PrivateKey) GoString() string {
	return k.String()
}

// PublicKeyFromBytes constructs a public key from raw bytes. Keys from
// untrusted sources go through here so the length is always validated.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var key PublicKey
	if len(b) != KeySize {
		return key, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(b), KeySize)
	}
	copy(key[:], b)
	return key, nil
}

// PublicKeyFromHex constructs a public key from a hex string.
func PublicKeyFromHex(s string) (PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	return PublicKeyFromBytes(b)
}

// Hex returns the lowercase hex encoding of the public key.
func (k PublicKey) Hex() string {
	return hex.EncodeToString(k[:])
}

func (k PublicKey) String() string {
	return k.Hex()
}
