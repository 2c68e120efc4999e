package sealgate

import (
	"github.com/sealgate/client-go/internal/api"
	"github.com/sealgate/client-go/internal/crypto"
)

// Key material, nonce and message types from the encryption layer.
type (
	// PrivateKey is the sender's long-term Curve25519 secret key. Its
	// formatted output is always redacted.
	PrivateKey = crypto.PrivateKey
	// PublicKey is a Curve25519 public key, typically the recipient's.
	PublicKey = crypto.PublicKey
	// Nonce is a single-use 24-byte value bound to one sealed box.
	Nonce = crypto.Nonce
	// BlobID identifies an uploaded encrypted blob.
	BlobID = crypto.BlobID
	// MessageID identifies a delivered message in a delivery receipt.
	MessageID = crypto.MessageID
	// EncryptedMessage is the nonce/ciphertext pair produced by the
	// Encrypt* operations.
	EncryptedMessage = crypto.EncryptedMessage
	// FileMessage describes a file stored on the blob store.
	FileMessage = crypto.FileMessage
	// MessageType is the leading type marker byte of a message.
	MessageType = crypto.MessageType
	// DeliveryReceiptStatus tells the recipient what happened to the
	// messages a receipt references.
	DeliveryReceiptStatus = crypto.DeliveryReceiptStatus
)

// Directory and addressing types from the protocol layer.
type (
	// Recipient addresses a simple-mode send by id, phone or email.
	Recipient = api.Recipient
	// LookupCriterion selects how an identity is looked up.
	LookupCriterion = api.LookupCriterion
	// Capability is a feature a recipient's client can receive.
	Capability = api.Capability
	// Capabilities is the set of features a recipient supports.
	Capabilities = api.Capabilities
)

// Sizes and limits.
const (
	// KeySize is the size of private and public keys in bytes.
	KeySize = crypto.KeySize
	// NonceSize is the size of a nonce in bytes.
	NonceSize = crypto.NonceSize
	// TagSize is the size of the authentication tag appended to every
	// ciphertext.
	TagSize = crypto.TagSize
	// BlobIDSize is the size of a blob ID in bytes.
	BlobIDSize = crypto.BlobIDSize
	// MaxMessageSize is the maximum padded plaintext size of a message.
	MaxMessageSize = crypto.MaxMessageSize
)

// Message type markers.
const (
	TypeText            = crypto.TypeText
	TypeImage           = crypto.TypeImage
	TypeVideo           = crypto.TypeVideo
	TypeAudio           = crypto.TypeAudio
	TypeFile            = crypto.TypeFile
	TypeDeliveryReceipt = crypto.TypeDeliveryReceipt
)

// Delivery receipt statuses.
const (
	ReceiptReceived     = crypto.ReceiptReceived
	ReceiptRead         = crypto.ReceiptRead
	ReceiptAcknowledged = crypto.ReceiptAcknowledged
	ReceiptDeclined     = crypto.ReceiptDeclined
)

// Known capabilities.
const (
	CapText  = api.CapText
	CapImage = api.CapImage
	CapVideo = api.CapVideo
	CapAudio = api.CapAudio
	CapFile  = api.CapFile
	CapGroup = api.CapGroup
)

// PrivateKeyFromBytes constructs a private key from 32 raw bytes.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	return crypto.PrivateKeyFromBytes(b)
}

// PrivateKeyFromHex constructs a private key from a 64-character hex
// string.
func PrivateKeyFromHex(s string) (PrivateKey, error) {
	return crypto.PrivateKeyFromHex(s)
}

// PublicKeyFromBytes constructs a public key from 32 raw bytes.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	return crypto.PublicKeyFromBytes(b)
}

// PublicKeyFromHex constructs a public key from a 64-character hex
// string.
func PublicKeyFromHex(s string) (PublicKey, error) {
	return crypto.PublicKeyFromHex(s)
}

// NonceFromBytes constructs a nonce from 24 raw bytes, for example the
// nonce field of a received message.
func NonceFromBytes(b []byte) (Nonce, error) {
	return crypto.NonceFromBytes(b)
}

// NonceFromHex constructs a nonce from its hex representation.
func NonceFromHex(s string) (Nonce, error) {
	return crypto.NonceFromHex(s)
}

// BlobIDFromHex constructs a blob ID from its hex representation.
func BlobIDFromHex(s string) (BlobID, error) {
	return crypto.BlobIDFromHex(s)
}

// RecipientID addresses a recipient by gateway identity.
func RecipientID(id string) Recipient {
	return api.RecipientID(id)
}

// RecipientPhone addresses a recipient by phone number in E.164 format
// without the leading plus.
func RecipientPhone(number string) Recipient {
	return api.RecipientPhone(number)
}

// RecipientEmail addresses a recipient by email address.
func RecipientEmail(addr string) Recipient {
	return api.RecipientEmail(addr)
}

// CriterionPhone looks up an identity by plain phone number.
func CriterionPhone(number string) LookupCriterion {
	return api.CriterionPhone(number)
}

// CriterionEmail looks up an identity by plain email address.
func CriterionEmail(addr string) LookupCriterion {
	return api.CriterionEmail(addr)
}

// CriterionPhoneHash looks up an identity by hashed phone number; see
// HashPhone. Fails with ErrBadHashLength for anything that is not a
// 64-character lowercase hex string.
func CriterionPhoneHash(hash string) (LookupCriterion, error) {
	return api.CriterionPhoneHash(hash)
}

// CriterionEmailHash looks up an identity by hashed email address; see
// HashEmail.
func CriterionEmailHash(hash string) (LookupCriterion, error) {
	return api.CriterionEmailHash(hash)
}
