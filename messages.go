package sealgate

import "github.com/sealgate/client-go/internal/crypto"

// DecodeImageMessage parses the payload of a decrypted image message
// (the bytes after the type marker, as returned by DecryptMessage).
func DecodeImageMessage(payload []byte) (BlobID, uint32, Nonce, error) {
	return crypto.DecodeImageMessage(payload)
}

// DecodeFileMessage parses the payload of a decrypted file message.
func DecodeFileMessage(payload []byte) (*FileMessage, error) {
	return crypto.DecodeFileMessage(payload)
}

// DecodeDeliveryReceipt parses the payload of a decrypted delivery
// receipt.
func DecodeDeliveryReceipt(payload []byte) (DeliveryReceiptStatus, []MessageID, error) {
	return crypto.DecodeDeliveryReceipt(payload)
}
