package sealgate

import (
	"context"
	"net/url"

	"github.com/sealgate/client-go/internal/crypto"
)

// E2EClient talks to the gateway in end-to-end encrypted mode. It holds
// only immutable credentials and the private key after construction and
// may be shared read-only across goroutines; every encryption operation
// is a pure function of its inputs plus a fresh internal nonce.
type E2EClient struct {
	lookups
	privateKey crypto.PrivateKey
}

// PublicKey returns the public key matching the configured private key,
// for publishing to recipients.
func (c *E2EClient) PublicKey() PublicKey {
	return c.privateKey.Public()
}

// EncryptText encrypts a text message for the recipient key.
func (c *E2EClient) EncryptText(text string, to PublicKey) (*EncryptedMessage, error) {
	return crypto.EncryptText(text, to, c.privateKey)
}

// EncryptImage encrypts an image-reference message. The JPEG data must
// already be sealed with EncryptRaw and uploaded via UploadBlob;
// blobNonce is the nonce that sealed it. The size in bytes is shown to
// the recipient before download and has no security meaning.
func (c *E2EClient) EncryptImage(blobID BlobID, size uint32, blobNonce Nonce, to PublicKey) (*EncryptedMessage, error) {
	return crypto.EncryptImage(blobID, size, blobNonce, to, c.privateKey)
}

// EncryptFile encrypts a file-reference message. Every blob the message
// references must exist on the blob store before the message is sent;
// the SDK does not sequence the uploads.
func (c *E2EClient) EncryptFile(msg *FileMessage, to PublicKey) (*EncryptedMessage, error) {
	return crypto.EncryptFile(msg, to, c.privateKey)
}

// EncryptDeliveryReceipt encrypts a delivery receipt for previously
// received messages.
func (c *E2EClient) EncryptDeliveryReceipt(status DeliveryReceiptStatus, ids []MessageID, to PublicKey) (*EncryptedMessage, error) {
	return crypto.EncryptDeliveryReceipt(status, ids, to, c.privateKey)
}

// EncryptRaw encrypts caller-supplied bytes verbatim, with no type
// marker and no padding: for message types the SDK does not model, and
// for blob data before upload.
func (c *E2EClient) EncryptRaw(data []byte, to PublicKey) (*EncryptedMessage, error) {
	return crypto.EncryptRaw(data, to, c.privateKey)
}

// Send delivers an encrypted message to the given identity. With
// deliveryReceipts false, the recipient device is instructed not to
// send delivery receipts; keep it false for one-way sends where the
// receipt would be discarded anyway. Returns the message ID.
//
// Cost: 1 credit.
func (c *E2EClient) Send(ctx context.Context, to string, msg *EncryptedMessage, deliveryReceipts bool) (string, error) {
	return c.sendE2E(ctx, to, msg, deliveryReceipts, nil)
}

// SendWithParams delivers an encrypted message with additional form
// fields. Intended for testing against gateway simulators; regular
// sends use Send.
func (c *E2EClient) SendWithParams(ctx context.Context, to string, msg *EncryptedMessage, deliveryReceipts bool, params url.Values) (string, error) {
	return c.sendE2E(ctx, to, msg, deliveryReceipts, params)
}

func (c *E2EClient) sendE2E(ctx context.Context, to string, msg *EncryptedMessage, deliveryReceipts bool, extra url.Values) (string, error) {
	msgID, err := c.api.SendE2E(ctx, to, msg.Nonce, msg.Ciphertext, deliveryReceipts, extra)
	if err != nil {
		return "", wrapError(err)
	}
	return msgID, nil
}

// UploadBlob uploads the ciphertext of a sealed message to the blob
// store. With persist set, the blob survives the first download
// acknowledgement; use it when distributing one blob to several
// recipients. Returns the server-assigned blob ID.
//
// Cost: 1 credit.
func (c *E2EClient) UploadBlob(ctx context.Context, msg *EncryptedMessage, persist bool) (BlobID, error) {
	return c.UploadBlobRaw(ctx, msg.Ciphertext, persist)
}

// UploadBlobRaw uploads raw bytes to the blob store.
//
// Cost: 1 credit.
func (c *E2EClient) UploadBlobRaw(ctx context.Context, data []byte, persist bool) (BlobID, error) {
	id, err := c.api.UploadBlob(ctx, data, persist)
	if err != nil {
		return BlobID{}, wrapError(err)
	}
	return id, nil
}

// DownloadBlob fetches the encrypted bytes of a stored blob.
func (c *E2EClient) DownloadBlob(ctx context.Context, id BlobID) ([]byte, error) {
	data, err := c.api.DownloadBlob(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return data, nil
}

// DecryptMessage decrypts a message received from sender, strips the
// padding and returns the type marker and payload. Authentication
// failure surfaces as ErrAuthenticationFailed, never as a parse error.
func (c *E2EClient) DecryptMessage(nonce Nonce, box []byte, sender PublicKey) (MessageType, []byte, error) {
	return crypto.DecryptMessage(nonce, box, sender, c.privateKey)
}

// DecryptRaw decrypts a box sealed for us and returns the plaintext
// verbatim, padding included.
func (c *E2EClient) DecryptRaw(nonce Nonce, box []byte, sender PublicKey) ([]byte, error) {
	return crypto.DecryptRaw(nonce, box, sender, c.privateKey)
}
