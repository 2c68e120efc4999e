package crypto

// EncryptedMessage is the output of the encryption engine: a fresh
// nonce and the sealed ciphertext. Both travel to the gateway as
// independent hex-encoded form fields; they are never concatenated.
// The value is immutable once returned and owned by the caller.
type EncryptedMessage struct {
	Nonce      Nonce
	Ciphertext []byte
}

// No Encrypt* entry point accepts a caller-supplied nonce. Generating
// the nonce here is what rules out nonce reuse at the interface level.
func sealFresh(plaintext []byte, to PublicKey, from PrivateKey) (*EncryptedMessage, error) {
	nonce, err := NewNonce()
	if err != nil {
		return nil, err
	}
	return &EncryptedMessage{
		Nonce:      nonce,
		Ciphertext: Seal(plaintext, to, from, nonce),
	}, nil
}

// EncryptText encodes and encrypts a text message for the recipient key.
func EncryptText(text string, to PublicKey, from PrivateKey) (*EncryptedMessage, error) {
	plaintext, err := EncodeText(text)
	if err != nil {
		return nil, err
	}
	return sealFresh(plaintext, to, from)
}

// EncryptImage encodes and encrypts an image-reference message. The
// image data itself must already be sealed with EncryptRaw and uploaded;
// blobNonce is the nonce that sealed it.
func EncryptImage(blobID BlobID, size uint32, blobNonce Nonce, to PublicKey, from PrivateKey) (*EncryptedMessage, error) {
	plaintext, err := EncodeImage(blobID, size, blobNonce)
	if err != nil {
		return nil, err
	}
	return sealFresh(plaintext, to, from)
}

// EncryptFile encodes and encrypts a file-reference message.
func EncryptFile(msg *FileMessage, to PublicKey, from PrivateKey) (*EncryptedMessage, error) {
	plaintext, err := EncodeFile(msg)
	if err != nil {
		return nil, err
	}
	return sealFresh(plaintext, to, from)
}

// EncryptDeliveryReceipt encodes and encrypts a delivery receipt.
func EncryptDeliveryReceipt(status DeliveryReceiptStatus, ids []MessageID, to PublicKey, from PrivateKey) (*EncryptedMessage, error) {
	plaintext, err := EncodeDeliveryReceipt(status, ids)
	if err != nil {
		return nil, err
	}
	return sealFresh(plaintext, to, from)
}

// EncryptRaw encrypts caller-supplied bytes verbatim, with no type
// marker and no padding. This serves message types the library does not
// model natively, and blob data, which is exempt from MaxMessageSize.
func EncryptRaw(data []byte, to PublicKey, from PrivateKey) (*EncryptedMessage, error) {
	return sealFresh(data, to, from)
}

// DecryptRaw opens a box sealed by the counterpart key pair and returns
// the plaintext verbatim, padding included.
func DecryptRaw(nonce Nonce, ciphertext []byte, sender PublicKey, priv PrivateKey) ([]byte, error) {
	return Open(ciphertext, sender, priv, nonce)
}

// DecryptMessage opens a received message, strips the padding and
// splits off the type marker. Authentication failure surfaces as
// ErrAuthenticationFailed and is never downgraded to a padding or
// structure error.
func DecryptMessage(nonce Nonce, ciphertext []byte, sender PublicKey, priv PrivateKey) (MessageType, []byte, error) {
	plaintext, err := Open(ciphertext, sender, priv, nonce)
	if err != nil {
		return 0, nil, err
	}
	payload, err := Unpad(plaintext)
	if err != nil {
		return 0, nil, err
	}
	if len(payload) < 1 {
		return 0, nil, ErrInvalidMessage
	}
	return MessageType(payload[0]), payload[1:], nil
}
