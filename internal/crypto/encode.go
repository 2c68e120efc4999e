package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
)

// MessageType is the single leading byte that tells the receiving
// client how to interpret a decrypted message. The set is closed and
// versioned by the protocol; clients ignore types they do not know.
type MessageType byte

// Known message types.
const (
	TypeText            MessageType = 0x01
	TypeImage           MessageType = 0x02
	TypeVideo           MessageType = 0x13
	TypeAudio           MessageType = 0x14
	TypeFile            MessageType = 0x17
	TypeDeliveryReceipt MessageType = 0x80
)

// MaxMessageSize is the maximum padded plaintext size the transport
// accepts for one message. Blobs are not subject to this limit.
const MaxMessageSize = 3500

const maxPadLength = 255

// pad appends PKCS#7-style random padding: a length n drawn uniformly
// from [1,255] followed by n bytes each of value n, so short messages
// cannot be fingerprinted by ciphertext size. When fewer than 255
// padding bytes fit under MaxMessageSize, n is drawn from the reduced
// range instead of truncating content.
func pad(b []byte) ([]byte, error) {
	room := MaxMessageSize - len(b)
	if room < 1 {
		return nil, fmt.Errorf("%w: %d bytes before padding, limit %d", ErrMessageTooLong, len(b), MaxMessageSize)
	}
	max := maxPadLength
	if room < max {
		max = room
	}
	r, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return nil, fmt.Errorf("generate padding: %w", err)
	}
	n := int(r.Int64()) + 1
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...), nil
}

// Unpad strips the random padding from a decrypted plaintext. The last
// byte gives the pad length; every pad byte must carry that value.
func Unpad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrInvalidPadding
	}
	n := int(b[len(b)-1])
	if n < 1 || n > len(b) {
		return nil, ErrInvalidPadding
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, ErrInvalidPadding
		}
	}
	return b[:len(b)-n], nil
}

// EncodeText encodes a text message: type marker, UTF-8 bytes, padding.
func EncodeText(text string) ([]byte, error) {
	buf := make([]byte, 0, 1+len(text))
	buf = append(buf, byte(TypeText))
	buf = append(buf, text...)
	return pad(buf)
}

// EncodeImage encodes an image-reference message: type marker, blob ID,
// image size in bytes (big-endian), and the nonce the encrypted image
// blob was sealed with. The blob must already exist on the blob store.
func EncodeImage(blobID BlobID, size uint32, blobNonce Nonce) ([]byte, error) {
	buf := make([]byte, 0, 1+BlobIDSize+4+NonceSize)
	buf = append(buf, byte(TypeImage))
	buf = append(buf, blobID[:]...)
	buf = binary.BigEndian.AppendUint32(buf, size)
	buf = append(buf, blobNonce[:]...)
	return pad(buf)
}

// DecodeImageMessage parses the payload of an image message (the
// unpadded plaintext without the leading type marker).
func DecodeImageMessage(payload []byte) (BlobID, uint32, Nonce, error) {
	if len(payload) != BlobIDSize+4+NonceSize {
		return BlobID{}, 0, Nonce{}, fmt.Errorf("%w: image payload is %d bytes", ErrInvalidMessage, len(payload))
	}
	var id BlobID
	copy(id[:], payload[:BlobIDSize])
	size := binary.BigEndian.Uint32(payload[BlobIDSize : BlobIDSize+4])
	var nonce Nonce
	copy(nonce[:], payload[BlobIDSize+4:])
	return id, size, nonce, nil
}

// FileMessage describes a file stored on the blob store. All referenced
// blobs must be uploaded before the message referencing them is sent.
type FileMessage struct {
	BlobID   BlobID
	BlobKey  [KeySize]byte
	MimeType string
	FileName string
	Size     uint32
	// Thumbnail references an optional preview blob, sealed with the
	// same blob key.
	Thumbnail *BlobID
}

// fileMessageJSON is the wire form of a file message body.
type fileMessageJSON struct {
	Blob      string `json:"b"`
	Key       string `json:"k"`
	MimeType  string `json:"m"`
	FileName  string `json:"n,omitempty"`
	Size      uint32 `json:"s"`
	Thumbnail string `json:"t,omitempty"`
	Rendering int    `json:"i"`
}

// EncodeFile encodes a file-reference message: type marker, a compact
// JSON body carrying the blob coordinates, padding.
func EncodeFile(msg *FileMessage) ([]byte, error) {
	j := fileMessageJSON{
		Blob:     msg.BlobID.Hex(),
		Key:      hex.EncodeToString(msg.BlobKey[:]),
		MimeType: msg.MimeType,
		FileName: msg.FileName,
		Size:     msg.Size,
	}
	if msg.Thumbnail != nil {
		j.Thumbnail = msg.Thumbnail.Hex()
	}
	body, err := json.Marshal(j)
	if err != nil {
		return nil, fmt.Errorf("encode file message: %w", err)
	}
	buf := make([]byte, 0, 1+len(body))
	buf = append(buf, byte(TypeFile))
	buf = append(buf, body...)
	return pad(buf)
}

// DecodeFileMessage parses the payload of a file message (the unpadded
// plaintext without the leading type marker).
func DecodeFileMessage(payload []byte) (*FileMessage, error) {
	var j fileMessageJSON
	if err := json.Unmarshal(payload, &j); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	blobID, err := BlobIDFromHex(j.Blob)
	if err != nil {
		return nil, fmt.Errorf("%w: blob id: %v", ErrInvalidMessage, err)
	}
	keyBytes, err := hex.DecodeString(j.Key)
	if err != nil || len(keyBytes) != KeySize {
		return nil, fmt.Errorf("%w: blob key", ErrInvalidMessage)
	}
	msg := &FileMessage{
		BlobID:   blobID,
		MimeType: j.MimeType,
		FileName: j.FileName,
		Size:     j.Size,
	}
	copy(msg.BlobKey[:], keyBytes)
	if j.Thumbnail != "" {
		thumb, err := BlobIDFromHex(j.Thumbnail)
		if err != nil {
			return nil, fmt.Errorf("%w: thumbnail blob id: %v", ErrInvalidMessage, err)
		}
		msg.Thumbnail = &thumb
	}
	return msg, nil
}

// MessageIDSize is the size of a message ID referenced by a delivery
// receipt.
const MessageIDSize = 8

// MessageID identifies a previously delivered message.
type MessageID [MessageIDSize]byte

// DeliveryReceiptStatus tells the recipient what happened to the
// referenced messages.
type DeliveryReceiptStatus byte

// Delivery receipt statuses.
const (
	ReceiptReceived     DeliveryReceiptStatus = 0x01
	ReceiptRead         DeliveryReceiptStatus = 0x02
	ReceiptAcknowledged DeliveryReceiptStatus = 0x03
	ReceiptDeclined     DeliveryReceiptStatus = 0x04
)

// EncodeDeliveryReceipt encodes a delivery receipt: type marker, status
// byte, one or more message IDs, padding.
func EncodeDeliveryReceipt(status DeliveryReceiptStatus, ids []MessageID) ([]byte, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: delivery receipt needs at least one message id", ErrInvalidMessage)
	}
	buf := make([]byte, 0, 2+len(ids)*MessageIDSize)
	buf = append(buf, byte(TypeDeliveryReceipt), byte(status))
	for _, id := range ids {
		buf = append(buf, id[:]...)
	}
	return pad(buf)
}

// DecodeDeliveryReceipt parses the payload of a delivery receipt (the
// unpadded plaintext without the leading type marker).
func DecodeDeliveryReceipt(payload []byte) (DeliveryReceiptStatus, []MessageID, error) {
	if len(payload) < 1+MessageIDSize || (len(payload)-1)%MessageIDSize != 0 {
		return 0, nil, fmt.Errorf("%w: delivery receipt payload is %d bytes", ErrInvalidMessage, len(payload))
	}
	status := DeliveryReceiptStatus(payload[0])
	rest := payload[1:]
	ids := make([]MessageID, 0, len(rest)/MessageIDSize)
	for len(rest) > 0 {
		var id MessageID
		copy(id[:], rest[:MessageIDSize])
		ids = append(ids, id)
		rest = rest[MessageIDSize:]
	}
	return status, ids, nil
}
