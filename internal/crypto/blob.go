package crypto

import (
	"encoding/hex"
	"fmt"
)

// BlobIDSize is the size of a blob store identifier in bytes.
const BlobIDSize = 16

// BlobID identifies an uploaded encrypted blob on the blob store. The
// ID is assigned by the server; its lifecycle is owned by the blob
// store and only referenced from messages.
type BlobID [BlobIDSize]byte

// BlobIDFromBytes constructs a blob ID from raw bytes.
func BlobIDFromBytes(b []byte) (BlobID, error) {
	var id BlobID
	if len(b) != BlobIDSize {
		return id, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidBlobID, len(b), BlobIDSize)
	}
	copy(id[:], b)
	return id, nil
}

// BlobIDFromHex constructs a blob ID from its hex representation, the
// form returned by the blob upload endpoint.
func BlobIDFromHex(s string) (BlobID, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return BlobID{}, fmt.Errorf("%w: %v", ErrInvalidBlobID, err)
	}
	return BlobIDFromBytes(b)
}

// Hex returns the lowercase hex encoding of the blob ID.
func (id BlobID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id BlobID) String() string {
	return id.Hex()
}
