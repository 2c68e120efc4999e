package api

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sealgate/client-go/internal/crypto"
)

// LookupPubkey fetches the hex-encoded public key registered for the
// given identity.
func (c *Client) LookupPubkey(ctx context.Context, id string) (string, error) {
	body, err := c.get(ctx, "/pubkeys/"+url.PathEscape(id), c.credentials(), KindLookup)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// LookupID resolves a directory criterion to an identity.
func (c *Client) LookupID(ctx context.Context, criterion LookupCriterion) (string, error) {
	body, err := c.get(ctx, "/lookup/"+criterion.path(), c.credentials(), KindLookup)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// LookupCapabilities fetches the capability set of an identity.
func (c *Client) LookupCapabilities(ctx context.Context, id string) (Capabilities, error) {
	body, err := c.get(ctx, "/capabilities/"+url.PathEscape(id), c.credentials(), KindLookup)
	if err != nil {
		return Capabilities{}, err
	}
	return ParseCapabilities(string(body)), nil
}

// LookupCredits fetches the remaining credit balance of the account.
func (c *Client) LookupCredits(ctx context.Context) (int64, error) {
	body, err := c.get(ctx, "/credits", c.credentials(), KindCredits)
	if err != nil {
		return 0, err
	}
	credits, err := strconv.ParseInt(strings.TrimSpace(string(body)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: credit balance %q", ErrUnparsedResponse, strings.TrimSpace(string(body)))
	}
	return credits, nil
}

// SendSimple sends a transport-encrypted-only message. The gateway can
// read the text; use SendE2E when it must not. Returns the message ID.
func (c *Client) SendSimple(ctx context.Context, to Recipient, text string) (string, error) {
	form := url.Values{}
	form.Set("from", c.id)
	form.Set("secret", c.secret)
	to.apply(form)
	form.Set("text", text)

	body, err := c.postForm(ctx, "/send_simple", form, KindSend)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// SendE2E sends a sealed box to the given identity. Nonce and
// ciphertext are hex-encoded as independent form fields. When
// deliveryReceipts is false the field is omitted, which instructs the
// recipient device not to acknowledge delivery; extra carries optional
// additional form fields. Returns the message ID.
func (c *Client) SendE2E(ctx context.Context, to string, nonce crypto.Nonce, box []byte, deliveryReceipts bool, extra url.Values) (string, error) {
	form := url.Values{}
	form.Set("from", c.id)
	form.Set("to", to)
	form.Set("secret", c.secret)
	form.Set("nonce", nonce.Hex())
	form.Set("box", hex.EncodeToString(box))
	if deliveryReceipts {
		form.Set("delivery_receipts", "1")
	}
	for k, vs := range extra {
		for _, v := range vs {
			form.Add(k, v)
		}
	}

	body, err := c.postForm(ctx, "/send_e2e", form, KindSend)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// UploadBlob uploads encrypted blob data and returns the server-assigned
// blob ID. With persist set, the blob survives the first download
// acknowledgement, for distributing one blob to several recipients.
func (c *Client) UploadBlob(ctx context.Context, data []byte, persist bool) (crypto.BlobID, error) {
	query := c.credentials()
	if persist {
		query.Set("persist", "1")
	}
	body, err := c.postBlob(ctx, "/upload_blob", query, data)
	if err != nil {
		return crypto.BlobID{}, err
	}
	id, err := crypto.BlobIDFromHex(strings.TrimSpace(string(body)))
	if err != nil {
		return crypto.BlobID{}, fmt.Errorf("%w: blob id %q", ErrUnparsedResponse, strings.TrimSpace(string(body)))
	}
	return id, nil
}

// DownloadBlob fetches the encrypted bytes of a stored blob.
func (c *Client) DownloadBlob(ctx context.Context, id crypto.BlobID) ([]byte, error) {
	return c.get(ctx, "/blobs/"+id.Hex(), c.credentials(), KindBlob)
}
