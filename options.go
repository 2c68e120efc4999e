package sealgate

import (
	"net/http"

	"github.com/sealgate/client-go/internal/crypto"
)

// clientConfig holds configuration accumulated by the options before a
// client is constructed.
type clientConfig struct {
	endpoint   string
	httpClient *http.Client
	privateKey *crypto.PrivateKey

	// err records the first option failure; construction surfaces it
	// before any network activity.
	err error
}

// Option configures client construction.
type Option func(*clientConfig)

// WithEndpoint sets a custom gateway endpoint. The URL must use http or
// https and carry no trailing slash.
func WithEndpoint(endpoint string) Option {
	return func(c *clientConfig) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient sets the transport collaborator used for all requests.
// Timeout, pooling and TLS policy belong to it; the SDK imposes none.
func WithHTTPClient(h *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = h
	}
}

// WithPrivateKey sets the sender's private key. Required for NewE2E.
func WithPrivateKey(key PrivateKey) Option {
	return func(c *clientConfig) {
		c.privateKey = &key
	}
}

// WithPrivateKeyBytes sets the private key from 32 raw bytes.
func WithPrivateKeyBytes(b []byte) Option {
	return func(c *clientConfig) {
		key, err := crypto.PrivateKeyFromBytes(b)
		if err != nil {
			c.recordErr(err)
			return
		}
		c.privateKey = &key
	}
}

// WithPrivateKeyHex sets the private key from a 64-character hex string.
func WithPrivateKeyHex(s string) Option {
	return func(c *clientConfig) {
		key, err := crypto.PrivateKeyFromHex(s)
		if err != nil {
			c.recordErr(err)
			return
		}
		c.privateKey = &key
	}
}

func (c *clientConfig) recordErr(err error) {
	if c.err == nil {
		c.err = err
	}
}
