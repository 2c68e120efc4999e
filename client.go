package sealgate

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/sealgate/client-go/internal/api"
	"github.com/sealgate/client-go/internal/crypto"
)

// DefaultEndpoint is the production gateway endpoint.
const DefaultEndpoint = api.DefaultEndpoint

// Lookups is the directory surface shared by both client variants.
type Lookups interface {
	// LookupPubkey fetches the public key registered for an identity.
	LookupPubkey(ctx context.Context, id string) (PublicKey, error)
	// LookupID resolves a phone or email criterion to an identity.
	LookupID(ctx context.Context, criterion LookupCriterion) (string, error)
	// LookupCapabilities fetches what an identity's client can receive.
	LookupCapabilities(ctx context.Context, id string) (Capabilities, error)
	// LookupCredits fetches the remaining credit balance.
	LookupCredits(ctx context.Context) (int64, error)
}

// lookups is the inner directory client both variants embed; the shared
// behavior lives here once instead of being duplicated per variant.
type lookups struct {
	api *api.Client
}

// LookupPubkey fetches and validates the public key registered for the
// given identity. Keys are fetched fresh on every call; cache them to
// avoid one lookup per message.
func (l *lookups) LookupPubkey(ctx context.Context, id string) (PublicKey, error) {
	hexKey, err := l.api.LookupPubkey(ctx, id)
	if err != nil {
		return PublicKey{}, wrapError(err)
	}
	key, err := crypto.PublicKeyFromHex(hexKey)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: public key %q", ErrUnparsedResponse, hexKey)
	}
	return key, nil
}

// LookupID resolves a directory criterion to an identity.
func (l *lookups) LookupID(ctx context.Context, criterion LookupCriterion) (string, error) {
	id, err := l.api.LookupID(ctx, criterion)
	if err != nil {
		return "", wrapError(err)
	}
	return id, nil
}

// LookupCapabilities fetches the capability set of an identity. Check
// for CapFile or CapImage before uploading a blob for a recipient whose
// client may not support receiving it.
func (l *lookups) LookupCapabilities(ctx context.Context, id string) (Capabilities, error) {
	caps, err := l.api.LookupCapabilities(ctx, id)
	if err != nil {
		return Capabilities{}, wrapError(err)
	}
	return caps, nil
}

// LookupCredits fetches the remaining credit balance of the account.
func (l *lookups) LookupCredits(ctx context.Context) (int64, error) {
	credits, err := l.api.LookupCredits(ctx)
	if err != nil {
		return 0, wrapError(err)
	}
	return credits, nil
}

// newAPIClient validates the accumulated configuration and builds the
// protocol client. All configuration errors surface here, before any
// network activity.
func newAPIClient(id, secret string, cfg *clientConfig) (*api.Client, error) {
	if cfg.err != nil {
		return nil, cfg.err
	}
	if id == "" || secret == "" {
		return nil, ErrMissingCredentials
	}

	opts := []api.Option{}
	if cfg.endpoint != "" {
		u, err := url.Parse(cfg.endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, cfg.endpoint)
		}
		opts = append(opts, api.WithEndpoint(strings.TrimRight(cfg.endpoint, "/")))
	}
	if cfg.httpClient != nil {
		opts = append(opts, api.WithHTTPClient(cfg.httpClient))
	}

	return api.New(id, secret, opts...), nil
}

// NewSimple creates a client for the basic mode, without end-to-end
// encryption. The gateway can read messages sent this way; only the
// transport leg is encrypted.
func NewSimple(id, secret string, opts ...Option) (*SimpleClient, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := newAPIClient(id, secret, cfg)
	if err != nil {
		return nil, err
	}

	return &SimpleClient{lookups: lookups{api: apiClient}}, nil
}

// NewE2E creates a client for the end-to-end encrypted mode. A private
// key must be supplied via WithPrivateKey, WithPrivateKeyBytes or
// WithPrivateKeyHex; construction fails with ErrMissingPrivateKey
// otherwise, so an E2E client without a key cannot exist.
func NewE2E(id, secret string, opts ...Option) (*E2EClient, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := newAPIClient(id, secret, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.privateKey == nil {
		return nil, ErrMissingPrivateKey
	}

	return &E2EClient{
		lookups:    lookups{api: apiClient},
		privateKey: *cfg.privateKey,
	}, nil
}

var (
	_ Lookups = (*SimpleClient)(nil)
	_ Lookups = (*E2EClient)(nil)
)
