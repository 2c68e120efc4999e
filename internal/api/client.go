package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// DefaultEndpoint is the production gateway endpoint.
const DefaultEndpoint = "https://msgapi.sealgate.com"

// Client issues gateway protocol requests. It holds only immutable
// credentials and the injected transport, so one client may be shared
// across goroutines.
type Client struct {
	endpoint   string
	id         string
	secret     string
	httpClient *http.Client
}

// Option configures the protocol client.
type Option func(*Client)

// WithEndpoint sets a custom gateway endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = strings.TrimRight(endpoint, "/")
	}
}

// WithHTTPClient sets the transport collaborator. Timeout policy
// belongs to it; the protocol client never imposes one.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// New creates a protocol client for the given gateway credentials.
func New(id, secret string, opts ...Option) *Client {
	c := &Client{
		endpoint:   DefaultEndpoint,
		id:         id,
		secret:     secret,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the configured endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// credentials returns a query with the from/secret pair every endpoint
// requires.
func (c *Client) credentials() url.Values {
	q := url.Values{}
	q.Set("from", c.id)
	q.Set("secret", c.secret)
	return q
}

// do issues the request and reads the full response body. Failures
// below the status layer come back as *TransportError.
func (c *Client) do(req *http.Request) (int, []byte, error) {
	stripped := *req.URL
	stripped.RawQuery = ""

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Err: err, URL: stripped.String()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Err: err, URL: stripped.String()}
	}
	return resp.StatusCode, body, nil
}

// checkStatus turns a non-200 response into a *StatusError carrying the
// raw code.
func checkStatus(status int, body []byte, kind RequestKind) error {
	if status == http.StatusOK {
		return nil
	}
	return &StatusError{StatusCode: status, Kind: kind, Body: string(body)}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, kind RequestKind) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, &TransportError{Err: err, URL: c.endpoint + path}
	}
	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(status, body, kind); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, kind RequestKind) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &TransportError{Err: err, URL: c.endpoint + path}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(status, body, kind); err != nil {
		return nil, err
	}
	return body, nil
}

// postBlob uploads data as the single multipart part "blob". The
// credentials and flags travel in the query string; only the blob body
// itself is multipart-encoded.
func (c *Client) postBlob(ctx context.Context, path string, query url.Values, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("blob", "blob.bin")
	if err != nil {
		return nil, &TransportError{Err: err, URL: c.endpoint + path}
	}
	if _, err := part.Write(data); err != nil {
		return nil, &TransportError{Err: err, URL: c.endpoint + path}
	}
	if err := w.Close(); err != nil {
		return nil, &TransportError{Err: err, URL: c.endpoint + path}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path+"?"+query.Encode(), &buf)
	if err != nil {
		return nil, &TransportError{Err: err, URL: c.endpoint + path}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(status, body, KindBlob); err != nil {
		return nil, err
	}
	return body, nil
}
