// Package vault is a typed HTTP client for the external encrypted document
// store ("the vault"). The store owns encryption; this client only speaks the
// store's wire contract: base64-encoded JSON documents, bearer-credential
// authorization and a success/error response envelope.
package vault

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/splitchat/splitchat/internal/common"
)

// Client performs operations against one vault endpoint on behalf of one
// credential. Clients are cheap; derive a per-principal client with
// WithCredential instead of sharing one across identities.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	maxRetries  uint64
	baseDelay   time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithMaxRetries sets how many times idempotent requests are retried on
// transient failures (network errors, 429, 5xx).
func WithMaxRetries(n uint64) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithBaseDelay sets the initial backoff delay between retries.
func WithBaseDelay(d time.Duration) Option {
	return func(c *Client) { c.baseDelay = d }
}

// New constructs a Client for the given endpoint and access credential.
// An empty credential is valid for the login call only.
func New(baseURL, accessToken string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 20 * time.Second},
		maxRetries:  3,
		baseDelay:   100 * time.Millisecond,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithCredential returns a copy of the client authorized as another
// principal. Used to act with the delegated credential attached to a request.
func (c *Client) WithCredential(accessToken string) *Client {
	clone := *c
	clone.accessToken = accessToken
	return &clone
}

// envelope is the store's generic response wrapper. Successful responses
// carry result=="success" plus operation-specific fields; failures carry an
// error object.
type envelope struct {
	Result string    `json:"result"`
	Error  *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// do executes one JSON request. When idempotent is true, transient failures
// are retried with exponential backoff. The response body is unmarshalled
// into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any, idempotent bool) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	}

	attempt := func(ctx context.Context) error {
		raw, err := c.roundTrip(ctx, method, path, payload)
		if err != nil {
			return err
		}
		return decodeEnvelope(raw, out)
	}

	if !idempotent {
		return attempt(ctx)
	}

	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.baseDelay))
	return retry.Do(ctx, backoff, attempt)
}

// roundTrip performs the HTTP exchange and classifies the status code.
// Transient statuses come back as retryable errors.
func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	// The store expects the access token as the basic-auth username with an
	// empty password.
	req.SetBasicAuth(c.accessToken, "")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, retry.RetryableError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, retry.RetryableError(err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, common.ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, retry.RetryableError(fmt.Errorf("vault status %d: %w", resp.StatusCode, common.ErrContentStore))
	case resp.StatusCode >= 400:
		if msg := envelopeMessage(raw); msg != "" {
			return nil, fmt.Errorf("vault status %d: %s: %w", resp.StatusCode, msg, common.ErrContentStore)
		}
		return nil, fmt.Errorf("vault status %d: %w", resp.StatusCode, common.ErrContentStore)
	}
	return raw, nil
}

// decodeEnvelope rejects error envelopes, then unmarshals the body into out.
func decodeEnvelope(raw []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decoding response: %w", common.ErrContentStore)
	}
	if env.Result == "error" {
		if env.Error != nil {
			return fmt.Errorf("vault error %s: %s: %w", env.Error.Type, env.Error.Message, common.ErrContentStore)
		}
		return fmt.Errorf("vault error: %w", common.ErrContentStore)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding response: %w", common.ErrContentStore)
	}
	return nil
}

func envelopeMessage(raw []byte) string {
	var env envelope
	if json.Unmarshal(raw, &env) != nil || env.Error == nil {
		return ""
	}
	return env.Error.Message
}
