// Package chatserver is the HTTP client for the message index server. It
// speaks the server's pointer API: bearer-credential authorization, JSON
// bodies, and pointer lists in index order.
package chatserver

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
	"github.com/splitchat/splitchat/internal/models"
)

// Client talks to one index server on behalf of one credential. Derive a
// per-session client with WithCredential after login.
type Client struct {
	baseURL    string
	credential string
	httpClient *http.Client
	maxRetries uint64
	baseDelay  time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithMaxRetries sets how many times requests are retried on transient
// failures. Appends are safe to retry because the server deduplicates
// pointers on (container id, document id).
func WithMaxRetries(n uint64) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithBaseDelay sets the initial backoff delay between retries.
func WithBaseDelay(d time.Duration) Option {
	return func(c *Client) { c.baseDelay = d }
}

// New constructs a Client for the given server endpoint.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 20 * time.Second},
		maxRetries: 3,
		baseDelay:  100 * time.Millisecond,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithCredential returns a copy of the client authorized with the given
// access token.
func (c *Client) WithCredential(credential string) *Client {
	clone := *c
	clone.credential = credential
	return &clone
}

// ListMessages returns all pointers between the caller and the other user,
// oldest first, exactly as the index ordered them.
func (c *Client) ListMessages(ctx context.Context, otherUserID string) ([]*models.MessagePointer, error) {
	var resp struct {
		Messages []*models.MessagePointer `json:"messages"`
	}
	path := fmt.Sprintf("/chat/%s/messages", otherUserID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

// CreateMessage appends one pointer addressed to the other user. The server
// derives the sender from the credential.
func (c *Client) CreateMessage(ctx context.Context, otherUserID, containerID, documentID string) error {
	body := map[string]string{
		"containerId": containerID,
		"documentId":  documentID,
	}
	path := fmt.Sprintf("/chat/%s/messages", otherUserID)
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// do executes one JSON request with retry on transient failures.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	}

	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.baseDelay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		return c.roundTrip(ctx, method, path, payload, out)
	})
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, out any) error {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+c.credential)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return retry.RetryableError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return retry.RetryableError(err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return common.ErrUnauthorized
	case resp.StatusCode >= 500:
		return retry.RetryableError(fmt.Errorf("index status %d: %w", resp.StatusCode, common.ErrIndex))
	case resp.StatusCode >= 400:
		return fmt.Errorf("index status %d: %w", resp.StatusCode, common.ErrIndex)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding response: %w", common.ErrIndex)
	}
	return nil
}
