package vault

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sethvargo/go-retry"
)

// CreateDocument writes one encoded document into the given container and
// returns the id the store assigned. Documents are immutable once written.
func (c *Client) CreateDocument(ctx context.Context, containerID string, document any) (string, error) {
	blob, err := encodeDocument(document)
	if err != nil {
		return "", err
	}

	var resp struct {
		DocumentID string `json:"document_id"`
	}
	path := fmt.Sprintf("/v1/vaults/%s/documents", containerID)
	if err := c.do(ctx, http.MethodPost, path, map[string]string{"document": blob}, &resp, false); err != nil {
		return "", err
	}
	return resp.DocumentID, nil
}

// GetDocument fetches a single document and returns its decoded JSON bytes.
// The store's single-document endpoint responds with the bare base64 blob,
// not the usual JSON envelope.
func (c *Client) GetDocument(ctx context.Context, containerID, documentID string) ([]byte, error) {
	path := fmt.Sprintf("/v1/vaults/%s/documents/%s", containerID, documentID)

	var raw []byte
	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.baseDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		raw, err = c.roundTrip(ctx, http.MethodGet, path, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return decodeDocument(strings.Trim(strings.TrimSpace(string(raw)), `"`))
}

// GetDocuments fetches a batch of documents and returns decoded JSON bytes
// keyed by document id.
//
// The store's batch endpoint is only defined for two or more ids, so the
// fan-out is explicit: an empty id set returns an empty map without touching
// the network, a single id goes through the single-document endpoint, and
// only n>=2 uses the real multiget.
func (c *Client) GetDocuments(ctx context.Context, containerID string, documentIDs []string) (map[string][]byte, error) {
	switch len(documentIDs) {
	case 0:
		return map[string][]byte{}, nil
	case 1:
		id := documentIDs[0]
		doc, err := c.GetDocument(ctx, containerID, id)
		if err != nil {
			return nil, err
		}
		return map[string][]byte{id: doc}, nil
	}

	var resp struct {
		Documents []struct {
			ID       string `json:"id"`
			Document string `json:"document"`
		} `json:"documents"`
	}
	path := fmt.Sprintf("/v1/vaults/%s/documents/%s", containerID, strings.Join(documentIDs, ","))
	if err := c.do(ctx, http.MethodGet, path, nil, &resp, true); err != nil {
		return nil, err
	}

	result := make(map[string][]byte, len(resp.Documents))
	for _, item := range resp.Documents {
		doc, err := decodeDocument(item.Document)
		if err != nil {
			return nil, fmt.Errorf("document %s: %w", item.ID, err)
		}
		result[item.ID] = doc
	}
	return result, nil
}
