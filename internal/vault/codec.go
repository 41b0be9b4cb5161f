package vault

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/splitchat/splitchat/internal/common"
)

// The store transports documents as base64-encoded JSON blobs. These helpers
// convert between Go values and that encoding. Decoding failures mean the
// stored blob is not something this application wrote.

func encodeDocument(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func decodeDocument(blob string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("document is not valid base64: %w", common.ErrMalformedDocument)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("document is not valid JSON: %w", common.ErrMalformedDocument)
	}
	return raw, nil
}
