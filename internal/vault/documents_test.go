package vault

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitchat/splitchat/internal/common"
)

func b64doc(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(raw)
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(srv.URL, "token-1", WithBaseDelay(time.Millisecond))
	return c, srv
}

func TestCreateDocument(t *testing.T) {
	var gotBody map[string]string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/vaults/vault-1/documents", r.URL.Path)
		user, _, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "token-1", user)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, `{"result":"success","document_id":"doc-42"}`)
	}))

	id, err := c.CreateDocument(context.Background(), "vault-1", MessageDocument{Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "doc-42", id)

	raw, err := base64.StdEncoding.DecodeString(gotBody["document"])
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"hello"}`, string(raw))
}

func TestGetDocuments_EmptySet_NoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	docs, err := c.GetDocuments(context.Background(), "vault-1", nil)
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.Equal(t, int64(0), calls.Load(), "empty set must not touch the network")
}

func TestGetDocuments_SingleID_UsesSingleDocumentPath(t *testing.T) {
	blob := b64doc(t, MessageDocument{Message: "solo"})
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the single-document endpoint returns the bare blob
		assert.Equal(t, "/v1/vaults/vault-1/documents/doc-1", r.URL.Path)
		fmt.Fprint(w, blob)
	}))

	docs, err := c.GetDocuments(context.Background(), "vault-1", []string{"doc-1"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.JSONEq(t, `{"message":"solo"}`, string(docs["doc-1"]))
}

func TestGetDocuments_Batch(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/vaults/vault-1/documents/a,b,c", r.URL.Path)
		resp := map[string]any{
			"result": "success",
			"documents": []map[string]string{
				{"id": "a", "document": b64doc(t, MessageDocument{Message: "one"})},
				{"id": "b", "document": b64doc(t, MessageDocument{Message: "two"})},
				{"id": "c", "document": b64doc(t, MessageDocument{Message: "three"})},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))

	docs, err := c.GetDocuments(context.Background(), "vault-1", []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.JSONEq(t, `{"message":"two"}`, string(docs["b"]))
}

func TestGetDocuments_BatchMalformedBlob(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"result": "success",
			"documents": []map[string]string{
				{"id": "a", "document": "!!! not base64 !!!"},
				{"id": "b", "document": b64doc(t, MessageDocument{Message: "two"})},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))

	_, err := c.GetDocuments(context.Background(), "vault-1", []string{"a", "b"})
	assert.ErrorIs(t, err, common.ErrMalformedDocument)
}

func TestGetDocument_RetriesTransientFailure(t *testing.T) {
	var calls atomic.Int64
	blob := b64doc(t, MessageDocument{Message: "eventually"})
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, blob)
	}))

	raw, err := c.GetDocument(context.Background(), "vault-1", "doc-9")
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"eventually"}`, string(raw))
	assert.Equal(t, int64(2), calls.Load())
}

func TestDo_UnauthorizedMapsToSentinel(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.CreateDocument(context.Background(), "vault-1", MessageDocument{Message: "x"})
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestDo_ErrorEnvelope(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":"error","error":{"code":0,"message":"no such vault","type":"NOT_FOUND"}}`)
	}))

	_, err := c.CreateDocument(context.Background(), "vault-1", MessageDocument{Message: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrContentStore)
	assert.True(t, strings.Contains(err.Error(), "no such vault"))
}
