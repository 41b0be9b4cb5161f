// Package chat coordinates the two halves of a message: the content document
// in the external store and the routing pointer in the index server. Message
// bodies never touch the index; the index never holds more than ids.
package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/splitchat/splitchat/internal/common"
	"github.com/splitchat/splitchat/internal/models"
	"github.com/splitchat/splitchat/internal/vault"
)

// ContentStore is the slice of the vault client the coordinator needs.
type ContentStore interface {
	CreateDocument(ctx context.Context, containerID string, document any) (string, error)
	GetDocuments(ctx context.Context, containerID string, documentIDs []string) (map[string][]byte, error)
}

// MessageIndex is the slice of the index server client the coordinator needs.
type MessageIndex interface {
	ListMessages(ctx context.Context, otherUserID string) ([]*models.MessagePointer, error)
	CreateMessage(ctx context.Context, otherUserID, containerID, documentID string) error
}

// Message is one fully assembled chat message: pointer metadata joined with
// the decoded content document.
type Message struct {
	ID         string
	FromUserID string
	ToUserID   string
	Text       string
	Timestamp  time.Time
}

// Coordinator performs bifurcated sends and reads over one content container.
type Coordinator struct {
	store       ContentStore
	index       MessageIndex
	containerID string
}

// NewCoordinator builds a Coordinator writing documents into containerID.
func NewCoordinator(store ContentStore, index MessageIndex, containerID string) *Coordinator {
	return &Coordinator{store: store, index: index, containerID: containerID}
}

// Send stores the message text as a new document, then appends the pointer.
// The content write always happens first: if the append fails, the document
// stays orphaned in the store and no reader will ever see it, because reads
// start from the index. The caller may simply retry; a duplicate append of
// the same document id is absorbed by the server.
func (c *Coordinator) Send(ctx context.Context, toUserID, text string) (string, error) {
	documentID, err := c.store.CreateDocument(ctx, c.containerID, vault.MessageDocument{Message: text})
	if err != nil {
		return "", fmt.Errorf("storing content: %w", err)
	}

	if err := c.index.CreateMessage(ctx, toUserID, c.containerID, documentID); err != nil {
		return "", fmt.Errorf("appending pointer for document %s: %w", documentID, err)
	}
	return documentID, nil
}

// GetConversation lists the pointer sequence for the pair, fetches the
// referenced documents in bulk, and joins the two halves preserving index
// order. An empty conversation returns an empty slice without touching the
// content store. A pointer whose document cannot be produced by the store is
// reported as ErrJoinIntegrity; it is never silently skipped.
func (c *Coordinator) GetConversation(ctx context.Context, otherUserID string) ([]*Message, error) {
	pointers, err := c.index.ListMessages(ctx, otherUserID)
	if err != nil {
		return nil, fmt.Errorf("listing pointers: %w", err)
	}
	if len(pointers) == 0 {
		return []*Message{}, nil
	}

	documents, err := c.fetchDocuments(ctx, pointers)
	if err != nil {
		return nil, err
	}

	result := make([]*Message, 0, len(pointers))
	for _, p := range pointers {
		raw, ok := documents[p.DocumentID]
		if !ok {
			return nil, fmt.Errorf("document %s: %w", p.DocumentID, common.ErrJoinIntegrity)
		}
		doc, err := vault.DecodeMessageDocument(raw)
		if err != nil {
			return nil, fmt.Errorf("document %s: %w", p.DocumentID, err)
		}
		result = append(result, &Message{
			ID:         p.DocumentID,
			FromUserID: p.FromUserID,
			ToUserID:   p.ToUserID,
			Text:       doc.Message,
			Timestamp:  p.CreatedAt,
		})
	}
	return result, nil
}

// fetchDocuments bulk-fetches the distinct documents the pointers reference,
// grouped per container. Pointers normally share one container but nothing
// in the index forbids a mix.
func (c *Coordinator) fetchDocuments(ctx context.Context, pointers []*models.MessagePointer) (map[string][]byte, error) {
	idsByContainer := map[string][]string{}
	seen := map[string]bool{}
	for _, p := range pointers {
		if seen[p.DocumentID] {
			continue
		}
		seen[p.DocumentID] = true
		idsByContainer[p.ContainerID] = append(idsByContainer[p.ContainerID], p.DocumentID)
	}

	documents := make(map[string][]byte, len(seen))
	for containerID, ids := range idsByContainer {
		batch, err := c.store.GetDocuments(ctx, containerID, ids)
		if err != nil {
			return nil, fmt.Errorf("fetching content: %w", err)
		}
		for id, raw := range batch {
			documents[id] = raw
		}
	}
	return documents, nil
}
