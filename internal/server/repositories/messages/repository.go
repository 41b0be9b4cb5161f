package messages

import (
	"context"

	"github.com/splitchat/splitchat/internal/models"
)

// Repository is the storage contract for the message index. The index is
// append-only: pointers are never updated or deleted.
type Repository interface {
	// Exists reports whether a pointer with the given natural key is
	// already present.
	Exists(ctx context.Context, containerID, documentID string) (bool, error)

	// Insert appends one pointer. The assigned sequence number is written
	// back into p.Seq.
	Insert(ctx context.Context, p *models.MessagePointer) error

	// ListConversation returns every pointer exchanged between the two
	// users, in either direction, ordered by creation time ascending with
	// the insert sequence as tie-break.
	ListConversation(ctx context.Context, userA, userB string) ([]*models.MessagePointer, error)
}
