// Package services contains server-side business logic. This file implements
// MessageService, which owns the append-only message index: idempotent
// pointer appends and ordered conversation listings.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/splitchat/splitchat/internal/common"
	"github.com/splitchat/splitchat/internal/dbx"
	"github.com/splitchat/splitchat/internal/models"
	"github.com/splitchat/splitchat/internal/server/repositories/repomanager"
)

const pgUniqueViolation = "23505"

// MessageService provides index operations over pointer rows. It never
// retries storage failures itself; retry policy belongs to the caller, which
// can do so safely because Append is idempotent on the pointer's natural key.
type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewMessageService constructs a MessageService using repositories bound to db.
func NewMessageService(db *sql.DB, m repomanager.RepositoryManager) *MessageService {
	return &MessageService{db: db, repomanager: m}
}

// Append durably inserts one pointer. A pointer that already exists (a
// client retry, or a concurrent duplicate of the same send) is treated as
// success without a second row. Storage failures surface as ErrIndex.
func (s *MessageService) Append(ctx context.Context, p *models.MessagePointer) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Messages(tx)

		exists, err := repo.Exists(ctx, p.ContainerID, p.DocumentID)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		return repo.Insert(ctx, p)
	})
	if err != nil {
		// A concurrent append of the same pointer loses the race on the
		// unique index; that still means the pointer is durably stored.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil
		}
		return fmt.Errorf("appending pointer: %v: %w", err, common.ErrIndex)
	}
	return nil
}

// ListConversation returns all pointers between the two users in either
// direction, created_at ascending. Query failures surface as ErrIndex.
func (s *MessageService) ListConversation(ctx context.Context, userA, userB string) ([]*models.MessagePointer, error) {
	repo := s.repomanager.Messages(s.db)
	pointers, err := repo.ListConversation(ctx, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("listing conversation: %v: %w", err, common.ErrIndex)
	}
	return pointers, nil
}
