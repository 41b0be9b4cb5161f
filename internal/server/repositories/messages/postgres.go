// Package messages provides the PostgreSQL-backed repository for the
// message index.
package messages

import (
	"context"
	"fmt"

	"github.com/splitchat/splitchat/internal/dbx"
	"github.com/splitchat/splitchat/internal/models"
)

// PostgresRepository implements pointer storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Exists reports whether a pointer with the given natural key is present.
func (r *PostgresRepository) Exists(ctx context.Context, containerID, documentID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM messages WHERE container_id=$1 AND document_id=$2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, containerID, documentID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// Insert appends one pointer and scans back the assigned sequence number.
func (r *PostgresRepository) Insert(ctx context.Context, p *models.MessagePointer) error {
	query := `
		INSERT INTO messages (created_at, from_user_id, to_user_id, container_id, document_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING seq;
	`
	err := r.db.QueryRowContext(ctx, query,
		p.CreatedAt, p.FromUserID, p.ToUserID, p.ContainerID, p.DocumentID).Scan(&p.Seq)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListConversation returns all pointers between userA and userB in either
// direction, created_at ascending, seq as tie-break.
func (r *PostgresRepository) ListConversation(ctx context.Context, userA, userB string) ([]*models.MessagePointer, error) {
	query := `
		SELECT seq, created_at, from_user_id, to_user_id, container_id, document_id FROM messages
		WHERE (from_user_id=$1 AND to_user_id=$2) OR (from_user_id=$2 AND to_user_id=$1)
		ORDER BY created_at ASC, seq ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("failed to select pointers: %w", err)
	}
	defer rows.Close()

	var result []*models.MessagePointer
	for rows.Next() {
		var item models.MessagePointer
		if err := rows.Scan(
			&item.Seq, &item.CreatedAt, &item.FromUserID, &item.ToUserID,
			&item.ContainerID, &item.DocumentID,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
