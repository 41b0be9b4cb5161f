package repomanager

import (
	"context"
	"database/sql"

	"github.com/splitchat/splitchat/internal/dbx"
	"github.com/splitchat/splitchat/internal/server/repositories/messages"
)

// RepositoryManager vends repository implementations bound to a DBTX and
// owns the one-time schema bootstrap.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Messages(db dbx.DBTX) messages.Repository
}
