package repomanager

import (
	"context"
	"database/sql"

	"github.com/SteveJRobertson/gatekeeper/internal/dbx"
	"github.com/SteveJRobertson/gatekeeper/internal/server/repositories/attempts"
	"github.com/SteveJRobertson/gatekeeper/internal/server/repositories/refreshtokens"
	"github.com/SteveJRobertson/gatekeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Attempts(db dbx.DBTX) attempts.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
