// Package attempts provides a PostgreSQL-backed audit log of admin
// permission checks.
package attempts

import (
	"context"
	"fmt"

	"github.com/SteveJRobertson/gatekeeper/internal/dbx"
	"github.com/SteveJRobertson/gatekeeper/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts one audit row. An id is generated when the caller
// did not supply one.
func (r *PostgresRepository) Create(ctx context.Context, attempt *models.AccessAttempt) (*models.AccessAttempt, error) {
	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}

	query := `
		INSERT INTO access_attempts (id, username, status, granted)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query,
		attempt.ID, attempt.UserName, attempt.Status, attempt.Granted)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return attempt, nil
}
