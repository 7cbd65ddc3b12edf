package attempts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SteveJRobertson/gatekeeper/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_GeneratesID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+access_attempts\s*\(id,\s*username,\s*status,\s*granted\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*$`

	mock.ExpectExec(q).
		WithArgs(sqlmock.AnyArg(), "robin", 0, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), &models.AccessAttempt{UserName: "robin", Status: 0, Granted: false})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected a generated id")
	}
}

func TestCreate_KeepsSuppliedID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+access_attempts`

	mock.ExpectExec(q).
		WithArgs("a-1", "batman", 1, true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), &models.AccessAttempt{ID: "a-1", UserName: "batman", Status: 1, Granted: true})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "a-1" {
		t.Fatalf("expected supplied id to be kept, got %q", got.ID)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+access_attempts`

	mock.ExpectExec(q).
		WithArgs(sqlmock.AnyArg(), "joker", -1, false).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.AccessAttempt{UserName: "joker", Status: -1})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
