package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SteveJRobertson/gatekeeper/internal/dbx"
	"github.com/SteveJRobertson/gatekeeper/internal/server/access"
	"github.com/SteveJRobertson/gatekeeper/internal/server/details"
	"github.com/SteveJRobertson/gatekeeper/internal/server/models"
	"github.com/SteveJRobertson/gatekeeper/internal/server/report"
	"github.com/SteveJRobertson/gatekeeper/internal/server/repositories/repomanager"
)

// VerifyResult is the outcome of an admin access check. Message is empty when
// access is granted or when the status code is unrecognised.
type VerifyResult struct {
	Granted bool
	Message string
}

// AccessService runs admin access checks against stored accounts, records an
// audit row for every attempt, and stamps last_verified_at on grants.
type AccessService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	reporter    access.ErrorReporter
}

// NewAccessService constructs an AccessService. reporter receives the denial
// message for every reported denial, in addition to the per-call capture.
func NewAccessService(db *sql.DB, m repomanager.RepositoryManager, reporter access.ErrorReporter) *AccessService {
	return &AccessService{db: db, repomanager: m, reporter: reporter}
}

// recordingChecker remembers the last status so the audit row can carry it.
type recordingChecker struct {
	inner  access.DetailsChecker
	status access.Status
}

func (c *recordingChecker) Check(ctx context.Context, username string) (access.Status, error) {
	st, err := c.inner.Check(ctx, username)
	c.status = st
	return st, err
}

// captureReporter keeps the reported message for the caller's response.
type captureReporter struct {
	message string
}

func (r *captureReporter) Report(_ context.Context, message string) {
	r.message = message
}

// VerifyAccess checks whether username has admin rights. The attempt is
// always recorded; on a grant the user row is stamped in the same
// transaction.
func (s *AccessService) VerifyAccess(ctx context.Context, username string) (*VerifyResult, error) {
	checker := &recordingChecker{inner: details.NewRepoChecker(s.repomanager.Users(s.db))}
	capture := &captureReporter{}
	verifier := access.NewVerifier(checker, report.NewMultiReporter(s.reporter, capture))

	granted, err := verifier.Verify(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error verifying access: %w", err)
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		attempt := &models.AccessAttempt{
			UserName: username,
			Status:   int(checker.status),
			Granted:  granted,
		}
		if _, err := s.repomanager.Attempts(tx).Create(ctx, attempt); err != nil {
			return fmt.Errorf("error recording access attempt: %w", err)
		}
		if granted {
			if err := s.repomanager.Users(tx).MarkVerified(ctx, username); err != nil {
				return fmt.Errorf("error stamping verification: %w", err)
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return &VerifyResult{Granted: granted, Message: capture.message}, nil
}
