// Package details implements the production DetailsChecker: user details are
// resolved against the users repository.
package details

import (
	"context"
	"errors"

	"github.com/SteveJRobertson/gatekeeper/internal/common"
	"github.com/SteveJRobertson/gatekeeper/internal/server/access"
	"github.com/SteveJRobertson/gatekeeper/internal/server/repositories/users"
)

// RepoChecker maps a users-repository lookup to an access.Status.
type RepoChecker struct {
	repo users.Repository
}

// NewRepoChecker constructs a checker backed by the given repository.
func NewRepoChecker(repo users.Repository) *RepoChecker {
	return &RepoChecker{repo: repo}
}

// Check resolves username: administrators are StatusAdmin, other known users
// StatusNotAdmin, absent rows StatusUnknownUser. Repository failures other
// than not-found are returned as errors.
func (c *RepoChecker) Check(ctx context.Context, username string) (access.Status, error) {
	user, err := c.repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return access.StatusUnknownUser, nil
		}
		return 0, err
	}

	if user.IsAdmin {
		return access.StatusAdmin, nil
	}
	return access.StatusNotAdmin, nil
}
