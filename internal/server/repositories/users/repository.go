package users

import (
	"context"

	"github.com/SteveJRobertson/gatekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	MarkVerified(ctx context.Context, userName string) error
}
