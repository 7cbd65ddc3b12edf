package attempts

import (
	"context"

	"github.com/SteveJRobertson/gatekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, attempt *models.AccessAttempt) (*models.AccessAttempt, error)
}
