package verifytokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, t *models.VerifyToken) error
	Get(ctx context.Context, id string) (*models.VerifyToken, error)
	// GetByUser returns the outstanding token of userID, if any.
	GetByUser(ctx context.Context, userID string) (*models.VerifyToken, error)
	Delete(ctx context.Context, id string) error
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
