package resettokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, t *models.ResetToken) error
	Get(ctx context.Context, id string) (*models.ResetToken, error)
	Delete(ctx context.Context, id string) error
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
