package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
)

// Repository stores login sessions. Reads that miss return
// common.ErrSessionNotFound.
type Repository interface {
	Create(ctx context.Context, s *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	ListByUser(ctx context.Context, userID string) ([]models.Session, error)
	// Touch moves updated_at forward for the sliding expiry window.
	Touch(ctx context.Context, id string, at time.Time) error
	// RotateRefreshToken replaces the stored secret only while it still
	// equals oldToken. It reports whether the swap happened.
	RotateRefreshToken(ctx context.Context, id, oldToken, newToken string, at time.Time) (bool, error)
	// Delete removes the session only when it belongs to userID.
	Delete(ctx context.Context, id, userID string) (int64, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
	DeleteUpdatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
