package repository

import (
	"context"
	"time"

	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/google/uuid"
)

// IdempotencyRepository stores replayable responses keyed by user and Idempotency-Key
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	// Save stores ikey, replacing an expired entry with the same key and user
	Save(ctx context.Context, ikey *entity.IdempotencyKey) error
	// DeleteExpired removes keys that expired before now and returns how many
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
