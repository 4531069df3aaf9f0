package interfaces

import (
	"context"
	"time"

	"vip_mudancas/internal/domain/entities"
)

// IUserActivityRepository is append-only: there is no update or delete.
// Range queries return entries in ascending timestamp order.
type IUserActivityRepository interface {
	Create(ctx context.Context, a entities.UserActivity) (entities.UserActivity, error)
	ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]entities.UserActivity, error)
	ListByActionSince(ctx context.Context, action string, since time.Time) ([]entities.UserActivity, error)
	// ListRecent returns the newest entries first.
	ListRecent(ctx context.Context, limit int) ([]entities.UserActivity, error)
}
