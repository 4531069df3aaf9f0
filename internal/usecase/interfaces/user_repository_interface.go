package interfaces

import (
	"context"
	"time"

	"vip_mudancas/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User. Lookups return a
// zero User when nothing matches; Create reports ErrDuplicateKey for a CPF
// already registered.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByCPF(ctx context.Context, cpf string) (entities.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) (entities.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string, at time.Time) (entities.User, error)
	ListActive(ctx context.Context) ([]entities.User, error)
}
