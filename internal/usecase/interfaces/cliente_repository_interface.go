package interfaces

import (
	"context"

	"vip_mudancas/internal/domain/entities"
)

// ClienteFilter selects a page of active clients, newest first. Query is a
// case-insensitive substring matched against nome, email, telefone and empresa.
type ClienteFilter struct {
	Status string
	Query  string
	Limit  int
	Offset int
}

type IClienteRepository interface {
	Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	GetByID(ctx context.Context, id string) (entities.Cliente, error)
	Update(ctx context.Context, id string, changes entities.ClienteChanges) (entities.Cliente, error)
	List(ctx context.Context, filter ClienteFilter) ([]entities.Cliente, error)
	CountActive(ctx context.Context) (int64, error)
}
