package interfaces

import (
	"context"
	"time"

	"vip_mudancas/internal/domain/entities"
)

// OrcamentoFilter selects a page of quotes, newest first. An empty Status
// matches every quote.
type OrcamentoFilter struct {
	Status entities.OrcamentoStatus
	Limit  int
	Offset int
}

// CampoAgenda names a quote date used by the dashboard calendar.
type CampoAgenda string

const (
	CampoDataVisita  CampoAgenda = "data_visita"
	CampoDataMudanca CampoAgenda = "data_mudanca"
)

// IOrcamentoRepository abstracts DynamoDB persistence for Orcamento.
//
// Lookups return a zero Orcamento (ID == "") when nothing matches.
// Create reports ErrDuplicateKey when numero_orcamento is taken.
type IOrcamentoRepository interface {
	Create(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error)
	GetByID(ctx context.Context, id string) (entities.Orcamento, error)
	GetByNumero(ctx context.Context, numero string) (entities.Orcamento, error)
	Update(ctx context.Context, id string, changes entities.OrcamentoChanges) (entities.Orcamento, error)
	Delete(ctx context.Context, o entities.Orcamento) error

	List(ctx context.Context, filter OrcamentoFilter) ([]entities.Orcamento, error)
	ListByCliente(ctx context.Context, clienteID string) ([]entities.Orcamento, error)
	ListByVendedor(ctx context.Context, vendedorID string) ([]entities.Orcamento, error)
	ListAgendados(ctx context.Context, campo CampoAgenda, limit int) ([]entities.Orcamento, error)

	// Count counts quotes in status, or every quote when status is empty.
	Count(ctx context.Context, status entities.OrcamentoStatus) (int64, error)
	CountPendentesAntesDe(ctx context.Context, before time.Time) (int64, error)
	SumValorFinal(ctx context.Context, status entities.OrcamentoStatus) (float64, error)
}
