package response

import (
	"time"

	"vip_mudancas/internal/domain/entities"
)

// OrcamentoResponse is the stored quote plus its derived expiry flag.
type OrcamentoResponse struct {
	entities.Orcamento
	Expirado bool `json:"expirado"`
}

func FromOrcamento(o entities.Orcamento, now time.Time) OrcamentoResponse {
	return OrcamentoResponse{Orcamento: o, Expirado: o.Expirado(now)}
}

func FromOrcamentos(list []entities.Orcamento, now time.Time) []OrcamentoResponse {
	out := make([]OrcamentoResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOrcamento(o, now))
	}
	return out
}
