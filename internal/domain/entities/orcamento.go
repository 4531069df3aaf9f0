package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrcamentoStatus represents the lifecycle of a quote (orçamento).
//
// Domain notes:
//   - A quote is created pendente and reaches aprovado or rejeitado through the
//     dedicated transition operations; transitions are not restricted by the
//     current state.
//   - Expiry is derived from Validade (see Orcamento.Expirado), never stored.
type OrcamentoStatus string

const (
	OrcamentoStatusPendente  OrcamentoStatus = "pendente"
	OrcamentoStatusAprovado  OrcamentoStatus = "aprovado"
	OrcamentoStatusRejeitado OrcamentoStatus = "rejeitado"
)

func (s OrcamentoStatus) Valid() bool {
	switch s {
	case OrcamentoStatusPendente, OrcamentoStatusAprovado, OrcamentoStatusRejeitado:
		return true
	}
	return false
}

type TipoMudanca string

const (
	TipoMudancaResidencial TipoMudanca = "residencial"
	TipoMudancaComercial   TipoMudanca = "comercial"
	TipoMudancaSelfStorage TipoMudanca = "self_storage"
)

func (t TipoMudanca) Valid() bool {
	switch t {
	case TipoMudancaResidencial, TipoMudancaComercial, TipoMudancaSelfStorage:
		return true
	}
	return false
}

const (
	numeroOrcamentoPrefix = "ORC-"
	numeroOrcamentoLayout = "20060102150405"

	// ValidadePadrao is applied on creation when validade is absent or unparseable.
	ValidadePadrao = 30 * 24 * time.Hour
)

// Orcamento is the moving quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI status-index (status, data_criacao)
//   - GSI cliente_id-index (cliente_id, data_criacao)
//   - GSI vendedor_id-index (vendedor_id, data_criacao)
//   - numero_orcamento is unique through the unique_keys table.
//
// Monetary representation:
//   - ValorFinal is always ValorTotal - Desconto after a write touching either.
type Orcamento struct {
	ID              string `json:"id"`
	NumeroOrcamento string `json:"numero_orcamento"`

	ClienteID       string `json:"cliente_id"`
	ClienteNome     string `json:"cliente_nome"`
	ClienteEmail    string `json:"cliente_email"`
	ClienteTelefone string `json:"cliente_telefone"`

	EnderecoOrigem  map[string]any `json:"endereco_origem"`
	EnderecoDestino map[string]any `json:"endereco_destino"`

	TipoMudanca TipoMudanca  `json:"tipo_mudanca"`
	DataMudanca DataFlexivel `json:"data_mudanca"`
	DataVisita  DataFlexivel `json:"data_visita"`

	Itens              []map[string]any `json:"itens"`
	ServicosAdicionais []any            `json:"servicos_adicionais"`

	ValorTotal float64 `json:"valor_total"`
	Desconto   float64 `json:"desconto"`
	ValorFinal float64 `json:"valor_final"`

	Observacoes   string          `json:"observacoes"`
	Status        OrcamentoStatus `json:"status"`
	Validade      *time.Time      `json:"validade"`
	PerfilCliente string          `json:"perfil_cliente"`

	VendedorID   string `json:"vendedor_id"`
	VendedorNome string `json:"vendedor_nome"`

	DataCriacao     time.Time `json:"data_criacao"`
	DataAtualizacao time.Time `json:"data_atualizacao"`
}

// Expirado reports whether a pending quote is past its validade.
func (o Orcamento) Expirado(now time.Time) bool {
	return o.Status == OrcamentoStatusPendente && o.Validade != nil && now.After(*o.Validade)
}

// OrcamentoChanges carries a partial update. Nil pointers, maps and slices are
// left untouched by the repository.
type OrcamentoChanges struct {
	ClienteNome     *string
	ClienteEmail    *string
	ClienteTelefone *string

	EnderecoOrigem  map[string]any
	EnderecoDestino map[string]any

	TipoMudanca *TipoMudanca
	DataMudanca *DataFlexivel
	DataVisita  *DataFlexivel

	Itens              []map[string]any
	ServicosAdicionais []any

	ValorTotal *float64
	Desconto   *float64
	ValorFinal *float64

	Observacoes   *string
	Status        *OrcamentoStatus
	Validade      *time.Time
	PerfilCliente *string

	DataAtualizacao time.Time
}

// GerarNumeroOrcamento formats the business identifier at second precision.
func GerarNumeroOrcamento(t time.Time) string {
	return numeroOrcamentoPrefix + t.Format(numeroOrcamentoLayout)
}

// CalcularValorFinal returns total - desconto without float drift.
func CalcularValorFinal(total, desconto float64) float64 {
	return decimal.NewFromFloat(total).Sub(decimal.NewFromFloat(desconto)).InexactFloat64()
}

// NotaRejeicao appends the rejection reason to the existing notes.
func NotaRejeicao(observacoes, motivo string) string {
	return strings.TrimSpace(observacoes + "\n\nRejeitado: " + motivo)
}

type OrcamentoEstatisticas struct {
	TotalOrcamentos      int64   `json:"total_orcamentos"`
	OrcamentosPendentes  int64   `json:"orcamentos_pendentes"`
	OrcamentosAprovados  int64   `json:"orcamentos_aprovados"`
	OrcamentosRejeitados int64   `json:"orcamentos_rejeitados"`
	ValorTotalAprovados  float64 `json:"valor_total_aprovados"`
	TaxaConversao        float64 `json:"taxa_conversao"`
}

// NewOrcamentoEstatisticas derives the conversion rate (percent, two decimals).
func NewOrcamentoEstatisticas(total, pendentes, aprovados, rejeitados int64, valorAprovados float64) OrcamentoEstatisticas {
	taxa := 0.0
	if total > 0 {
		taxa = decimal.NewFromInt(aprovados).
			Div(decimal.NewFromInt(total)).
			Mul(decimal.NewFromInt(100)).
			Round(2).
			InexactFloat64()
	}
	return OrcamentoEstatisticas{
		TotalOrcamentos:      total,
		OrcamentosPendentes:  pendentes,
		OrcamentosAprovados:  aprovados,
		OrcamentosRejeitados: rejeitados,
		ValorTotalAprovados:  valorAprovados,
		TaxaConversao:        taxa,
	}
}
