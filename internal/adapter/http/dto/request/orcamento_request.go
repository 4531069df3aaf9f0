package request

import "vip_mudancas/internal/usecase"

type OrcamentoRequest struct {
	ClienteID       string `json:"cliente_id"`
	ClienteNome     string `json:"cliente_nome"`
	ClienteEmail    string `json:"cliente_email"`
	ClienteTelefone string `json:"cliente_telefone"`

	EnderecoOrigem  map[string]any `json:"endereco_origem"`
	EnderecoDestino map[string]any `json:"endereco_destino"`

	TipoMudanca string `json:"tipo_mudanca"`
	DataMudanca string `json:"data_mudanca"`
	DataVisita  string `json:"data_visita"`
	Validade    string `json:"validade"`

	Itens              []map[string]any `json:"itens"`
	ServicosAdicionais []any            `json:"servicos_adicionais"`

	ValorTotal Number `json:"valor_total"`
	Desconto   Number `json:"desconto"`

	Observacoes   string `json:"observacoes"`
	PerfilCliente string `json:"perfil_cliente"`
}

func (r OrcamentoRequest) ToInput() usecase.OrcamentoInput {
	return usecase.OrcamentoInput{
		ClienteID:          r.ClienteID,
		ClienteNome:        r.ClienteNome,
		ClienteEmail:       r.ClienteEmail,
		ClienteTelefone:    r.ClienteTelefone,
		EnderecoOrigem:     r.EnderecoOrigem,
		EnderecoDestino:    r.EnderecoDestino,
		TipoMudanca:        r.TipoMudanca,
		DataMudanca:        r.DataMudanca,
		DataVisita:         r.DataVisita,
		Validade:           r.Validade,
		Itens:              r.Itens,
		ServicosAdicionais: r.ServicosAdicionais,
		ValorTotal:         float64(r.ValorTotal),
		Desconto:           float64(r.Desconto),
		Observacoes:        r.Observacoes,
		PerfilCliente:      r.PerfilCliente,
	}
}

// OrcamentoPatchRequest only carries the fields a quote update may touch.
// Anything else in the body (numero_orcamento, vendedor_id, valor_final) is
// ignored.
type OrcamentoPatchRequest struct {
	ClienteNome     *string `json:"cliente_nome"`
	ClienteEmail    *string `json:"cliente_email"`
	ClienteTelefone *string `json:"cliente_telefone"`

	EnderecoOrigem  map[string]any `json:"endereco_origem"`
	EnderecoDestino map[string]any `json:"endereco_destino"`

	TipoMudanca *string `json:"tipo_mudanca"`
	DataMudanca *string `json:"data_mudanca"`
	DataVisita  *string `json:"data_visita"`
	Validade    *string `json:"validade"`

	Itens              []map[string]any `json:"itens"`
	ServicosAdicionais []any            `json:"servicos_adicionais"`

	ValorTotal *Number `json:"valor_total"`
	Desconto   *Number `json:"desconto"`

	Observacoes   *string `json:"observacoes"`
	Status        *string `json:"status"`
	PerfilCliente *string `json:"perfil_cliente"`
}

func (r OrcamentoPatchRequest) ToPatch() usecase.OrcamentoPatch {
	return usecase.OrcamentoPatch{
		ClienteNome:        r.ClienteNome,
		ClienteEmail:       r.ClienteEmail,
		ClienteTelefone:    r.ClienteTelefone,
		EnderecoOrigem:     r.EnderecoOrigem,
		EnderecoDestino:    r.EnderecoDestino,
		TipoMudanca:        r.TipoMudanca,
		DataMudanca:        r.DataMudanca,
		DataVisita:         r.DataVisita,
		Validade:           r.Validade,
		Itens:              r.Itens,
		ServicosAdicionais: r.ServicosAdicionais,
		ValorTotal:         r.ValorTotal.Float(),
		Desconto:           r.Desconto.Float(),
		Observacoes:        r.Observacoes,
		Status:             r.Status,
		PerfilCliente:      r.PerfilCliente,
	}
}

type RejeitarRequest struct {
	Motivo string `json:"motivo"`
}
