package request

import "vip_mudancas/internal/usecase"

type ClienteRequest struct {
	Nome          string         `json:"nome"`
	Email         string         `json:"email"`
	Telefone      string         `json:"telefone"`
	CPFCNPJ       string         `json:"cpf_cnpj"`
	Endereco      map[string]any `json:"endereco"`
	Status        string         `json:"status"`
	Fonte         string         `json:"fonte"`
	Justificativa string         `json:"justificativa"`
	Perfil        string         `json:"perfil"`
	Empresa       string         `json:"empresa"`
	Observacoes   string         `json:"observacoes"`
}

func (r ClienteRequest) ToInput() usecase.ClienteInput {
	return usecase.ClienteInput{
		Nome:          r.Nome,
		Email:         r.Email,
		Telefone:      r.Telefone,
		CPFCNPJ:       r.CPFCNPJ,
		Endereco:      r.Endereco,
		Status:        r.Status,
		Fonte:         r.Fonte,
		Justificativa: r.Justificativa,
		Perfil:        r.Perfil,
		Empresa:       r.Empresa,
		Observacoes:   r.Observacoes,
	}
}

type ClientePatchRequest struct {
	Nome          *string        `json:"nome"`
	Email         *string        `json:"email"`
	Telefone      *string        `json:"telefone"`
	CPFCNPJ       *string        `json:"cpf_cnpj"`
	Endereco      map[string]any `json:"endereco"`
	Status        *string        `json:"status"`
	Fonte         *string        `json:"fonte"`
	Justificativa *string        `json:"justificativa"`
	Perfil        *string        `json:"perfil"`
	Empresa       *string        `json:"empresa"`
	Observacoes   *string        `json:"observacoes"`
	Ativo         *bool          `json:"ativo"`
}

func (r ClientePatchRequest) ToPatch() usecase.ClientePatch {
	return usecase.ClientePatch{
		Nome:          r.Nome,
		Email:         r.Email,
		Telefone:      r.Telefone,
		CPFCNPJ:       r.CPFCNPJ,
		Endereco:      r.Endereco,
		Status:        r.Status,
		Fonte:         r.Fonte,
		Justificativa: r.Justificativa,
		Perfil:        r.Perfil,
		Empresa:       r.Empresa,
		Observacoes:   r.Observacoes,
		Ativo:         r.Ativo,
	}
}

type ClienteStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	Justificativa string `json:"justificativa"`
}
