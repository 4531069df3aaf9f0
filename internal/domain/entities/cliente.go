package entities

import "time"

// Cliente is a customer of the moving company. Deletion is soft (Ativo=false);
// CPFCNPJ, when present, is unique through the unique_keys table.
type Cliente struct {
	ID            string         `json:"id"`
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
	Ativo         bool           `json:"ativo"`

	DataCriacao     time.Time `json:"data_criacao"`
	DataAtualizacao time.Time `json:"data_atualizacao"`
}

const ClienteStatusNovo = "novo"

type ClienteChanges struct {
	Nome          *string
	Email         *string
	Telefone      *string
	CPFCNPJ       *string
	Endereco      map[string]any
	Status        *string
	Fonte         *string
	Justificativa *string
	Perfil        *string
	Empresa       *string
	Observacoes   *string
	Ativo         *bool

	DataAtualizacao time.Time
}
