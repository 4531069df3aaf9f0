package usecase

import (
	"context"
	"strings"
	"time"

	"vip_mudancas/internal/domain/entities"
	"vip_mudancas/internal/infrastructure/logger"
	"vip_mudancas/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

var (
	ErrClienteNotFound     = errors.New("cliente not found")
	ErrInvalidClienteID    = errors.New("invalid cliente id")
	ErrCPFCNPJJaCadastrado = errors.New("cpf_cnpj already registered")
	ErrPerfilInvalido      = errors.New("invalid perfil")
	ErrStatusClienteVazio  = errors.New("status is required")
)

type ClienteInput struct {
	Nome          string
	Email         string
	Telefone      string
	CPFCNPJ       string
	Endereco      map[string]any
	Status        string
	Fonte         string
	Justificativa string
	Perfil        string
	Empresa       string
	Observacoes   string
}

// ClientePatch lists the client fields a caller may change.
type ClientePatch struct {
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
}

type ListClientesQuery struct {
	Page    int
	PerPage int
	Status  string
	Query   string
}

func (q ListClientesQuery) Normalize() ListClientesQuery {
	page := ListOrcamentosQuery{Page: q.Page, PerPage: q.PerPage}.Normalize()
	q.Page, q.PerPage = page.Page, page.PerPage
	return q
}

type IClienteUseCase interface {
	Create(ctx context.Context, actor Actor, in ClienteInput) (entities.Cliente, error)
	GetByID(ctx context.Context, id string) (entities.Cliente, error)
	Update(ctx context.Context, actor Actor, id string, patch ClientePatch) (entities.Cliente, error)
	UpdateStatus(ctx context.Context, actor Actor, id, status, justificativa string) (entities.Cliente, error)
	Delete(ctx context.Context, actor Actor, id string) error
	List(ctx context.Context, q ListClientesQuery) ([]entities.Cliente, error)
}

type ClienteUseCase struct {
	repo       interfaces.IClienteRepository
	activities activityRecorder
	now        func() time.Time
}

var _ IClienteUseCase = (*ClienteUseCase)(nil)

func NewClienteUseCase(repo interfaces.IClienteRepository, activities interfaces.IUserActivityRepository) *ClienteUseCase {
	u := &ClienteUseCase{repo: repo, now: time.Now}
	u.activities = activityRecorder{repo: activities, now: func() time.Time { return u.now() }}
	return u
}

func (u *ClienteUseCase) Create(ctx context.Context, actor Actor, in ClienteInput) (entities.Cliente, error) {
	if strings.TrimSpace(in.Nome) == "" {
		return entities.Cliente{}, campoObrigatorio("nome")
	}
	if err := validatePerfilCliente(in.Perfil); err != nil {
		return entities.Cliente{}, err
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = entities.ClienteStatusNovo
	}

	now := u.now().UTC()
	created, err := u.repo.Create(ctx, entities.Cliente{
		ID:              uuid.NewString(),
		Nome:            strings.TrimSpace(in.Nome),
		Email:           in.Email,
		Telefone:        in.Telefone,
		CPFCNPJ:         strings.TrimSpace(in.CPFCNPJ),
		Endereco:        nonNilMap(in.Endereco),
		Status:          status,
		Fonte:           in.Fonte,
		Justificativa:   in.Justificativa,
		Perfil:          in.Perfil,
		Empresa:         in.Empresa,
		Observacoes:     in.Observacoes,
		Ativo:           true,
		DataCriacao:     now,
		DataAtualizacao: now,
	})
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return entities.Cliente{}, ErrCPFCNPJJaCadastrado
	}
	if err != nil {
		return entities.Cliente{}, err
	}
	u.activities.record(ctx, actor, entities.ActionCreateCliente,
		"Cliente "+created.Nome+" cadastrado", map[string]any{"cliente_id": created.ID})
	logger.L.Infof("[cliente][usecase] created id=%s", created.ID)
	return created, nil
}

func (u *ClienteUseCase) GetByID(ctx context.Context, id string) (entities.Cliente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cliente{}, ErrInvalidClienteID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Cliente{}, err
	}
	if c.ID == "" {
		return entities.Cliente{}, ErrClienteNotFound
	}
	return c, nil
}

func (u *ClienteUseCase) Update(ctx context.Context, actor Actor, id string, p ClientePatch) (entities.Cliente, error) {
	if p.Perfil != nil {
		if err := validatePerfilCliente(*p.Perfil); err != nil {
			return entities.Cliente{}, err
		}
	}
	if p.Nome != nil && strings.TrimSpace(*p.Nome) == "" {
		return entities.Cliente{}, campoObrigatorio("nome")
	}
	if p.CPFCNPJ != nil {
		doc := strings.TrimSpace(*p.CPFCNPJ)
		p.CPFCNPJ = &doc
	}

	updated, err := u.update(ctx, id, entities.ClienteChanges{
		Nome:          p.Nome,
		Email:         p.Email,
		Telefone:      p.Telefone,
		CPFCNPJ:       p.CPFCNPJ,
		Endereco:      p.Endereco,
		Status:        p.Status,
		Fonte:         p.Fonte,
		Justificativa: p.Justificativa,
		Perfil:        p.Perfil,
		Empresa:       p.Empresa,
		Observacoes:   p.Observacoes,
		Ativo:         p.Ativo,
	})
	if err != nil {
		return entities.Cliente{}, err
	}
	u.activities.record(ctx, actor, entities.ActionUpdateCliente,
		"Cliente "+updated.Nome+" atualizado", map[string]any{"cliente_id": updated.ID})
	return updated, nil
}

// UpdateStatus moves the client through the sales funnel, recording why.
func (u *ClienteUseCase) UpdateStatus(ctx context.Context, actor Actor, id, status, justificativa string) (entities.Cliente, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return entities.Cliente{}, ErrStatusClienteVazio
	}
	updated, err := u.update(ctx, id, entities.ClienteChanges{
		Status:        &status,
		Justificativa: &justificativa,
	})
	if err != nil {
		return entities.Cliente{}, err
	}
	u.activities.record(ctx, actor, entities.ActionUpdateCliente,
		"Status do cliente "+updated.Nome+" alterado para "+status,
		map[string]any{"cliente_id": updated.ID, "status": status})
	return updated, nil
}

// Delete deactivates the client; the record is kept.
func (u *ClienteUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	ativo := false
	updated, err := u.update(ctx, id, entities.ClienteChanges{Ativo: &ativo})
	if err != nil {
		return err
	}
	u.activities.record(ctx, actor, entities.ActionDeleteCliente,
		"Cliente "+updated.Nome+" desativado", map[string]any{"cliente_id": updated.ID})
	return nil
}

func (u *ClienteUseCase) List(ctx context.Context, q ListClientesQuery) ([]entities.Cliente, error) {
	q = q.Normalize()
	return u.repo.List(ctx, interfaces.ClienteFilter{
		Status: strings.TrimSpace(q.Status),
		Query:  q.Query,
		Limit:  q.PerPage,
		Offset: (q.Page - 1) * q.PerPage,
	})
}

func (u *ClienteUseCase) update(ctx context.Context, id string, changes entities.ClienteChanges) (entities.Cliente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cliente{}, ErrInvalidClienteID
	}
	changes.DataAtualizacao = u.now().UTC()
	updated, err := u.repo.Update(ctx, id, changes)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return entities.Cliente{}, ErrCPFCNPJJaCadastrado
	}
	if err != nil {
		return entities.Cliente{}, err
	}
	if updated.ID == "" {
		return entities.Cliente{}, ErrClienteNotFound
	}
	return updated, nil
}

func validatePerfilCliente(perfil string) error {
	if perfil != "" && !perfisCliente[perfil] {
		return errors.Wrapf(ErrPerfilInvalido, "%q", perfil)
	}
	return nil
}
