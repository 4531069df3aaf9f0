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
	ErrOrcamentoNotFound           = errors.New("orcamento not found")
	ErrInvalidOrcamentoID          = errors.New("invalid orcamento id")
	ErrCampoObrigatorio            = errors.New("required field missing")
	ErrTipoMudancaInvalido         = errors.New("invalid tipo_mudanca")
	ErrStatusInvalido              = errors.New("invalid status")
	ErrPerfilClienteInvalido       = errors.New("invalid perfil_cliente")
	ErrNumeroOrcamentoIndisponivel = errors.New("could not allocate a unique numero_orcamento")
	ErrSemPermissao                = errors.New("permission denied")
)

const (
	defaultPerPage = 20
	maxPerPage     = 100

	// numeroAttempts bounds the regenerate-and-retry loop for quote numbers.
	numeroAttempts = 5
)

var perfisCliente = map[string]bool{"A": true, "B": true, "AA": true}

// OrcamentoInput is the payload of a new quote. Dates are raw text and are
// parsed by Create.
type OrcamentoInput struct {
	ClienteID       string
	ClienteNome     string
	ClienteEmail    string
	ClienteTelefone string

	EnderecoOrigem  map[string]any
	EnderecoDestino map[string]any

	TipoMudanca string
	DataMudanca string
	DataVisita  string
	Validade    string

	Itens              []map[string]any
	ServicosAdicionais []any

	ValorTotal float64
	Desconto   float64

	Observacoes   string
	PerfilCliente string
}

// OrcamentoPatch is a partial update. Only the fields present here can be
// changed by a caller; valor_final is always derived.
type OrcamentoPatch struct {
	ClienteNome     *string
	ClienteEmail    *string
	ClienteTelefone *string

	EnderecoOrigem  map[string]any
	EnderecoDestino map[string]any

	TipoMudanca *string
	DataMudanca *string
	DataVisita  *string
	Validade    *string

	Itens              []map[string]any
	ServicosAdicionais []any

	ValorTotal *float64
	Desconto   *float64

	Observacoes   *string
	Status        *string
	PerfilCliente *string
}

type ListOrcamentosQuery struct {
	Page    int
	PerPage int
	Status  string
}

// Normalize applies the paging defaults.
func (q ListOrcamentosQuery) Normalize() ListOrcamentosQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = defaultPerPage
	}
	if q.PerPage > maxPerPage {
		q.PerPage = maxPerPage
	}
	return q
}

// IOrcamentoUseCase exposes the quote lifecycle.
//
// Transitions are permissive: approve and reject apply from any state.
type IOrcamentoUseCase interface {
	Create(ctx context.Context, actor Actor, in OrcamentoInput) (entities.Orcamento, error)
	Update(ctx context.Context, actor Actor, id string, patch OrcamentoPatch) (entities.Orcamento, error)
	Approve(ctx context.Context, actor Actor, id string) (entities.Orcamento, error)
	Reject(ctx context.Context, actor Actor, id string, motivo string) (entities.Orcamento, error)
	Delete(ctx context.Context, actor Actor, id string) (entities.Orcamento, error)
	GetByID(ctx context.Context, id string) (entities.Orcamento, error)
	List(ctx context.Context, q ListOrcamentosQuery) ([]entities.Orcamento, error)
	ListByCliente(ctx context.Context, clienteID string) ([]entities.Orcamento, error)
	ListByVendedor(ctx context.Context, vendedorID string) ([]entities.Orcamento, error)
	Statistics(ctx context.Context) (entities.OrcamentoEstatisticas, error)
}

type OrcamentoUseCase struct {
	repo       interfaces.IOrcamentoRepository
	users      interfaces.IUserRepository
	activities activityRecorder
	metrics    MetricsRecorder

	now   func() time.Time
	sleep func(time.Duration)
}

var _ IOrcamentoUseCase = (*OrcamentoUseCase)(nil)

func NewOrcamentoUseCase(
	repo interfaces.IOrcamentoRepository,
	users interfaces.IUserRepository,
	activities interfaces.IUserActivityRepository,
	metrics MetricsRecorder,
) *OrcamentoUseCase {
	u := &OrcamentoUseCase{
		repo:    repo,
		users:   users,
		metrics: metricsOrNoop(metrics),
		now:     time.Now,
		sleep:   time.Sleep,
	}
	u.activities = activityRecorder{repo: activities, now: func() time.Time { return u.now() }}
	return u
}

func campoObrigatorio(campo string) error {
	return errors.Mark(errors.Newf("Campo %s é obrigatório", campo), ErrCampoObrigatorio)
}

func validateTipoMudanca(tipo string) (entities.TipoMudanca, error) {
	t := entities.TipoMudanca(strings.TrimSpace(tipo))
	if !t.Valid() {
		return "", errors.Wrapf(ErrTipoMudancaInvalido, "%q", tipo)
	}
	return t, nil
}

func validatePerfil(perfil string) error {
	if perfil != "" && !perfisCliente[perfil] {
		return errors.Wrapf(ErrPerfilClienteInvalido, "%q", perfil)
	}
	return nil
}

func (u *OrcamentoUseCase) Create(ctx context.Context, actor Actor, in OrcamentoInput) (entities.Orcamento, error) {
	for _, f := range []struct{ campo, valor string }{
		{"cliente_nome", in.ClienteNome},
		{"cliente_email", in.ClienteEmail},
		{"tipo_mudanca", in.TipoMudanca},
	} {
		if strings.TrimSpace(f.valor) == "" {
			return entities.Orcamento{}, campoObrigatorio(f.campo)
		}
	}
	tipo, err := validateTipoMudanca(in.TipoMudanca)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if err := validatePerfil(in.PerfilCliente); err != nil {
		return entities.Orcamento{}, err
	}

	vendedor, err := u.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if vendedor.ID == "" {
		return entities.Orcamento{}, ErrUsuarioNotFound
	}

	now := u.now().UTC()
	validade := now.Add(entities.ValidadePadrao)
	if t, err := entities.ParseTimestamp(in.Validade); err == nil {
		validade = t
	}

	o := entities.Orcamento{
		ID:                 uuid.NewString(),
		ClienteID:          in.ClienteID,
		ClienteNome:        in.ClienteNome,
		ClienteEmail:       in.ClienteEmail,
		ClienteTelefone:    in.ClienteTelefone,
		EnderecoOrigem:     nonNilMap(in.EnderecoOrigem),
		EnderecoDestino:    nonNilMap(in.EnderecoDestino),
		TipoMudanca:        tipo,
		DataMudanca:        entities.NewDataFlexivel(in.DataMudanca),
		DataVisita:         entities.NewDataFlexivel(in.DataVisita),
		Itens:              nonNilItens(in.Itens),
		ServicosAdicionais: nonNilList(in.ServicosAdicionais),
		ValorTotal:         in.ValorTotal,
		Desconto:           in.Desconto,
		ValorFinal:         entities.CalcularValorFinal(in.ValorTotal, in.Desconto),
		Observacoes:        in.Observacoes,
		Status:             entities.OrcamentoStatusPendente,
		Validade:           &validade,
		PerfilCliente:      in.PerfilCliente,
		VendedorID:         vendedor.ID,
		VendedorNome:       vendedor.Name,
		DataCriacao:        now,
		DataAtualizacao:    now,
	}

	created, err := u.createWithUniqueNumero(ctx, o)
	if err != nil {
		return entities.Orcamento{}, err
	}
	u.metrics.OrcamentoCriado()
	u.activities.record(ctx, actor, entities.ActionCreateOrcamento,
		"Orçamento "+created.NumeroOrcamento+" criado", map[string]any{"orcamento_id": created.ID})
	logger.L.Infof("[orcamento][usecase] created id=%s numero=%s vendedor_id=%s", created.ID, created.NumeroOrcamento, created.VendedorID)
	return created, nil
}

// createWithUniqueNumero derives the number from the clock and retries on a
// collision, either seen on lookup or reported by the unique key on insert.
func (u *OrcamentoUseCase) createWithUniqueNumero(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error) {
	for attempt := 0; attempt < numeroAttempts; attempt++ {
		now := u.now()
		numero := entities.GerarNumeroOrcamento(now)

		existing, err := u.repo.GetByNumero(ctx, numero)
		if err != nil {
			return entities.Orcamento{}, err
		}
		if existing.ID == "" {
			o.NumeroOrcamento = numero
			created, err := u.repo.Create(ctx, o)
			if err == nil {
				return created, nil
			}
			if !errors.Is(err, interfaces.ErrDuplicateKey) {
				return entities.Orcamento{}, err
			}
		}

		logger.L.Debugf("[orcamento][usecase] numero collision numero=%s attempt=%d", numero, attempt+1)
		u.sleep(time.Second - time.Duration(now.Nanosecond()))
	}
	return entities.Orcamento{}, ErrNumeroOrcamentoIndisponivel
}

func (u *OrcamentoUseCase) Update(ctx context.Context, actor Actor, id string, p OrcamentoPatch) (entities.Orcamento, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Orcamento{}, err
	}

	changes := entities.OrcamentoChanges{
		ClienteNome:        p.ClienteNome,
		ClienteEmail:       p.ClienteEmail,
		ClienteTelefone:    p.ClienteTelefone,
		EnderecoOrigem:     p.EnderecoOrigem,
		EnderecoDestino:    p.EnderecoDestino,
		Itens:              p.Itens,
		ServicosAdicionais: p.ServicosAdicionais,
		ValorTotal:         p.ValorTotal,
		Desconto:           p.Desconto,
		Observacoes:        p.Observacoes,
		PerfilCliente:      p.PerfilCliente,
		DataAtualizacao:    u.now().UTC(),
	}
	if p.TipoMudanca != nil {
		tipo, err := validateTipoMudanca(*p.TipoMudanca)
		if err != nil {
			return entities.Orcamento{}, err
		}
		changes.TipoMudanca = &tipo
	}
	if p.Status != nil {
		status := entities.OrcamentoStatus(*p.Status)
		if !status.Valid() {
			return entities.Orcamento{}, errors.Wrapf(ErrStatusInvalido, "%q", *p.Status)
		}
		changes.Status = &status
	}
	if p.PerfilCliente != nil {
		if err := validatePerfil(*p.PerfilCliente); err != nil {
			return entities.Orcamento{}, err
		}
	}
	if p.DataMudanca != nil {
		d := entities.NewDataFlexivel(*p.DataMudanca)
		changes.DataMudanca = &d
	}
	if p.DataVisita != nil {
		d := entities.NewDataFlexivel(*p.DataVisita)
		changes.DataVisita = &d
	}
	if p.Validade != nil {
		if t, err := entities.ParseTimestamp(*p.Validade); err == nil {
			changes.Validade = &t
		}
	}
	if p.ValorTotal != nil || p.Desconto != nil {
		total, desconto := current.ValorTotal, current.Desconto
		if p.ValorTotal != nil {
			total = *p.ValorTotal
		}
		if p.Desconto != nil {
			desconto = *p.Desconto
		}
		final := entities.CalcularValorFinal(total, desconto)
		changes.ValorFinal = &final
	}

	updated, err := u.update(ctx, current.ID, changes)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if changes.Status != nil && *changes.Status != current.Status {
		u.metrics.OrcamentoTransicao(string(*changes.Status))
	}
	u.activities.record(ctx, actor, entities.ActionUpdateOrcamento,
		"Orçamento "+updated.NumeroOrcamento+" atualizado", map[string]any{"orcamento_id": updated.ID})
	return updated, nil
}

func (u *OrcamentoUseCase) Approve(ctx context.Context, actor Actor, id string) (entities.Orcamento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Orcamento{}, ErrInvalidOrcamentoID
	}
	status := entities.OrcamentoStatusAprovado
	updated, err := u.update(ctx, id, entities.OrcamentoChanges{
		Status:          &status,
		DataAtualizacao: u.now().UTC(),
	})
	if err != nil {
		return entities.Orcamento{}, err
	}
	u.metrics.OrcamentoTransicao(string(status))
	u.activities.record(ctx, actor, entities.ActionApproveOrcamento,
		"Orçamento "+updated.NumeroOrcamento+" aprovado", map[string]any{"orcamento_id": updated.ID})
	logger.L.Infof("[orcamento][usecase] approved id=%s", updated.ID)
	return updated, nil
}

func (u *OrcamentoUseCase) Reject(ctx context.Context, actor Actor, id string, motivo string) (entities.Orcamento, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Orcamento{}, err
	}
	status := entities.OrcamentoStatusRejeitado
	nota := entities.NotaRejeicao(current.Observacoes, motivo)
	updated, err := u.update(ctx, current.ID, entities.OrcamentoChanges{
		Status:          &status,
		Observacoes:     &nota,
		DataAtualizacao: u.now().UTC(),
	})
	if err != nil {
		return entities.Orcamento{}, err
	}
	u.metrics.OrcamentoTransicao(string(status))
	u.activities.record(ctx, actor, entities.ActionRejectOrcamento,
		"Orçamento "+updated.NumeroOrcamento+" rejeitado: "+motivo, map[string]any{"orcamento_id": updated.ID})
	logger.L.Infof("[orcamento][usecase] rejected id=%s", updated.ID)
	return updated, nil
}

// Delete removes a quote. Only an admin or the quote's salesperson may do it.
func (u *OrcamentoUseCase) Delete(ctx context.Context, actor Actor, id string) (entities.Orcamento, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Orcamento{}, err
	}
	user, err := u.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if !user.IsAdmin() && current.VendedorID != actor.UserID {
		return entities.Orcamento{}, ErrSemPermissao
	}

	if err := u.repo.Delete(ctx, current); err != nil {
		return entities.Orcamento{}, err
	}
	u.activities.record(ctx, actor, entities.ActionDeleteOrcamento,
		"Orçamento "+current.NumeroOrcamento+" deletado", map[string]any{"orcamento_id": current.ID})
	logger.L.Infof("[orcamento][usecase] deleted id=%s by user_id=%s", current.ID, actor.UserID)
	return current, nil
}

func (u *OrcamentoUseCase) GetByID(ctx context.Context, id string) (entities.Orcamento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Orcamento{}, ErrInvalidOrcamentoID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if o.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}
	return o, nil
}

func (u *OrcamentoUseCase) List(ctx context.Context, q ListOrcamentosQuery) ([]entities.Orcamento, error) {
	q = q.Normalize()
	status := entities.OrcamentoStatus(q.Status)
	if status != "" && !status.Valid() {
		return nil, errors.Wrapf(ErrStatusInvalido, "%q", q.Status)
	}
	return u.repo.List(ctx, interfaces.OrcamentoFilter{
		Status: status,
		Limit:  q.PerPage,
		Offset: (q.Page - 1) * q.PerPage,
	})
}

func (u *OrcamentoUseCase) ListByCliente(ctx context.Context, clienteID string) ([]entities.Orcamento, error) {
	return u.repo.ListByCliente(ctx, strings.TrimSpace(clienteID))
}

func (u *OrcamentoUseCase) ListByVendedor(ctx context.Context, vendedorID string) ([]entities.Orcamento, error) {
	return u.repo.ListByVendedor(ctx, strings.TrimSpace(vendedorID))
}

func (u *OrcamentoUseCase) Statistics(ctx context.Context) (entities.OrcamentoEstatisticas, error) {
	total, err := u.repo.Count(ctx, "")
	if err != nil {
		return entities.OrcamentoEstatisticas{}, err
	}
	counts := make(map[entities.OrcamentoStatus]int64, 3)
	for _, s := range []entities.OrcamentoStatus{
		entities.OrcamentoStatusPendente,
		entities.OrcamentoStatusAprovado,
		entities.OrcamentoStatusRejeitado,
	} {
		n, err := u.repo.Count(ctx, s)
		if err != nil {
			return entities.OrcamentoEstatisticas{}, err
		}
		counts[s] = n
	}
	valor, err := u.repo.SumValorFinal(ctx, entities.OrcamentoStatusAprovado)
	if err != nil {
		return entities.OrcamentoEstatisticas{}, err
	}
	return entities.NewOrcamentoEstatisticas(
		total,
		counts[entities.OrcamentoStatusPendente],
		counts[entities.OrcamentoStatusAprovado],
		counts[entities.OrcamentoStatusRejeitado],
		valor,
	), nil
}

func (u *OrcamentoUseCase) update(ctx context.Context, id string, changes entities.OrcamentoChanges) (entities.Orcamento, error) {
	updated, err := u.repo.Update(ctx, id, changes)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if updated.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}
	return updated, nil
}

func nonNilMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func nonNilItens(v []map[string]any) []map[string]any {
	if v == nil {
		return []map[string]any{}
	}
	return v
}

func nonNilList(v []any) []any {
	if v == nil {
		return []any{}
	}
	return v
}
