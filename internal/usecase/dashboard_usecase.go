package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"vip_mudancas/internal/domain/entities"
	"vip_mudancas/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

var ErrAcessoNegado = errors.New("access denied")

const (
	atividadesRecentesLimit = 10
	calendarioLimit         = 20
	pendenteAlertaIdade     = 7 * 24 * time.Hour
	defaultLoginStatsDays   = 30
	maxLoginStatsDays       = 365
	usuarioDesconhecido     = "Usuário desconhecido"
)

type DashboardMetricas struct {
	ClientesAtivos      int64   `json:"clientes_ativos"`
	OrcamentosPendentes int64   `json:"orcamentos_pendentes"`
	OrcamentosAprovados int64   `json:"orcamentos_aprovados"`
	ValorTotalAprovados float64 `json:"valor_total_aprovados"`
}

// ResumoModulos carries the badge count shown next to each back-office
// module. Modules this service does not manage report zero.
type ResumoModulos struct {
	Clientes       int64 `json:"clientes"`
	Orcamentos     int64 `json:"orcamentos"`
	Contratos      int64 `json:"contratos"`
	OrdensServico  int64 `json:"ordens_servico"`
	Financeiro     int64 `json:"financeiro"`
	Leads          int64 `json:"leads"`
	ProgramaPontos int64 `json:"programa_pontos"`
	Licitacoes     int64 `json:"licitacoes"`
}

type AtividadeRecente struct {
	ID          string    `json:"id"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	UserName    string    `json:"user_name"`
	Timestamp   time.Time `json:"timestamp"`
}

type EventoCalendario struct {
	ID     string `json:"id"`
	Titulo string `json:"titulo"`
	Data   string `json:"data"`
	Tipo   string `json:"tipo"`
	Cor    string `json:"cor"`
}

type Notificacao struct {
	ID       string    `json:"id"`
	Titulo   string    `json:"titulo"`
	Mensagem string    `json:"mensagem"`
	Tipo     string    `json:"tipo"`
	Lida     bool      `json:"lida"`
	Data     time.Time `json:"data"`
}

type TempoColaborador struct {
	UserID         string  `json:"user_id"`
	Nome           string  `json:"nome"`
	CPF            string  `json:"cpf"`
	Role           string  `json:"role"`
	TempoUsoHoras  float64 `json:"tempo_uso_horas"`
	TempoFormatado string  `json:"tempo_uso_formatado"`
}

type TempoUso struct {
	Data          string             `json:"data"`
	Colaboradores []TempoColaborador `json:"colaboradores"`
}

type EstatisticasLogin struct {
	PeriodoDias  int                    `json:"periodo_dias"`
	Estatisticas []entities.LoginDiario `json:"estatisticas"`
}

type IDashboardUseCase interface {
	Metricas(ctx context.Context) (DashboardMetricas, error)
	ResumoModulos(ctx context.Context) (ResumoModulos, error)
	AtividadesRecentes(ctx context.Context) ([]AtividadeRecente, error)
	Calendario(ctx context.Context) ([]EventoCalendario, error)
	Notificacoes(ctx context.Context) ([]Notificacao, error)
	TempoUsoColaboradores(ctx context.Context, requesterID, date string) (TempoUso, error)
	EstatisticasLogin(ctx context.Context, requesterID string, days int) (EstatisticasLogin, error)
}

type DashboardUseCase struct {
	orcamentos interfaces.IOrcamentoRepository
	clientes   interfaces.IClienteRepository
	users      interfaces.IUserRepository
	activities interfaces.IUserActivityRepository
	now        func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	orcamentos interfaces.IOrcamentoRepository,
	clientes interfaces.IClienteRepository,
	users interfaces.IUserRepository,
	activities interfaces.IUserActivityRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		orcamentos: orcamentos,
		clientes:   clientes,
		users:      users,
		activities: activities,
		now:        time.Now,
	}
}

func (u *DashboardUseCase) Metricas(ctx context.Context) (DashboardMetricas, error) {
	clientes, err := u.clientes.CountActive(ctx)
	if err != nil {
		return DashboardMetricas{}, err
	}
	pendentes, err := u.orcamentos.Count(ctx, entities.OrcamentoStatusPendente)
	if err != nil {
		return DashboardMetricas{}, err
	}
	aprovados, err := u.orcamentos.Count(ctx, entities.OrcamentoStatusAprovado)
	if err != nil {
		return DashboardMetricas{}, err
	}
	valor, err := u.orcamentos.SumValorFinal(ctx, entities.OrcamentoStatusAprovado)
	if err != nil {
		return DashboardMetricas{}, err
	}
	return DashboardMetricas{
		ClientesAtivos:      clientes,
		OrcamentosPendentes: pendentes,
		OrcamentosAprovados: aprovados,
		ValorTotalAprovados: valor,
	}, nil
}

func (u *DashboardUseCase) ResumoModulos(ctx context.Context) (ResumoModulos, error) {
	clientes, err := u.clientes.CountActive(ctx)
	if err != nil {
		return ResumoModulos{}, err
	}
	pendentes, err := u.orcamentos.Count(ctx, entities.OrcamentoStatusPendente)
	if err != nil {
		return ResumoModulos{}, err
	}
	return ResumoModulos{Clientes: clientes, Orcamentos: pendentes}, nil
}

func (u *DashboardUseCase) AtividadesRecentes(ctx context.Context) ([]AtividadeRecente, error) {
	acts, err := u.activities.ListRecent(ctx, atividadesRecentesLimit)
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	out := make([]AtividadeRecente, 0, len(acts))
	for _, a := range acts {
		name, ok := names[a.UserID]
		if !ok {
			user, err := u.users.GetByID(ctx, a.UserID)
			if err != nil {
				return nil, err
			}
			name = user.Name
			if user.ID == "" {
				name = usuarioDesconhecido
			}
			names[a.UserID] = name
		}
		out = append(out, AtividadeRecente{
			ID:          a.ID,
			Action:      a.Action,
			Description: a.Description,
			UserName:    name,
			Timestamp:   a.Timestamp,
		})
	}
	return out, nil
}

// Calendario lists visit events followed by move events.
func (u *DashboardUseCase) Calendario(ctx context.Context) ([]EventoCalendario, error) {
	visitas, err := u.orcamentos.ListAgendados(ctx, interfaces.CampoDataVisita, calendarioLimit)
	if err != nil {
		return nil, err
	}
	mudancas, err := u.orcamentos.ListAgendados(ctx, interfaces.CampoDataMudanca, calendarioLimit)
	if err != nil {
		return nil, err
	}

	eventos := make([]EventoCalendario, 0, len(visitas)+len(mudancas))
	for _, o := range visitas {
		if o.DataVisita.IsZero() {
			continue
		}
		eventos = append(eventos, EventoCalendario{
			ID:     o.ID,
			Titulo: "Visita - " + nomeCliente(o),
			Data:   dataEvento(o.DataVisita),
			Tipo:   "visita",
			Cor:    "blue",
		})
	}
	for _, o := range mudancas {
		if o.DataMudanca.IsZero() {
			continue
		}
		eventos = append(eventos, EventoCalendario{
			ID:     o.ID,
			Titulo: "Mudança - " + nomeCliente(o),
			Data:   dataEvento(o.DataMudanca),
			Tipo:   "mudanca",
			Cor:    "green",
		})
	}
	return eventos, nil
}

func nomeCliente(o entities.Orcamento) string {
	if o.ClienteNome == "" {
		return "Cliente"
	}
	return o.ClienteNome
}

func dataEvento(d entities.DataFlexivel) string {
	if d.Time != nil {
		return d.Time.UTC().Format(time.DateOnly)
	}
	return d.Raw
}

func (u *DashboardUseCase) Notificacoes(ctx context.Context) ([]Notificacao, error) {
	now := u.now().UTC()
	vencidos, err := u.orcamentos.CountPendentesAntesDe(ctx, now.Add(-pendenteAlertaIdade))
	if err != nil {
		return nil, err
	}
	if vencidos > 0 {
		return []Notificacao{{
			ID:       "orcamentos_vencidos",
			Titulo:   "Orçamentos pendentes",
			Mensagem: fmt.Sprintf("%d orçamentos pendentes há mais de 7 dias", vencidos),
			Tipo:     "warning",
			Data:     now,
		}}, nil
	}
	return []Notificacao{{
		ID:       "sistema_funcionando",
		Titulo:   "Sistema funcionando",
		Mensagem: "Todas as funcionalidades estão operacionais",
		Tipo:     "info",
		Data:     now,
	}}, nil
}

// TempoUsoColaboradores reports each active user's session time on the given
// UTC day (YYYY-MM-DD; anything else means today), longest first.
func (u *DashboardUseCase) TempoUsoColaboradores(ctx context.Context, requesterID, date string) (TempoUso, error) {
	if err := u.requireAdmin(ctx, requesterID); err != nil {
		return TempoUso{}, err
	}

	now := u.now().UTC()
	day := now
	if t, err := time.Parse(time.DateOnly, date); err == nil {
		day = t
	}
	start, end := entities.DayWindow(day)

	users, err := u.users.ListActive(ctx)
	if err != nil {
		return TempoUso{}, err
	}
	colaboradores := make([]TempoColaborador, 0, len(users))
	for _, user := range users {
		acts, err := u.activities.ListByUserBetween(ctx, user.ID, start, end)
		if err != nil {
			return TempoUso{}, err
		}
		horas := entities.HorasDeUso(entities.SessionSeconds(acts, end, now))
		colaboradores = append(colaboradores, TempoColaborador{
			UserID:         user.ID,
			Nome:           user.Name,
			CPF:            user.CPF,
			Role:           string(user.Role),
			TempoUsoHoras:  horas,
			TempoFormatado: entities.FormatarHoras(horas),
		})
	}
	sort.SliceStable(colaboradores, func(i, j int) bool {
		return colaboradores[i].TempoUsoHoras > colaboradores[j].TempoUsoHoras
	})

	return TempoUso{Data: start.Format(time.DateOnly), Colaboradores: colaboradores}, nil
}

// EstatisticasLogin aggregates logins over the trailing window of days.
func (u *DashboardUseCase) EstatisticasLogin(ctx context.Context, requesterID string, days int) (EstatisticasLogin, error) {
	if err := u.requireAdmin(ctx, requesterID); err != nil {
		return EstatisticasLogin{}, err
	}
	// Non-positive windows fall back to the default; long ones are capped.
	if days <= 0 {
		days = defaultLoginStatsDays
	}
	days = lo.Min([]int{days, maxLoginStatsDays})

	since := u.now().UTC().Add(-time.Duration(days) * 24 * time.Hour)
	logins, err := u.activities.ListByActionSince(ctx, entities.ActionLogin, since)
	if err != nil {
		return EstatisticasLogin{}, err
	}
	return EstatisticasLogin{
		PeriodoDias:  days,
		Estatisticas: entities.LoginStatistics(logins),
	}, nil
}

func (u *DashboardUseCase) requireAdmin(ctx context.Context, userID string) error {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.IsAdmin() {
		return ErrAcessoNegado
	}
	return nil
}
