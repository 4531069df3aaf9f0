package usecase

import (
	"context"
	"time"

	"vip_mudancas/internal/domain/entities"
	"vip_mudancas/internal/infrastructure/logger"
	"vip_mudancas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	UserID    string
	IPAddress string
	UserAgent string
}

// MetricsRecorder receives business counters.
type MetricsRecorder interface {
	OrcamentoCriado()
	OrcamentoTransicao(status string)
	Login(success bool)
}

type noopMetrics struct{}

func (noopMetrics) OrcamentoCriado()          {}
func (noopMetrics) OrcamentoTransicao(string) {}
func (noopMetrics) Login(bool)                {}

func metricsOrNoop(m MetricsRecorder) MetricsRecorder {
	if m == nil {
		return noopMetrics{}
	}
	return m
}

// activityRecorder appends audit entries. A failed append is logged and does
// not fail the operation that triggered it.
type activityRecorder struct {
	repo interfaces.IUserActivityRepository
	now  func() time.Time
}

func (r activityRecorder) record(ctx context.Context, actor Actor, action, description string, data map[string]any) {
	if r.repo == nil {
		return
	}
	if data == nil {
		data = map[string]any{}
	}
	a := entities.UserActivity{
		ID:             uuid.NewString(),
		UserID:         actor.UserID,
		Action:         action,
		Description:    description,
		Timestamp:      r.now().UTC(),
		IPAddress:      actor.IPAddress,
		UserAgent:      actor.UserAgent,
		AdditionalData: data,
	}
	if _, err := r.repo.Create(ctx, a); err != nil {
		logger.L.Warnf("[activity][usecase] record failed action=%s user_id=%s err=%v", action, actor.UserID, err)
	}
}
