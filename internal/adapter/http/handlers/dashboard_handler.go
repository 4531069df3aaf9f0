package handlers

import (
	"net/http"

	"vip_mudancas/internal/infrastructure/logger"
	"vip_mudancas/internal/usecase"
	"vip_mudancas/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) Metricas(c *gin.Context) {
	m, err := h.usecase.Metricas(c.Request.Context())
	if err != nil {
		writeError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"metricas": m})
}

func (h *DashboardHandler) ResumoModulos(c *gin.Context) {
	resumo, err := h.usecase.ResumoModulos(c.Request.Context())
	if err != nil {
		writeError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"resumo_modulos": resumo})
}

func (h *DashboardHandler) AtividadesRecentes(c *gin.Context) {
	list, err := h.usecase.AtividadesRecentes(c.Request.Context())
	if err != nil {
		writeError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"atividades": list})
}

func (h *DashboardHandler) Calendario(c *gin.Context) {
	eventos, err := h.usecase.Calendario(c.Request.Context())
	if err != nil {
		writeError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"eventos": eventos})
}

func (h *DashboardHandler) Notificacoes(c *gin.Context) {
	list, err := h.usecase.Notificacoes(c.Request.Context())
	if err != nil {
		writeError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"notificacoes": list})
}

// TempoUsoColaboradores godoc
// @Summary  Session time per collaborator for one UTC day
// @Tags     dashboard
// @Produce  json
// @Param    date query string false "YYYY-MM-DD, defaults to today"
// @Success  200 {object} usecase.TempoUso
// @Failure  403 {object} pkg.HTTPError
// @Security BearerAuth
// @Router   /dashboard/tempo-uso-colaboradores [get]
func (h *DashboardHandler) TempoUsoColaboradores(c *gin.Context) {
	res, err := h.usecase.TempoUsoColaboradores(c.Request.Context(), c.GetString(ContextUserID), c.Query("date"))
	if err != nil {
		writeError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *DashboardHandler) EstatisticasLogin(c *gin.Context) {
	res, err := h.usecase.EstatisticasLogin(c.Request.Context(), c.GetString(ContextUserID), queryInt(c, "days", 30))
	if err != nil {
		writeError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAcessoNegado):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Acesso negado", http.StatusForbidden)
	default:
		logger.L.Errorf("[dashboard][handler] unexpected error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
