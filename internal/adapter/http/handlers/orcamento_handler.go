package handlers

import (
	"io"
	"net/http"
	"time"

	request "vip_mudancas/internal/adapter/http/dto/request"
	response "vip_mudancas/internal/adapter/http/dto/response"
	"vip_mudancas/internal/infrastructure/logger"
	"vip_mudancas/internal/usecase"
	"vip_mudancas/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// OrcamentoHandler serves /api/orcamentos. Every route requires an
// authenticated user.
type OrcamentoHandler struct {
	usecase usecase.IOrcamentoUseCase
	now     func() time.Time
}

func NewOrcamentoHandler(uc usecase.IOrcamentoUseCase) *OrcamentoHandler {
	return &OrcamentoHandler{usecase: uc, now: time.Now}
}

// List godoc
// @Summary  List quotes, newest first
// @Tags     orcamentos
// @Produce  json
// @Param    page     query int    false "page"     default(1)
// @Param    per_page query int    false "per page" default(20)
// @Param    status   query string false "pendente, aprovado or rejeitado"
// @Security BearerAuth
// @Router   /orcamentos [get]
func (h *OrcamentoHandler) List(c *gin.Context) {
	q := usecase.ListOrcamentosQuery{
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 20),
		Status:  c.Query("status"),
	}.Normalize()

	list, err := h.usecase.List(c.Request.Context(), q)
	if err != nil {
		writeError(c, mapOrcamentoError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orcamentos": response.FromOrcamentos(list, h.now()),
		"page":       q.Page,
		"per_page":   q.PerPage,
	})
}

func (h *OrcamentoHandler) Get(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapOrcamentoError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"orcamento": response.FromOrcamento(o, h.now())})
}

// Create godoc
// @Summary  Create a quote for the authenticated salesperson
// @Tags     orcamentos
// @Accept   json
// @Produce  json
// @Param    body body request.OrcamentoRequest true "quote"
// @Success  201 {object} map[string]any
// @Failure  400 {object} pkg.HTTPError
// @Security BearerAuth
// @Router   /orcamentos [post]
func (h *OrcamentoHandler) Create(c *gin.Context) {
	var payload request.OrcamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	o, err := h.usecase.Create(c.Request.Context(), actorFrom(c), payload.ToInput())
	if err != nil {
		writeError(c, mapOrcamentoError(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Orçamento criado com sucesso",
		"orcamento": response.FromOrcamento(o, h.now()),
	})
}

func (h *OrcamentoHandler) Update(c *gin.Context) {
	var payload request.OrcamentoPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	o, err := h.usecase.Update(c.Request.Context(), actorFrom(c), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapOrcamentoError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Orçamento atualizado com sucesso",
		"orcamento": response.FromOrcamento(o, h.now()),
	})
}

func (h *OrcamentoHandler) Delete(c *gin.Context) {
	if _, err := h.usecase.Delete(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		writeError(c, mapOrcamentoError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Orçamento deletado com sucesso"})
}

func (h *OrcamentoHandler) Approve(c *gin.Context) {
	o, err := h.usecase.Approve(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, mapOrcamentoError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Orçamento aprovado com sucesso",
		"orcamento": response.FromOrcamento(o, h.now()),
	})
}

// Reject accepts an empty body; the reason then defaults to "".
func (h *OrcamentoHandler) Reject(c *gin.Context) {
	// An empty body, chunked or not, rejects without a motivo.
	var payload request.RejeitarRequest
	if c.Request.Body != nil {
		if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
			writeError(c, errInvalidPayload)
			return
		}
	}

	o, err := h.usecase.Reject(c.Request.Context(), actorFrom(c), c.Param("id"), payload.Motivo)
	if err != nil {
		writeError(c, mapOrcamentoError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Orçamento rejeitado",
		"orcamento": response.FromOrcamento(o, h.now()),
	})
}

func (h *OrcamentoHandler) ListByVendedor(c *gin.Context) {
	list, err := h.usecase.ListByVendedor(c.Request.Context(), c.Param("vendedor_id"))
	if err != nil {
		writeError(c, mapOrcamentoError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"orcamentos": response.FromOrcamentos(list, h.now())})
}

func (h *OrcamentoHandler) ListByCliente(c *gin.Context) {
	list, err := h.usecase.ListByCliente(c.Request.Context(), c.Param("cliente_id"))
	if err != nil {
		writeError(c, mapOrcamentoError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"orcamentos": response.FromOrcamentos(list, h.now())})
}

func (h *OrcamentoHandler) Statistics(c *gin.Context) {
	st, err := h.usecase.Statistics(c.Request.Context())
	if err != nil {
		writeError(c, mapOrcamentoError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"estatisticas": st})
}

func mapOrcamentoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCampoObrigatorio):
		return pkg.NewDomainError("VALIDATION_ERROR", "Campo obrigatório ausente", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTipoMudancaInvalido):
		return pkg.NewDomainErrorSimple("INVALID_TIPO_MUDANCA", "Tipo de mudança inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStatusInvalido):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPerfilClienteInvalido):
		return pkg.NewDomainErrorSimple("INVALID_PERFIL_CLIENTE", "Perfil do cliente inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrcamentoID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "ID inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSemPermissao):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Sem permissão para deletar este orçamento", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrcamentoNotFound):
		return pkg.NewDomainErrorSimple("ORCAMENTO_NOT_FOUND", "Orçamento não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUsuarioNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "Usuário não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNumeroOrcamentoIndisponivel):
		return pkg.NewDomainErrorSimple("NUMERO_ORCAMENTO_CONFLICT", "Não foi possível gerar o número do orçamento", http.StatusConflict)
	default:
		logger.L.Errorf("[orcamento][handler] unexpected error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
