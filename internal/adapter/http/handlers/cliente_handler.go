package handlers

import (
	"net/http"

	request "vip_mudancas/internal/adapter/http/dto/request"
	"vip_mudancas/internal/infrastructure/logger"
	"vip_mudancas/internal/usecase"
	"vip_mudancas/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type ClienteHandler struct {
	usecase usecase.IClienteUseCase
}

func NewClienteHandler(uc usecase.IClienteUseCase) *ClienteHandler {
	return &ClienteHandler{usecase: uc}
}

func (h *ClienteHandler) List(c *gin.Context) {
	q := usecase.ListClientesQuery{
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 20),
		Status:  c.Query("status"),
		Query:   c.Query("q"),
	}.Normalize()

	list, err := h.usecase.List(c.Request.Context(), q)
	if err != nil {
		writeError(c, mapClienteError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"clientes": list,
		"page":     q.Page,
		"per_page": q.PerPage,
	})
}

func (h *ClienteHandler) Get(c *gin.Context) {
	cliente, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapClienteError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"cliente": cliente})
}

func (h *ClienteHandler) Create(c *gin.Context) {
	var payload request.ClienteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	cliente, err := h.usecase.Create(c.Request.Context(), actorFrom(c), payload.ToInput())
	if err != nil {
		writeError(c, mapClienteError(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Cliente cadastrado com sucesso",
		"cliente": cliente,
	})
}

func (h *ClienteHandler) Update(c *gin.Context) {
	var payload request.ClientePatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	cliente, err := h.usecase.Update(c.Request.Context(), actorFrom(c), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapClienteError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Cliente atualizado com sucesso",
		"cliente": cliente,
	})
}

func (h *ClienteHandler) UpdateStatus(c *gin.Context) {
	var payload request.ClienteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	cliente, err := h.usecase.UpdateStatus(c.Request.Context(), actorFrom(c), c.Param("id"), payload.Status, payload.Justificativa)
	if err != nil {
		writeError(c, mapClienteError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Status atualizado com sucesso",
		"cliente": cliente,
	})
}

// Delete deactivates the client.
func (h *ClienteHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		writeError(c, mapClienteError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cliente desativado com sucesso"})
}

func mapClienteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCampoObrigatorio):
		return pkg.NewDomainError("VALIDATION_ERROR", "Campo obrigatório ausente", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPerfilInvalido):
		return pkg.NewDomainErrorSimple("INVALID_PERFIL", "Perfil inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStatusClienteVazio):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status é obrigatório", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClienteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "ID inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCPFCNPJJaCadastrado):
		return pkg.NewDomainErrorSimple("CPF_CNPJ_ALREADY_REGISTERED", "CPF/CNPJ já cadastrado", http.StatusConflict)
	case errors.Is(err, usecase.ErrClienteNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente não encontrado", http.StatusNotFound)
	default:
		logger.L.Errorf("[cliente][handler] unexpected error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
