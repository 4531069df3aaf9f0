package handlers

import (
	"net/http"

	request "vip_mudancas/internal/adapter/http/dto/request"
	response "vip_mudancas/internal/adapter/http/dto/response"
	"vip_mudancas/internal/infrastructure/logger"
	"vip_mudancas/internal/usecase"
	"vip_mudancas/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary  Authenticate by CPF and password
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.LoginRequest true "credentials"
// @Success  200 {object} response.LoginResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.Login(c.Request.Context(), actorFrom(c), payload.CPF, payload.Password)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{
		Message:     "Login realizado com sucesso",
		AccessToken: res.AccessToken,
		User:        response.FromUser(res.User),
	})
}

// Register godoc
// @Summary  Register a collaborator
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.RegisterRequest true "new user"
// @Success  201 {object} map[string]string
// @Failure  409 {object} pkg.HTTPError
// @Router   /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), actorFrom(c), payload.ToInput())
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuário cadastrado com sucesso",
		"user_id": user.ID,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.usecase.Me(c.Request.Context(), c.GetString(ContextUserID))
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": response.FromUserDetail(user)})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context(), actorFrom(c)); err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout realizado com sucesso"})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var payload request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	if err := h.usecase.ChangePassword(c.Request.Context(), actorFrom(c), payload.CurrentPassword, payload.NewPassword); err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Senha alterada com sucesso"})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCampoObrigatorio):
		return pkg.NewDomainError("VALIDATION_ERROR", "Campos obrigatórios ausentes", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCPFInvalido):
		return pkg.NewDomainErrorSimple("INVALID_CPF", "CPF inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRoleInvalida):
		return pkg.NewDomainErrorSimple("INVALID_ROLE", "Perfil de acesso inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCredenciaisInvalidas):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "CPF ou senha incorretos", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUsuarioInativo):
		return pkg.NewDomainErrorSimple("INACTIVE_USER", "Usuário inativo", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSenhaAtualIncorreta):
		return pkg.NewDomainErrorSimple("WRONG_PASSWORD", "Senha atual incorreta", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrCPFJaCadastrado):
		return pkg.NewDomainErrorSimple("CPF_ALREADY_REGISTERED", "CPF já cadastrado", http.StatusConflict)
	case errors.Is(err, usecase.ErrUsuarioNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "Usuário não encontrado", http.StatusNotFound)
	default:
		logger.L.Errorf("[auth][handler] unexpected error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
