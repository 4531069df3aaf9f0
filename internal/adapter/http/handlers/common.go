package handlers

import (
	"net/http"
	"strconv"

	"vip_mudancas/internal/usecase"
	"vip_mudancas/pkg"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "user_id"

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Dados não fornecidos ou inválidos", http.StatusBadRequest)

func actorFrom(c *gin.Context) usecase.Actor {
	return usecase.Actor{
		UserID:    c.GetString(ContextUserID),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}
