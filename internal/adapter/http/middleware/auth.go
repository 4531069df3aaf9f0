package middleware

import (
	"net/http"
	"strings"

	"vip_mudancas/internal/adapter/http/handlers"
	"vip_mudancas/internal/infrastructure/logger"
	"vip_mudancas/pkg"

	"github.com/gin-gonic/gin"
)

// TokenParser validates an access token and returns its user id.
type TokenParser interface {
	Parse(token string) (string, error)
}

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Token de acesso ausente", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Token inválido ou expirado", http.StatusUnauthorized)
)

// Authenticate requires a Bearer token and stores the user id under
// handlers.ContextUserID.
func Authenticate(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		userID, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil || userID == "" {
			logger.L.Debugf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(handlers.ContextUserID, userID)
		c.Next()
	}
}
