package middleware

import (
	"net/http"

	"vip_mudancas/internal/infrastructure/logger"
	"vip_mudancas/pkg"

	"github.com/gin-gonic/gin"
)

func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.L.Errorw("[http][middleware] recovered from panic",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"panic", recovered,
		)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}
