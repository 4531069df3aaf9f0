package routes

import (
	"net/http"

	"vip_mudancas/internal/adapter/http/handlers"
	"vip_mudancas/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathAuth       = "/auth"
	PathOrcamentos = "/orcamentos"
	PathClientes   = "/clientes"
	PathDashboard  = "/dashboard"
)

func addSwaggerRoutes(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func addMetricsRoutes(router *gin.Engine, gatherer prometheus.Gatherer) {
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

func addHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "VIP Mudanças API funcionando"})
	})
}

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler, tokens middleware.TokenParser) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		authenticated := auth.Group("", middleware.Authenticate(tokens))
		authenticated.GET("/me", h.Me)
		authenticated.POST("/logout", h.Logout)
		authenticated.POST("/change-password", h.ChangePassword)
	}
}

func addOrcamentoRoutes(rg *gin.RouterGroup, h *handlers.OrcamentoHandler) {
	orcamentos := rg.Group(PathOrcamentos)
	{
		orcamentos.GET("", h.List)
		orcamentos.POST("", h.Create)
		orcamentos.GET("/estatisticas", h.Statistics)
		orcamentos.GET("/vendedor/:vendedor_id", h.ListByVendedor)
		orcamentos.GET("/cliente/:cliente_id", h.ListByCliente)
		orcamentos.GET("/:id", h.Get)
		orcamentos.PUT("/:id", h.Update)
		orcamentos.DELETE("/:id", h.Delete)
		orcamentos.POST("/:id/aprovar", h.Approve)
		orcamentos.POST("/:id/rejeitar", h.Reject)
	}
}

func addClienteRoutes(rg *gin.RouterGroup, h *handlers.ClienteHandler) {
	clientes := rg.Group(PathClientes)
	{
		clientes.GET("", h.List)
		clientes.POST("", h.Create)
		clientes.GET("/:id", h.Get)
		clientes.PUT("/:id", h.Update)
		clientes.PUT("/:id/status", h.UpdateStatus)
		clientes.DELETE("/:id", h.Delete)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/metricas", h.Metricas)
		dashboard.GET("/resumo-modulos", h.ResumoModulos)
		dashboard.GET("/atividades-recentes", h.AtividadesRecentes)
		dashboard.GET("/calendario", h.Calendario)
		dashboard.GET("/notificacoes", h.Notificacoes)
		dashboard.GET("/tempo-uso-colaboradores", h.TempoUsoColaboradores)
		dashboard.GET("/estatisticas-login", h.EstatisticasLogin)
	}
}
