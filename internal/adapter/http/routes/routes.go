package routes

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"vip_mudancas/internal/adapter/http/handlers"
	"vip_mudancas/internal/adapter/http/middleware"
	"vip_mudancas/internal/adapter/persistence/repository"
	"vip_mudancas/internal/infrastructure/config"
	"vip_mudancas/internal/infrastructure/database"
	"vip_mudancas/internal/infrastructure/logger"
	"vip_mudancas/internal/infrastructure/metrics"
	"vip_mudancas/internal/infrastructure/security"
	"vip_mudancas/internal/usecase"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/cors"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Orcamento *handlers.OrcamentoHandler
	Cliente   *handlers.ClienteHandler
	Dashboard *handlers.DashboardHandler
}

// Run wires the DynamoDB repositories, use cases and handlers, then serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Configuration) error {
	gin.SetMode(cfg.Server.GinMode)

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return err
	}
	if cfg.DynamoDB.AutoCreateTables {
		if err := database.EnsureTables(ctx, ddb, cfg.DynamoDB); err != nil {
			return err
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(registry, cfg.Metrics.Namespace)
	if err != nil {
		return err
	}

	tables := cfg.DynamoDB
	userRepo := repository.NewUserDynamoRepository(ddb, tables.UsersTable, tables.UniqueKeysTable)
	clienteRepo := repository.NewClienteDynamoRepository(ddb, tables.ClientesTable, tables.UniqueKeysTable)
	orcamentoRepo := repository.NewOrcamentoDynamoRepository(ddb, tables.OrcamentosTable, tables.UniqueKeysTable)
	activityRepo := repository.NewUserActivityDynamoRepository(ddb, tables.UserActivitiesTable)

	tokens := security.NewTokenManager(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)

	authUseCase := usecase.NewAuthUseCase(userRepo, activityRepo, tokens, m)
	orcamentoUseCase := usecase.NewOrcamentoUseCase(orcamentoRepo, userRepo, activityRepo, m)
	clienteUseCase := usecase.NewClienteUseCase(clienteRepo, activityRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(orcamentoRepo, clienteRepo, userRepo, activityRepo)

	if cfg.Admin.Seed {
		seeded, err := authUseCase.EnsureAdmin(ctx, usecase.AdminSeed{
			CPF:      cfg.Admin.CPF,
			Password: cfg.Admin.Password,
			Name:     cfg.Admin.Name,
			Email:    cfg.Admin.Email,
		})
		if err != nil {
			return errors.Wrap(err, "seed admin user")
		}
		if seeded {
			logger.L.Infof("[bootstrap] default admin user created")
		}
	}

	router := NewRouter(Handlers{
		Auth:      handlers.NewAuthHandler(authUseCase),
		Orcamento: handlers.NewOrcamentoHandler(orcamentoUseCase),
		Cliente:   handlers.NewClienteHandler(clienteUseCase),
		Dashboard: handlers.NewDashboardHandler(dashboardUseCase),
	}, tokens, m, registry)

	return serve(ctx, newServer(cfg, router))
}

// newServer binds handler to the configured port behind the CORS policy.
func newServer(cfg *config.Configuration, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           withCORS(handler, cfg.CORS.Origins),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(h Handlers, tokens middleware.TokenParser, m *metrics.Metrics, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, m)

	addSwaggerRoutes(router)
	addMetricsRoutes(router, gatherer)

	api := router.Group("/api")
	addHealthRoutes(api)
	addAuthRoutes(api, h.Auth, tokens)

	private := api.Group("", middleware.Authenticate(tokens))
	addOrcamentoRoutes(private, h.Orcamento)
	addClienteRoutes(private, h.Cliente)
	addDashboardRoutes(private, h.Dashboard)
	return router
}

func setMiddlewares(router *gin.Engine, m *metrics.Metrics) {
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(m.Middleware())
}

func withCORS(h http.Handler, origins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(h)
}

func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		logger.L.Infof("[http] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}

	logger.L.Infof("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
