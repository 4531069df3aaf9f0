package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vip_mudancas/internal/adapter/http/handlers"
	"vip_mudancas/internal/adapter/http/handlers/mocks"
	"vip_mudancas/internal/domain/entities"
	"vip_mudancas/internal/infrastructure/config"
	"vip_mudancas/internal/infrastructure/metrics"
	"vip_mudancas/internal/infrastructure/security"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	router     http.Handler
	tokens     *security.TokenManager
	orcamentos *mocks.MockIOrcamentoUseCase
	auth       *mocks.MockIAuthUseCase
}

func newRouterFixture(t *testing.T) routerFixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg, "test")
	require.NoError(t, err)

	f := routerFixture{
		tokens:     security.NewTokenManager("routes-secret", time.Hour),
		orcamentos: mocks.NewMockIOrcamentoUseCase(ctrl),
		auth:       mocks.NewMockIAuthUseCase(ctrl),
	}
	engine := NewRouter(Handlers{
		Auth:      handlers.NewAuthHandler(f.auth),
		Orcamento: handlers.NewOrcamentoHandler(f.orcamentos),
		Cliente:   handlers.NewClienteHandler(mocks.NewMockIClienteUseCase(ctrl)),
		Dashboard: handlers.NewDashboardHandler(mocks.NewMockIDashboardUseCase(ctrl)),
	}, f.tokens, m, reg)
	f.router = withCORS(engine, []string{"http://localhost:3000"})
	return f
}

func (f routerFixture) get(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRouter(t *testing.T) {
	f := newRouterFixture(t)
	token, err := f.tokens.Issue("u1")
	require.NoError(t, err)

	t.Run("health is public", func(t *testing.T) {
		w := f.get(t, "/api/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("quotes require a token", func(t *testing.T) {
		w := f.get(t, "/api/orcamentos", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me requires a token", func(t *testing.T) {
		w := f.get(t, "/api/auth/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("estatisticas resolves before id", func(t *testing.T) {
		f.orcamentos.EXPECT().Statistics(gomock.Any()).Return(entities.NewOrcamentoEstatisticas(0, 0, 0, 0, 0), nil)
		w := f.get(t, "/api/orcamentos/estatisticas", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"taxa_conversao":0`)
	})

	t.Run("metrics exposes request counter", func(t *testing.T) {
		w := f.get(t, "/metrics", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), "test_http_requests_total"), w.Body.String())
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/orcamentos", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestNewServer(t *testing.T) {
	cfg := &config.Configuration{
		Server: config.ServerConfig{Port: 9090},
		CORS:   config.CORSConfig{Origins: []string{"https://app.vipmudancas.com.br"}},
	}
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := newServer(cfg, inner)
	assert.Equal(t, ":9090", srv.Addr)
	assert.Equal(t, 5*time.Second, srv.ReadHeaderTimeout)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://app.vipmudancas.com.br")
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.vipmudancas.com.br", w.Header().Get("Access-Control-Allow-Origin"))
}
