package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vip_mudancas/internal/adapter/http/handlers"
	"vip_mudancas/internal/infrastructure/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(tokens TokenParser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", Authenticate(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(handlers.ContextUserID))
	})
	return r
}

func TestAuthenticate(t *testing.T) {
	tm := security.NewTokenManager("test-secret", time.Hour)
	r := newAuthRouter(tm)

	token, err := tm.Issue("user-1")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "missing header", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc", status: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + token, status: http.StatusOK, body: "user-1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, w.Body.String())
			}
		})
	}

	t.Run("token signed with another secret", func(t *testing.T) {
		other, err := security.NewTokenManager("other-secret", time.Hour).Issue("user-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+other)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"An internal error occurred","code":"INTERNAL_ERROR"}`, w.Body.String())
}
