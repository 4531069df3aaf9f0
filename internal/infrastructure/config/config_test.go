package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, "orcamentos", cfg.DynamoDB.OrcamentosTable)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORS.Origins)
	assert.Equal(t, "00000000191", cfg.Admin.CPF)
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ORCAMENTOS_TABLE", "orcamentos_dev")
	t.Setenv("JWT_ACCESS_TOKEN_TTL", "0s")
	t.Setenv("CORS_ORIGINS", "https://app.vipmudancas.com.br , ")
	t.Setenv("DYNAMODB_AUTO_CREATE_TABLES", "false")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "orcamentos_dev", cfg.DynamoDB.OrcamentosTable)
	assert.Zero(t, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, []string{"https://app.vipmudancas.com.br"}, cfg.CORS.Origins)
	assert.False(t, cfg.DynamoDB.AutoCreateTables)
}

func TestNewConfig_Invalid(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := NewConfig()
	assert.Error(t, err)
}
