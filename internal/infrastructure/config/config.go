package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	AWS      AWSConfig      `mapstructure:"aws" validate:"required"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb" validate:"required"`
	JWT      JWTConfig      `mapstructure:"jwt" validate:"required"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Logging  LoggingConfig  `mapstructure:"logging" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	GinMode string `mapstructure:"gin_mode" validate:"oneof=debug release test"`
}

type AWSConfig struct {
	Region          string `mapstructure:"region" validate:"required"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type DynamoDBConfig struct {
	Endpoint            string `mapstructure:"endpoint"`
	AutoCreateTables    bool   `mapstructure:"auto_create_tables"`
	UsersTable          string `mapstructure:"users_table" validate:"required"`
	ClientesTable       string `mapstructure:"clientes_table" validate:"required"`
	OrcamentosTable     string `mapstructure:"orcamentos_table" validate:"required"`
	UserActivitiesTable string `mapstructure:"user_activities_table" validate:"required"`
	UniqueKeysTable     string `mapstructure:"unique_keys_table" validate:"required"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key" validate:"required"`
	// AccessTokenTTL of zero issues tokens without expiry.
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl" validate:"min=0"`
}

type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

type AdminConfig struct {
	Seed     bool   `mapstructure:"seed"`
	CPF      string `mapstructure:"cpf"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	Email    string `mapstructure:"email"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
}

// envBindings maps config keys to the environment variables they are read from.
var envBindings = map[string]string{
	"server.port":                    "PORT",
	"server.gin_mode":                "GIN_MODE",
	"aws.region":                     "AWS_REGION",
	"aws.access_key_id":              "AWS_ACCESS_KEY_ID",
	"aws.secret_access_key":          "AWS_SECRET_ACCESS_KEY",
	"dynamodb.endpoint":              "DYNAMODB_ENDPOINT",
	"dynamodb.auto_create_tables":    "DYNAMODB_AUTO_CREATE_TABLES",
	"dynamodb.users_table":           "USERS_TABLE",
	"dynamodb.clientes_table":        "CLIENTES_TABLE",
	"dynamodb.orcamentos_table":      "ORCAMENTOS_TABLE",
	"dynamodb.user_activities_table": "USER_ACTIVITIES_TABLE",
	"dynamodb.unique_keys_table":     "UNIQUE_KEYS_TABLE",
	"jwt.secret_key":                 "JWT_SECRET_KEY",
	"jwt.access_token_ttl":           "JWT_ACCESS_TOKEN_TTL",
	"cors.origins":                   "CORS_ORIGINS",
	"admin.seed":                     "ADMIN_SEED",
	"admin.cpf":                      "ADMIN_CPF",
	"admin.password":                 "ADMIN_PASSWORD",
	"admin.name":                     "ADMIN_NAME",
	"admin.email":                    "ADMIN_EMAIL",
	"logging.level":                  "LOG_LEVEL",
	"metrics.namespace":              "METRICS_NAMESPACE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.gin_mode", "debug")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("dynamodb.auto_create_tables", true)
	v.SetDefault("dynamodb.users_table", "users")
	v.SetDefault("dynamodb.clientes_table", "clientes")
	v.SetDefault("dynamodb.orcamentos_table", "orcamentos")
	v.SetDefault("dynamodb.user_activities_table", "user_activities")
	v.SetDefault("dynamodb.unique_keys_table", "unique_keys")
	v.SetDefault("jwt.secret_key", "vip-mudancas-secret-key-2024")
	v.SetDefault("jwt.access_token_ttl", 24*time.Hour)
	v.SetDefault("cors.origins", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("admin.seed", true)
	v.SetDefault("admin.cpf", "00000000191")
	v.SetDefault("admin.password", "123456")
	v.SetDefault("admin.name", "Administrador VIP")
	v.SetDefault("admin.email", "admin@vipmudancas.com.br")
	v.SetDefault("logging.level", "info")
	v.SetDefault("metrics.namespace", "vip_mudancas")
}

// NewConfig reads the configuration from the environment (a .env file is
// loaded beforehand by main) on top of local-development defaults.
func NewConfig() (*Configuration, error) {
	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.Wrapf(err, "bind env %s", env)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	cfg.CORS.Origins = splitList(v.GetString("cors.origins"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
