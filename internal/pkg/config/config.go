package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, secrets)
// - default: Values common across all environments (timeouts, standard settings)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Store   StoreConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// BackendConfig points at the remote catalog/users/boletas service.
type BackendConfig struct {
	BaseURL string        `envconfig:"BACKEND_BASE_URL" default:"http://localhost:8080"`
	Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
}

// StoreConfig selects the session snapshot store backend.
type StoreConfig struct {
	Driver        string `envconfig:"STORE_DRIVER" default:"memory"` // memory | redis | postgres
	RedisAddr     string `envconfig:"STORE_REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"STORE_REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"STORE_REDIS_DB" default:"0"`
	PGHost        string `envconfig:"STORE_PG_HOST" default:"localhost"`
	PGPort        string `envconfig:"STORE_PG_PORT" default:"5432"`
	PGUser        string `envconfig:"STORE_PG_USER" default:"postgres"`
	PGPassword    string `envconfig:"STORE_PG_PASSWORD" default:""`
	PGDBName      string `envconfig:"STORE_PG_NAME" default:"balancestore"`
	PGSSLMode     string `envconfig:"STORE_PG_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

func (c *StoreConfig) BuildPostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDBName, c.PGSSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:8080",
			Timeout: 2 * time.Second,
		},
		Store: StoreConfig{
			Driver: "memory",
		},
		Log: LogConfig{
			Level: "error",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
	}
}
