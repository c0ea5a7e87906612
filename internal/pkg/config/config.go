package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is loaded once at process start and treated as immutable for the
// process lifetime. Both binaries read from the same struct; each uses the
// sections it needs.
type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Gateway GatewayConfig
	Backend BackendConfig
	Token   TokenConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

// GatewayConfig configures the public HTTP binary and its backend channel.
type GatewayConfig struct {
	Port            string        `env:"GATEWAY_PORT,        default=8080"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS"`
	UserServiceAddr string        `env:"USER_SERVICE_ADDR,   default=localhost:9090"`
	CallTimeout     time.Duration `env:"RPC_CALL_TIMEOUT,    default=30s"`
	ConnectTimeout  time.Duration `env:"RPC_CONNECT_TIMEOUT, default=5s"`
}

// BackendConfig configures the private gRPC binary.
type BackendConfig struct {
	Port string `env:"USER_SERVICE_PORT, default=9090"`
}

// TokenConfig configures the credential codec. An empty secret falls back
// to the compiled-in development value, which is insecure by definition.
type TokenConfig struct {
	Secret   string        `env:"JWT_SECRET"`
	TTL      time.Duration `env:"JWT_TTL,      default=720h"`
	Audience string        `env:"JWT_AUDIENCE, default=account-gateway"`
	Issuer   string        `env:"JWT_ISSUER,   default=account-system"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=account_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
