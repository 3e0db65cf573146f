package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config stores all configuration of the application.
//
// Every key is read as <ENV_TYPE>_<KEY> first (LOCAL_DB_HOST, SERVER_DB_HOST)
// and falls back to the bare key (DB_HOST).
type Config struct {
	// Environment type, LOCAL or SERVER
	EnvType string `ignored:"true"`

	// Database
	DBDriver        string        `envconfig:"DB_DRIVER" default:"mysql"` // mysql or sqlite
	DBHost          string        `envconfig:"DB_HOST" default:"localhost"`
	DBUser          string        `envconfig:"DB_USER" default:"root"`
	DBPassword      string        `envconfig:"DB_PASSWORD"`
	DBName          string        `envconfig:"DB_NAME" default:"pdrims"`
	DBPort          string        `envconfig:"DB_PORT" default:"3306"`
	DBPath          string        `envconfig:"DB_PATH" default:"pdrims.db"` // sqlite only
	DBMigrationMode string        `envconfig:"DB_MIGRATION_MODE" default:"auto"`
	DBQueryTimeout  time.Duration `envconfig:"DB_QUERY_TIMEOUT" default:"5s"`
	DBMaxOpenConns  int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	DBMaxIdleConns  int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`

	// Server
	ServerPort     string  `envconfig:"SERVER_PORT" default:"3000"`
	CORSOrigin     string  `envconfig:"CORS_ORIGIN" default:"*"`
	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
	LogLevel       string  `envconfig:"LOG_LEVEL" default:"info"`

	// Redis, optional: an empty host keeps token revocation in memory
	RedisHost     string `envconfig:"REDIS_HOST"`
	RedisPort     string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// JWT Authentication
	JWTSecretKey string        `envconfig:"JWT_SECRET_KEY" default:"pdrims-secret-key-change-in-production"`
	JWTTTL       time.Duration `envconfig:"JWT_TTL" default:"24h"`

	// Snowflake node number of this instance, 0-1023
	NodeID int64 `envconfig:"NODE_ID" default:"1"`

	// Admin
	DefaultAdminEmail    string `envconfig:"DEFAULT_ADMIN_EMAIL" default:"admin@pdrims.gov"`
	DefaultAdminPassword string `envconfig:"DEFAULT_ADMIN_PASSWORD" default:"admin123"`
}

// LoadConfig loads config from environment variables based on ENV_TYPE
func LoadConfig() (*Config, error) {
	envType := strings.ToUpper(getEnv("ENV_TYPE", "LOCAL"))
	if envType != "LOCAL" && envType != "SERVER" {
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		envType = "LOCAL"
	}

	cfg := &Config{EnvType: envType}
	if err := envconfig.Process(envType, cfg); err != nil {
		return nil, fmt.Errorf("load %s config: %w", envType, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.DBMigrationMode {
	case "auto", "drop":
	default:
		return fmt.Errorf("unsupported DB_MIGRATION_MODE %q", c.DBMigrationMode)
	}
	if c.DBQueryTimeout <= 0 {
		return fmt.Errorf("DB_QUERY_TIMEOUT must be positive")
	}
	if c.NodeID < 0 || c.NodeID > 1023 {
		return fmt.Errorf("NODE_ID must be between 0 and 1023")
	}
	if c.JWTSecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	if c.DBDriver == "sqlite" {
		return "file:" + c.DBPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true"
}

// GetRedisAddr returns the Redis address, or "" when Redis is not configured.
func (c *Config) GetRedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
