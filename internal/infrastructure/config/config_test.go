package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV_TYPE", "LOCAL")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "LOCAL", cfg.EnvType)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "auto", cfg.DBMigrationMode)
	assert.Equal(t, 5*time.Second, cfg.DBQueryTimeout)
	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "", cfg.GetRedisAddr())
}

func TestLoadConfigPrefixedKeysWin(t *testing.T) {
	t.Setenv("ENV_TYPE", "server")
	t.Setenv("DB_HOST", "shared-db")
	t.Setenv("SERVER_DB_HOST", "prod-db")
	t.Setenv("LOCAL_DB_HOST", "dev-db")
	t.Setenv("DB_NAME", "relief")
	t.Setenv("SERVER_DB_QUERY_TIMEOUT", "750ms")
	t.Setenv("REDIS_HOST", "cache")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "SERVER", cfg.EnvType)
	assert.Equal(t, "prod-db", cfg.DBHost)
	assert.Equal(t, "relief", cfg.DBName)
	assert.Equal(t, 750*time.Millisecond, cfg.DBQueryTimeout)
	assert.Equal(t, "cache:6379", cfg.GetRedisAddr())
}

func TestLoadConfigUnknownEnvTypeFallsBackToLocal(t *testing.T) {
	t.Setenv("ENV_TYPE", "staging")
	t.Setenv("LOCAL_SERVER_PORT", "8088")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "LOCAL", cfg.EnvType)
	assert.Equal(t, "8088", cfg.ServerPort)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	t.Setenv("ENV_TYPE", "LOCAL")
	t.Setenv("DB_DRIVER", "postgres")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "DB_DRIVER")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DBDriver:        "sqlite",
			DBMigrationMode: "auto",
			DBQueryTimeout:  time.Second,
			NodeID:          1,
			JWTSecretKey:    "secret",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "drop mode", mutate: func(c *Config) { c.DBMigrationMode = "drop" }},
		{name: "unknown migration mode", mutate: func(c *Config) { c.DBMigrationMode = "reset" }, wantErr: "DB_MIGRATION_MODE"},
		{name: "zero timeout", mutate: func(c *Config) { c.DBQueryTimeout = 0 }, wantErr: "DB_QUERY_TIMEOUT"},
		{name: "node too large", mutate: func(c *Config) { c.NodeID = 1024 }, wantErr: "NODE_ID"},
		{name: "missing secret", mutate: func(c *Config) { c.JWTSecretKey = "" }, wantErr: "JWT_SECRET_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{DBDriver: "sqlite", DBPath: "relief.db"}
	assert.Contains(t, cfg.GetDSN(), "file:relief.db?")
	assert.Contains(t, cfg.GetDSN(), "foreign_keys(1)")

	cfg = &Config{DBDriver: "mysql", DBUser: "app", DBPassword: "pw", DBHost: "db", DBPort: "3306", DBName: "pdrims"}
	assert.Equal(t, "app:pw@tcp(db:3306)/pdrims?charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true", cfg.GetDSN())
}
