// Package testutil builds throwaway databases and configs for package tests.
package testutil

import (
	"testing"
	"time"

	"pdrims-http-service/internal/infrastructure/config"
	"pdrims-http-service/internal/infrastructure/database"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config returns a valid sqlite config with short timeouts.
func Config() *config.Config {
	return &config.Config{
		EnvType:              "LOCAL",
		DBDriver:             "sqlite",
		DBMigrationMode:      "auto",
		DBQueryTimeout:       2 * time.Second,
		ServerPort:           "0",
		CORSOrigin:           "*",
		RateLimitRPS:         1000,
		RateLimitBurst:       1000,
		LogLevel:             "error",
		RedisPort:            "6379",
		JWTSecretKey:         "test-secret",
		JWTTTL:               time.Hour,
		NodeID:               1,
		DefaultAdminEmail:    "admin@pdrims.gov",
		DefaultAdminPassword: "admin123",
	}
}

// NewDB opens a private in-memory sqlite database with foreign keys on and
// the full schema migrated. It is closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	pool, err := database.Open(sqlite.Open(dsn), gormlogger.Silent)
	require.NoError(t, err)

	// the in-memory database lives as long as its single connection
	pool.MaxOpenConns = 1
	pool.MaxIdleConns = 1
	pool.ConnMaxIdleTime = 0
	pool.ConnMaxLifetime = 0
	require.NoError(t, pool.ConfigurePool())
	require.NoError(t, database.Migrate(pool.GetDB(), "auto"))

	t.Cleanup(func() {
		_ = pool.Close()
	})
	return pool.GetDB()
}
