package database

import (
	"context"
	"fmt"
	"time"

	"pdrims-http-service/internal/infrastructure/config"
	"pdrims-http-service/pkg/logger"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectionPool owns the database handle for the lifetime of the process.
type ConnectionPool struct {
	DB              *gorm.DB
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// NewConnectionPool opens the database selected by cfg.DBDriver and
// verifies it answers a ping.
func NewConnectionPool(cfg *config.Config) (*ConnectionPool, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.GetDSN())
	default:
		dialector = mysql.Open(cfg.GetDSN())
	}

	pool, err := Open(dialector, gormlogger.Warn)
	if err != nil {
		return nil, err
	}
	pool.MaxOpenConns = cfg.DBMaxOpenConns
	pool.MaxIdleConns = cfg.DBMaxIdleConns
	if cfg.DBDriver == "sqlite" {
		// sqlite serializes writers anyway; one connection avoids SQLITE_BUSY
		pool.MaxOpenConns = 1
		pool.MaxIdleConns = 1
	}
	if err := pool.ConfigurePool(); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Open wraps an arbitrary dialector. Tests use it with in-memory sqlite and
// sqlmock connections.
func Open(dialector gorm.Dialector, logLevel gormlogger.LogLevel) (*ConnectionPool, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &ConnectionPool{
		DB:              db,
		MaxIdleConns:    5,
		MaxOpenConns:    10,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
		PingTimeout:     5 * time.Second,
	}, nil
}

// ConfigurePool applies the pool limits and pings the database.
func (p *ConnectionPool) ConfigurePool() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(p.MaxIdleConns)
	sqlDB.SetMaxOpenConns(p.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(p.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(p.ConnMaxIdleTime)

	if err := p.HealthCheck(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	logger.Info("database pool configured: max_idle=%d max_open=%d", p.MaxIdleConns, p.MaxOpenConns)
	return nil
}

// Stats reports connection pool counters.
func (p *ConnectionPool) Stats() (map[string]interface{}, error) {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return nil, err
	}

	stats := sqlDB.Stats()
	return map[string]interface{}{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration":        stats.WaitDuration.String(),
	}, nil
}

// Close releases every connection.
func (p *ConnectionPool) Close() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck pings the database within PingTimeout.
func (p *ConnectionPool) HealthCheck() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}

	timeout := p.PingTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// GetDB returns the gorm handle.
func (p *ConnectionPool) GetDB() *gorm.DB {
	return p.DB
}
