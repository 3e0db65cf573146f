package container

import (
	"context"
	"sync"
	"time"

	"pdrims-http-service/internal/domain/services"
	"pdrims-http-service/internal/infrastructure/config"
	"pdrims-http-service/internal/infrastructure/metrics"
	"pdrims-http-service/pkg/logger"

	"gorm.io/gorm"
)

// ServiceContainer wires every service once at startup
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// Base services
	tokenStore services.InterfaceTokenStore
	jwtService services.InterfaceJWTService

	// Relief ledger
	auditService     services.InterfaceAuditService
	householdService services.InterfaceHouseholdService
	aidRecordService services.InterfaceAidRecordService

	// Accounts and inbox
	userService  services.InterfaceUserService
	inboxService services.InterfaceInboxService

	mu sync.RWMutex
}

// NewServiceContainer creates the service container. ids may be nil, in
// which case a snowflake generator for cfg.NodeID is built.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, ids services.InterfaceIDGenerator) (*ServiceContainer, error) {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	if ids == nil {
		generator, err := services.NewSnowflakeIDGenerator(cfg.NodeID)
		if err != nil {
			return nil, err
		}
		ids = generator
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices(ids)
	return container, nil
}

// initializeServices builds all services
func (c *ServiceContainer) initializeServices(ids services.InterfaceIDGenerator) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tokenStore = services.NewTokenStore(c.config)
	if redisStore, ok := c.tokenStore.(*services.RedisService); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisStore.Ping(ctx); err != nil {
			logger.Warning("Redis ping failed: %v, token revocation checks will fail until it is reachable", err)
		}
	}
	c.jwtService = services.NewJWTService(c.config, c.tokenStore)

	c.auditService = services.NewAuditService(c.db, c.config, metrics.AuditWriteFailures)
	c.householdService = services.NewHouseholdService(c.db, c.config, c.auditService, ids)
	c.aidRecordService = services.NewAidRecordService(c.db, c.config, c.auditService)

	c.userService = services.NewUserService(c.db, c.config, c.auditService)
	c.inboxService = services.NewInboxService(c.db, c.config)
}

// GetService returns the named service, or nil
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "token_store":
		return c.tokenStore
	case "audit":
		return c.auditService
	case "household":
		return c.householdService
	case "aid_record":
		return c.aidRecordService
	case "user":
		return c.userService
	case "inbox":
		return c.inboxService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
