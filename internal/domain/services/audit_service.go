package services

import (
	"context"
	"time"

	"pdrims-http-service/internal/domain/models"
	"pdrims-http-service/internal/infrastructure/config"
	"pdrims-http-service/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// MaxLogEntries caps every audit log listing.
const MaxLogEntries = 100

// Default actors used when a caller does not name one.
const (
	DefaultOfficialActor = "Official"
	DefaultAdminActor    = "Admin"
	SystemActor          = "System"
)

// InterfaceAuditService defines the audit trail service interface
type InterfaceAuditService interface {
	AppendAudit(actor, action, target string)
	ListLogs(ctx context.Context, limit int) ([]models.SystemLog, error)
}

// AuditService writes and reads the system_logs table.
type AuditService struct {
	DB       *gorm.DB
	Config   *config.Config
	failures prometheus.Counter
}

// NewAuditService creates the audit service. failures may be nil.
func NewAuditService(db *gorm.DB, cfg *config.Config, failures prometheus.Counter) InterfaceAuditService {
	return &AuditService{
		DB:       db,
		Config:   cfg,
		failures: failures,
	}
}

// 1 AppendAudit records one audit entry. It never fails the caller: the write
// runs on its own bounded context, and a failure is logged and counted only.
func (s *AuditService) AppendAudit(actor, action, target string) {
	if actor == "" {
		actor = SystemActor
	}
	entry := models.SystemLog{
		Actor:     actor,
		Action:    action,
		Target:    target,
		Timestamp: time.Now(),
	}

	ctx, cancel := storageContext(context.Background(), queryTimeout(s.Config))
	defer cancel()

	if err := s.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		if s.failures != nil {
			s.failures.Inc()
		}
		logger.WithFields(map[string]interface{}{
			"actor":  actor,
			"action": action,
			"target": target,
			"error":  err.Error(),
		}).Error("audit write failed")
	}
}

// 2 ListLogs returns up to limit entries, newest first. limit is clamped to
// 1..MaxLogEntries; zero or negative means MaxLogEntries.
func (s *AuditService) ListLogs(ctx context.Context, limit int) ([]models.SystemLog, error) {
	if limit <= 0 || limit > MaxLogEntries {
		limit = MaxLogEntries
	}

	ctx, cancel := storageContext(ctx, queryTimeout(s.Config))
	defer cancel()

	logs := []models.SystemLog{}
	if err := s.DB.WithContext(ctx).Order("id DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, storageError(ctx, "list logs", err)
	}
	return logs, nil
}
