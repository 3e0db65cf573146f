package services

import (
	"context"

	"pdrims-http-service/internal/domain/models"
	"pdrims-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceInboxService defines the resident inquiry inbox interface
type InterfaceInboxService interface {
	ListInbox(ctx context.Context) ([]models.InboxMessage, error)
}

// InboxService reads resident inquiries.
type InboxService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewInboxService creates a new inbox service
func NewInboxService(db *gorm.DB, cfg *config.Config) InterfaceInboxService {
	return &InboxService{DB: db, Config: cfg}
}

// ListInbox returns every message, newest first
func (s *InboxService) ListInbox(ctx context.Context) ([]models.InboxMessage, error) {
	ctx, cancel := storageContext(ctx, queryTimeout(s.Config))
	defer cancel()

	messages := []models.InboxMessage{}
	if err := s.DB.WithContext(ctx).Order("id DESC").Find(&messages).Error; err != nil {
		return nil, storageError(ctx, "list inbox", err)
	}
	return messages, nil
}
