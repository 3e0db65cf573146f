package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pdrims-http-service/internal/domain/models"
	"pdrims-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceAidRecordService defines the aid distribution ledger interface
type InterfaceAidRecordService interface {
	RecordAid(ctx context.Context, recipientID string, input AidInput) (uint, error)
	UpdateAid(ctx context.Context, id uint, input AidInput) error
	ListAid(ctx context.Context) ([]models.AidRecord, error)
}

// AidInput carries the mutable fields of an aid record.
type AidInput struct {
	AidType         string `json:"aid_type" validate:"required,max=50"`
	Quantity        string `json:"quantity" validate:"required,max=50"`
	DateDistributed string `json:"date_distributed" validate:"required,datetime=2006-01-02"`
	DistributedBy   string `json:"distributed_by" validate:"max=100"`
	Notes           string `json:"notes"`
	OfficialName    string `json:"official_name" validate:"max=100"`
}

func (in *AidInput) normalize() {
	in.AidType = strings.TrimSpace(in.AidType)
	in.Quantity = strings.TrimSpace(in.Quantity)
	in.DateDistributed = strings.TrimSpace(in.DateDistributed)
	in.DistributedBy = strings.TrimSpace(in.DistributedBy)
	in.Notes = strings.TrimSpace(in.Notes)
	in.OfficialName = strings.TrimSpace(in.OfficialName)
}

// AidRecordService owns aid distribution records.
type AidRecordService struct {
	DB     *gorm.DB
	Config *config.Config
	Audit  InterfaceAuditService
}

// NewAidRecordService creates a new aid record service
func NewAidRecordService(db *gorm.DB, cfg *config.Config, audit InterfaceAuditService) InterfaceAidRecordService {
	return &AidRecordService{
		DB:     db,
		Config: cfg,
		Audit:  audit,
	}
}

// 1 RecordAid stores a distribution to an existing household. An unknown
// recipient is rejected before anything is written.
func (s *AidRecordService) RecordAid(ctx context.Context, recipientID string, input AidInput) (uint, error) {
	recipientID = strings.TrimSpace(recipientID)
	input.normalize()

	fields, err := fieldErrors(&input)
	if err != nil {
		return 0, err
	}
	if recipientID == "" {
		if fields == nil {
			fields = map[string]string{}
		}
		fields["recipient_id"] = "is required"
	}
	if len(fields) > 0 {
		return 0, &ValidationError{Fields: fields}
	}

	ctx, cancel := storageContext(ctx, queryTimeout(s.Config))
	defer cancel()

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Household{}).Where("id = ?", recipientID).Count(&count).Error; err != nil {
		return 0, storageError(ctx, "check recipient", err)
	}
	if count == 0 {
		return 0, fieldError("recipient_id", "does not match any household")
	}

	record := models.AidRecord{
		RecipientID:     &recipientID,
		AidType:         input.AidType,
		Quantity:        input.Quantity,
		DateDistributed: input.DateDistributed,
		DistributedBy:   input.DistributedBy,
		Notes:           input.Notes,
	}
	if err := s.DB.WithContext(ctx).Create(&record).Error; err != nil {
		// The household may have gone away between the check and the insert.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return 0, fieldError("recipient_id", "does not match any household")
		}
		return 0, storageError(ctx, "record aid", err)
	}

	s.Audit.AppendAudit(officialOrDefault(input.OfficialName), "Distributed Aid",
		fmt.Sprintf("To: %s, Type: %s", recipientID, input.AidType))
	return record.ID, nil
}

// 2 UpdateAid overwrites the mutable fields of an aid record. The recipient
// is never changed.
func (s *AidRecordService) UpdateAid(ctx context.Context, id uint, input AidInput) error {
	input.normalize()
	if err := validateStruct(&input); err != nil {
		return err
	}

	ctx, cancel := storageContext(ctx, queryTimeout(s.Config))
	defer cancel()

	var existing models.AidRecord
	if err := s.DB.WithContext(ctx).Select("id").First(&existing, id).Error; err != nil {
		if isNotFound(err) {
			return &NotFoundError{Entity: "aid record", ID: strconv.FormatUint(uint64(id), 10)}
		}
		return storageError(ctx, "find aid record", err)
	}

	updates := map[string]interface{}{
		"aid_type":         input.AidType,
		"quantity":         input.Quantity,
		"date_distributed": input.DateDistributed,
		"distributed_by":   input.DistributedBy,
		"notes":            input.Notes,
	}
	if err := s.DB.WithContext(ctx).Model(&models.AidRecord{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return storageError(ctx, "update aid record", err)
	}

	s.Audit.AppendAudit(officialOrDefault(input.OfficialName), "Updated Aid Record",
		fmt.Sprintf("ID: %d", id))
	return nil
}

// 3 ListAid returns every aid record, newest first.
func (s *AidRecordService) ListAid(ctx context.Context) ([]models.AidRecord, error) {
	ctx, cancel := storageContext(ctx, queryTimeout(s.Config))
	defer cancel()

	records := []models.AidRecord{}
	if err := s.DB.WithContext(ctx).Order("id DESC").Find(&records).Error; err != nil {
		return nil, storageError(ctx, "list aid records", err)
	}
	return records, nil
}
