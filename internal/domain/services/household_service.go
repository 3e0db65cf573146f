package services

import (
	"context"
	"fmt"
	"strings"

	"pdrims-http-service/internal/domain/models"
	"pdrims-http-service/internal/infrastructure/config"
	"pdrims-http-service/pkg/logger"

	"gorm.io/gorm"
)

// InterfaceHouseholdService defines the household ledger interface
type InterfaceHouseholdService interface {
	CreateHousehold(ctx context.Context, input HouseholdInput) (string, error)
	GetHousehold(ctx context.Context, id string) (*HouseholdView, error)
	UpdateHousehold(ctx context.Context, id string, input HouseholdInput) error
	ListHouseholds(ctx context.Context) ([]HouseholdView, error)
}

// HouseholdInput carries the mutable household fields of an intake or edit.
type HouseholdInput struct {
	HeadName      string        `json:"head_name" validate:"required,max=100"`
	Purok         string        `json:"purok" validate:"required,max=50"`
	DamageStatus  string        `json:"damage_status" validate:"max=20"`
	HeadAge       *int          `json:"head_age" validate:"omitempty,min=0,max=150"`
	ContactNumber string        `json:"contact_number" validate:"max=20"`
	FamilyMembers FamilyMembers `json:"family_members"`
	InitialNeeds  string        `json:"initial_needs"`
	OfficialName  string        `json:"official_name" validate:"max=100"`
}

func (in *HouseholdInput) normalize() {
	in.HeadName = strings.TrimSpace(in.HeadName)
	in.Purok = strings.TrimSpace(in.Purok)
	in.DamageStatus = strings.TrimSpace(in.DamageStatus)
	in.ContactNumber = strings.TrimSpace(in.ContactNumber)
	in.InitialNeeds = strings.TrimSpace(in.InitialNeeds)
	in.OfficialName = strings.TrimSpace(in.OfficialName)
}

// HouseholdView is a stored household with its family members decoded.
type HouseholdView struct {
	models.Household
	Members FamilyMembers `json:"familyMembers"`
	// MembersError is set when the stored blob could not be decoded; Members
	// is then empty.
	MembersError string                `json:"familyMembersError,omitempty"`
	DecodeErr    *DeserializationError `json:"-"`
}

// HouseholdService owns household records.
type HouseholdService struct {
	DB     *gorm.DB
	Config *config.Config
	Audit  InterfaceAuditService
	IDs    InterfaceIDGenerator
}

// NewHouseholdService creates a new household service
func NewHouseholdService(db *gorm.DB, cfg *config.Config, audit InterfaceAuditService, ids InterfaceIDGenerator) InterfaceHouseholdService {
	return &HouseholdService{
		DB:     db,
		Config: cfg,
		Audit:  audit,
		IDs:    ids,
	}
}

// 1 CreateHousehold stores a new household and returns its identifier.
func (s *HouseholdService) CreateHousehold(ctx context.Context, input HouseholdInput) (string, error) {
	input.normalize()
	if err := validateStruct(&input); err != nil {
		return "", err
	}
	blob, err := EncodeFamilyMembers(input.FamilyMembers)
	if err != nil {
		return "", fieldError("family_members", "must be a JSON array")
	}

	household := models.Household{
		ID:            s.IDs.NextID(),
		HeadName:      input.HeadName,
		Purok:         input.Purok,
		DamageStatus:  input.DamageStatus,
		HeadAge:       input.HeadAge,
		ContactNumber: input.ContactNumber,
		FamilyMembers: models.MembersBlob(blob),
		InitialNeeds:  input.InitialNeeds,
	}

	ctx, cancel := storageContext(ctx, queryTimeout(s.Config))
	defer cancel()
	if err := s.DB.WithContext(ctx).Create(&household).Error; err != nil {
		return "", storageError(ctx, "create household", err)
	}

	s.Audit.AppendAudit(officialOrDefault(input.OfficialName), "Added Household",
		fmt.Sprintf("ID: %s - %s", household.ID, household.HeadName))
	return household.ID, nil
}

// 2 GetHousehold reads one household.
func (s *HouseholdService) GetHousehold(ctx context.Context, id string) (*HouseholdView, error) {
	ctx, cancel := storageContext(ctx, queryTimeout(s.Config))
	defer cancel()

	var household models.Household
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&household).Error; err != nil {
		if isNotFound(err) {
			return nil, &NotFoundError{Entity: "household", ID: id}
		}
		return nil, storageError(ctx, "get household", err)
	}

	view := newHouseholdView(household)
	return &view, nil
}

// 3 UpdateHousehold overwrites every mutable field of an existing household.
// Nothing is written when the household does not exist.
func (s *HouseholdService) UpdateHousehold(ctx context.Context, id string, input HouseholdInput) error {
	input.normalize()
	if err := validateStruct(&input); err != nil {
		return err
	}
	blob, err := EncodeFamilyMembers(input.FamilyMembers)
	if err != nil {
		return fieldError("family_members", "must be a JSON array")
	}

	ctx, cancel := storageContext(ctx, queryTimeout(s.Config))
	defer cancel()

	var existing models.Household
	if err := s.DB.WithContext(ctx).Select("id").Where("id = ?", id).First(&existing).Error; err != nil {
		if isNotFound(err) {
			return &NotFoundError{Entity: "household", ID: id}
		}
		return storageError(ctx, "find household", err)
	}

	updates := map[string]interface{}{
		"head_name":      input.HeadName,
		"purok":          input.Purok,
		"damage_status":  input.DamageStatus,
		"head_age":       input.HeadAge,
		"contact_number": input.ContactNumber,
		"family_members": models.MembersBlob(blob),
		"initial_needs":  input.InitialNeeds,
	}
	if err := s.DB.WithContext(ctx).Model(&models.Household{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return storageError(ctx, "update household", err)
	}

	s.Audit.AppendAudit(officialOrDefault(input.OfficialName), "Updated Household",
		fmt.Sprintf("ID: %s - %s", id, input.HeadName))
	return nil
}

// 4 ListHouseholds returns every household in intake order. A record whose
// family member blob is corrupt is still listed, with an empty member list
// and its DecodeErr set.
func (s *HouseholdService) ListHouseholds(ctx context.Context) ([]HouseholdView, error) {
	ctx, cancel := storageContext(ctx, queryTimeout(s.Config))
	defer cancel()

	var households []models.Household
	if err := s.DB.WithContext(ctx).Order("created_at ASC, id ASC").Find(&households).Error; err != nil {
		return nil, storageError(ctx, "list households", err)
	}

	views := make([]HouseholdView, 0, len(households))
	for _, h := range households {
		views = append(views, newHouseholdView(h))
	}
	return views, nil
}

func newHouseholdView(h models.Household) HouseholdView {
	view := HouseholdView{Household: h}
	members, err := DecodeFamilyMembers(h.FamilyMembers)
	if err != nil {
		view.Members = FamilyMembers{}
		view.DecodeErr = &DeserializationError{HouseholdID: h.ID, Err: err}
		view.MembersError = "family member data is unreadable"
		logger.WithFields(map[string]interface{}{
			"household_id": h.ID,
			"error":        err.Error(),
		}).Warn("skipping corrupt family member data")
		return view
	}
	view.Members = members
	return view
}

func officialOrDefault(name string) string {
	if name == "" {
		return DefaultOfficialActor
	}
	return name
}
