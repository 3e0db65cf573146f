package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pdrims-http-service/internal/domain/models"
	"pdrims-http-service/internal/infrastructure/config"
	"pdrims-http-service/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InterfaceUserService defines the account service interface
type InterfaceUserService interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	ListUsers(ctx context.Context) ([]UserView, error)
	CreateUser(ctx context.Context, input CreateUserInput) (uint, error)
	ApproveUser(ctx context.Context, id uint, actor string) error
	DeleteUser(ctx context.Context, id uint, actor string) error
	EnsureAdminExists(ctx context.Context) error
}

// UserView is a user as listed to admins.
type UserView struct {
	models.User
	Name string `json:"name"`
}

// CreateUserInput is an admin-created account.
type CreateUserInput struct {
	Surname       string      `json:"surname" validate:"required,max=50"`
	FirstName     string      `json:"first_name" validate:"required,max=50"`
	MiddleInitial string      `json:"middle_initial" validate:"max=5"`
	Email         string      `json:"email" validate:"required,email,max=100"`
	Password      string      `json:"password" validate:"required,min=6,max=72"`
	Role          models.Role `json:"role" validate:"omitempty,oneof=admin official viewer"`
	Position      string      `json:"position" validate:"max=100"`
	ContactNumber string      `json:"contact_number" validate:"max=20"`
	Age           *int        `json:"age" validate:"omitempty,min=0,max=150"`
	Purok         string      `json:"purok" validate:"max=50"`
	HouseholdHead string      `json:"household_head" validate:"max=100"`
	IsHead        bool        `json:"is_head"`
	// Verified defaults to true for admin-created accounts.
	Verified *bool  `json:"verified"`
	Actor    string `json:"-"`
}

// UserService manages accounts.
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
	Audit  InterfaceAuditService
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB, cfg *config.Config, audit InterfaceAuditService) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
		Audit:  audit,
	}
}

// 1 Authenticate checks credentials and returns the user
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	ctx, cancel := storageContext(ctx, queryTimeout(s.Config))
	defer cancel()

	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, storageError(ctx, "find user by email", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Verified {
		return nil, ErrAccountPending
	}
	return &user, nil
}

// 2 GetUserByID loads one user
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	ctx, cancel := storageContext(ctx, queryTimeout(s.Config))
	defer cancel()

	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		if isNotFound(err) {
			return nil, &NotFoundError{Entity: "user", ID: strconv.FormatUint(uint64(id), 10)}
		}
		return nil, storageError(ctx, "get user", err)
	}
	return &user, nil
}

// 3 ListUsers returns every account, newest first
func (s *UserService) ListUsers(ctx context.Context) ([]UserView, error) {
	ctx, cancel := storageContext(ctx, queryTimeout(s.Config))
	defer cancel()

	var users []models.User
	if err := s.DB.WithContext(ctx).Order("id DESC").Find(&users).Error; err != nil {
		return nil, storageError(ctx, "list users", err)
	}

	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, UserView{User: users[i], Name: users[i].DisplayName()})
	}
	return views, nil
}

// 4 CreateUser adds an account on behalf of an admin
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (uint, error) {
	input.Surname = strings.TrimSpace(input.Surname)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.MiddleInitial = strings.TrimSpace(input.MiddleInitial)
	input.Email = normalizeEmail(input.Email)
	if err := validateStruct(&input); err != nil {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = models.RoleViewer
	}
	verified := input.Verified == nil || *input.Verified
	status := models.UserStatusPending
	if verified {
		status = models.UserStatusActive
	}

	user := models.User{
		Surname:       input.Surname,
		FirstName:     input.FirstName,
		MiddleInitial: input.MiddleInitial,
		Email:         input.Email,
		PasswordHash:  string(hash),
		Role:          role,
		Position:      strings.TrimSpace(input.Position),
		ContactNumber: strings.TrimSpace(input.ContactNumber),
		Age:           input.Age,
		Purok:         strings.TrimSpace(input.Purok),
		HouseholdHead: strings.TrimSpace(input.HouseholdHead),
		IsHead:        input.IsHead,
		Status:        status,
		Verified:      verified,
	}

	ctx, cancel := storageContext(ctx, queryTimeout(s.Config))
	defer cancel()

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return 0, storageError(ctx, "check user email", err)
	}
	if count > 0 {
		return 0, fmt.Errorf("email %s already registered: %w", user.Email, ErrConflict)
	}

	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("email %s already registered: %w", user.Email, ErrConflict)
		}
		return 0, storageError(ctx, "create user", err)
	}

	actor := input.Actor
	if actor == "" {
		actor = SystemActor
	}
	s.Audit.AppendAudit(actor, "Created User", "User: "+user.Email)
	return user.ID, nil
}

// 5 ApproveUser activates a pending account
func (s *UserService) ApproveUser(ctx context.Context, id uint, actor string) error {
	ctx, cancel := storageContext(ctx, queryTimeout(s.Config))
	defer cancel()

	var user models.User
	if err := s.DB.WithContext(ctx).Select("id").First(&user, id).Error; err != nil {
		if isNotFound(err) {
			return &NotFoundError{Entity: "user", ID: strconv.FormatUint(uint64(id), 10)}
		}
		return storageError(ctx, "find user", err)
	}

	updates := map[string]interface{}{
		"status":   models.UserStatusActive,
		"verified": true,
	}
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return storageError(ctx, "approve user", err)
	}

	s.Audit.AppendAudit(adminOrDefault(actor), "Approved User", fmt.Sprintf("User ID: %d", id))
	return nil
}

// 6 DeleteUser removes an account. The last admin cannot be removed.
func (s *UserService) DeleteUser(ctx context.Context, id uint, actor string) error {
	ctx, cancel := storageContext(ctx, queryTimeout(s.Config))
	defer cancel()

	var user models.User
	if err := s.DB.WithContext(ctx).Select("id", "role").First(&user, id).Error; err != nil {
		if isNotFound(err) {
			return &NotFoundError{Entity: "user", ID: strconv.FormatUint(uint64(id), 10)}
		}
		return storageError(ctx, "find user", err)
	}

	if user.Role == models.RoleAdmin {
		var admins int64
		if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error; err != nil {
			return storageError(ctx, "count admins", err)
		}
		if admins <= 1 {
			return fmt.Errorf("cannot delete the last admin: %w", ErrConflict)
		}
	}

	if err := s.DB.WithContext(ctx).Delete(&models.User{}, id).Error; err != nil {
		return storageError(ctx, "delete user", err)
	}

	s.Audit.AppendAudit(adminOrDefault(actor), "Deleted User", fmt.Sprintf("User ID: %d", id))
	return nil
}

// 7 EnsureAdminExists seeds the default admin account on an empty install
func (s *UserService) EnsureAdminExists(ctx context.Context) error {
	ctx, cancel := storageContext(ctx, queryTimeout(s.Config))
	defer cancel()

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return storageError(ctx, "count admins", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.Config.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	admin := models.User{
		Surname:      "Administrator",
		FirstName:    "System",
		Email:        normalizeEmail(s.Config.DefaultAdminEmail),
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Position:     "Administrator",
		Status:       models.UserStatusActive,
		Verified:     true,
	}
	if err := s.DB.WithContext(ctx).Create(&admin).Error; err != nil {
		return storageError(ctx, "create default admin", err)
	}

	logger.Info("Created default admin account: %s", admin.Email)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func adminOrDefault(name string) string {
	if name == "" {
		return DefaultAdminActor
	}
	return name
}
