package models

import "strings"

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOfficial Role = "official"
	RoleViewer   Role = "viewer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOfficial, RoleViewer:
		return true
	}
	return false
}

// User account status values.
const (
	UserStatusPending = "Pending"
	UserStatusActive  = "Active"
)

// User represents staff and beneficiary accounts.
type User struct {
	BaseModel
	Surname       string `gorm:"type:varchar(50);not null" json:"surname"`
	FirstName     string `gorm:"type:varchar(50);not null" json:"first_name"`
	MiddleInitial string `gorm:"type:varchar(5)" json:"middle_initial"`
	Email         string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash  string `gorm:"type:varchar(100);not null" json:"-"` // never exposed in JSON
	Role          Role   `gorm:"type:varchar(20);not null;default:'viewer'" json:"role"`
	Position      string `gorm:"type:varchar(100)" json:"position"`
	ContactNumber string `gorm:"type:varchar(20)" json:"contact_number"`
	Age           *int   `json:"age"`
	Purok         string `gorm:"type:varchar(50)" json:"purok"`
	HouseholdHead string `gorm:"type:varchar(100)" json:"household_head"`
	IsHead        bool   `gorm:"default:false" json:"is_head"`
	Status        string `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	Verified      bool   `gorm:"default:false" json:"verified"`
}

// DisplayName renders "Surname, First M." the way the frontend shows users.
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.Surname + ", " + u.FirstName + " " + u.MiddleInitial)
}
