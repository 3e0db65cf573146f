package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Household is a disaster-affected family unit, the unit of aid eligibility.
type Household struct {
	ID            string      `gorm:"primaryKey;type:varchar(20)" json:"id"`
	HeadName      string      `gorm:"type:varchar(100);not null" json:"head_name"`
	Purok         string      `gorm:"type:varchar(50);not null;index" json:"purok"`
	DamageStatus  string      `gorm:"type:varchar(20)" json:"damage_status"`
	HeadAge       *int        `json:"head_age"`
	ContactNumber string      `gorm:"type:varchar(20)" json:"contact_number"`
	FamilyMembers MembersBlob `gorm:"not null" json:"-"` // JSON array text, shape not enforced
	InitialNeeds  string      `gorm:"type:text" json:"initial_needs"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// MembersBlob is the stored family member JSON. It is written like a
// datatypes.JSON column but scanned without parsing, so an unreadable blob
// only surfaces when the service decodes it.
type MembersBlob datatypes.JSON

// Scan copies the raw column value.
func (b *MembersBlob) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*b = nil
	case []byte:
		*b = append(MembersBlob(nil), v...)
	case string:
		*b = MembersBlob(v)
	default:
		return fmt.Errorf("unsupported family_members column value %T", value)
	}
	return nil
}

func (b MembersBlob) Value() (driver.Value, error) {
	return datatypes.JSON(b).Value()
}

func (MembersBlob) GormDataType() string {
	return datatypes.JSON{}.GormDataType()
}

func (MembersBlob) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return datatypes.JSON{}.GormDBDataType(db, field)
}
