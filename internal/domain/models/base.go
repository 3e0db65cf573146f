package models

import "time"

// BaseModel carries the sequential primary key and bookkeeping timestamps
// shared by most tables. Household does not embed it: its key is a string.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
