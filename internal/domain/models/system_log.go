package models

import (
	"time"
)

// SystemLog is one append-only audit entry: who did what to which target.
type SystemLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Actor     string    `gorm:"column:user;type:varchar(100);not null" json:"user"`
	Action    string    `gorm:"type:varchar(100);not null" json:"action"`
	Target    string    `gorm:"type:varchar(255)" json:"target"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}
