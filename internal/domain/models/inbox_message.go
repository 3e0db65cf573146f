package models

// InboxMessage is an inquiry sent to the barangay office by a resident.
type InboxMessage struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Category string `gorm:"type:varchar(50)" json:"category"`
	Sender   string `gorm:"type:varchar(100)" json:"sender"`
	Subject  string `gorm:"type:varchar(255)" json:"subject"`
	Message  string `gorm:"type:text" json:"message"`
	DateSent string `gorm:"type:varchar(10)" json:"date_sent"`
	IsRead   bool   `gorm:"default:false" json:"is_read"`
}
