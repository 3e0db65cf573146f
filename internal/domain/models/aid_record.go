package models

// AidRecord is one instance of relief assistance distributed to a household.
type AidRecord struct {
	BaseModel
	RecipientID     *string `gorm:"type:varchar(20);index" json:"recipient_id"` // nullable, cleared when the household goes away
	AidType         string  `gorm:"type:varchar(50);not null" json:"aid_type"`
	Quantity        string  `gorm:"type:varchar(50);not null" json:"quantity"`         // free text, unit-agnostic
	DateDistributed string  `gorm:"type:varchar(10);not null" json:"date_distributed"` // YYYY-MM-DD
	DistributedBy   string  `gorm:"type:varchar(100)" json:"distributed_by"`
	Notes           string  `gorm:"type:text" json:"notes"`

	Recipient *Household `gorm:"foreignKey:RecipientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}
