package model

import (
	"time"

	"github.com/google/uuid"
)

// Company is the tenant every other record is scoped to.
type Company struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(200)" json:"name"`
	VATNumber    string    `gorm:"type:varchar(20)" json:"vat_number"`
	Domain       string    `gorm:"type:varchar(100)" json:"domain"` // used for breach exposure lookups
	ContactEmail string    `gorm:"type:varchar(150)" json:"contact_email"`
	Sector       string    `gorm:"type:varchar(100)" json:"sector"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c *Company) TableName() string {
	return "companies"
}
