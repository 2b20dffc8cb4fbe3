package model

import (
	"time"

	"github.com/google/uuid"
)

type DocumentCategory struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100)" json:"name"`
}

// DocumentTemplate is a consultant-provided blank the companies start from.
type DocumentTemplate struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CategoryID  uint   `gorm:"index" json:"category_id"`
	Name        string `gorm:"type:varchar(200)" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Path        string `gorm:"type:varchar(500)" json:"-"`
}

type CompanyDocument struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID  uuid.UUID `gorm:"type:uuid;index" json:"company_id"`
	CategoryID *uint     `json:"category_id"`
	TemplateID *uint     `json:"template_id"`
	Name       string    `gorm:"type:varchar(200)" json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

// DocumentVersion is one uploaded revision of a company document.
type DocumentVersion struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	DocumentID uuid.UUID `gorm:"type:uuid;index" json:"document_id"`
	FileName   string    `gorm:"type:varchar(255)" json:"file_name"`
	Path       string    `gorm:"type:varchar(500)" json:"-"`
	Note       string    `gorm:"type:varchar(200)" json:"note"`
	UploadedBy string    `gorm:"type:varchar(150)" json:"uploaded_by"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}
