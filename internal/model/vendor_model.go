package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	VendorStatusPending   = "PENDING"
	VendorStatusInvited   = "INVITED"
	VendorStatusCompleted = "COMPLETED"
)

// Vendor is a third party assessed through the security questionnaire.
// AccessToken grants password-less access to the vendor portal.
type Vendor struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID    uuid.UUID `gorm:"type:uuid;index" json:"company_id"`
	BusinessName string    `gorm:"type:varchar(200)" json:"business_name"`
	ContactEmail string    `gorm:"type:varchar(150)" json:"contact_email"`
	AccessToken  uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"-"`
	Status       string    `gorm:"type:varchar(20);default:PENDING" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VendorQuestion is one question of the fixed multi-area bank. Area is one
// of scoring.Area's macro values; the two weights multiply independently.
type VendorQuestion struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Section        string  `gorm:"type:varchar(200)" json:"section"`
	Code           string  `gorm:"type:varchar(50)" json:"code"`
	Topic          string  `gorm:"type:varchar(200)" json:"topic"`
	Text           string  `gorm:"type:text" json:"text"`
	Area           string  `gorm:"type:varchar(20);index" json:"area"`
	TopicWeight    float64 `gorm:"default:1" json:"topic_weight"`
	QuestionWeight float64 `gorm:"default:1" json:"question_weight"`
	ISO27001       string  `gorm:"type:varchar(100)" json:"iso_27001"`
	FNCS           string  `gorm:"type:varchar(100)" json:"fncs"`
}

// VendorAnswer holds at most one value per (vendor, question).
// Value is 0, 0.5 or 1.
type VendorAnswer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	VendorID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_vendor_question" json:"vendor_id"`
	QuestionID uint      `gorm:"uniqueIndex:idx_vendor_question" json:"question_id"`
	Value      float64   `json:"value"`
	Note       string    `gorm:"type:text" json:"note"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// VendorAttachment is a certificate uploaded from the portal. ExtractedText
// holds the PDF text so consultants can preview without downloading.
type VendorAttachment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	VendorID      uuid.UUID `gorm:"type:uuid;index" json:"vendor_id"`
	FileName      string    `gorm:"type:varchar(255)" json:"file_name"`
	Path          string    `gorm:"type:varchar(500)" json:"-"`
	Description   string    `gorm:"type:varchar(255)" json:"description"`
	ExtractedText string    `gorm:"type:text" json:"extracted_text"`
	UploadedAt    time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}
