package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReportStatusReceived = "RECEIVED"
	ReportStatusInReview = "IN_REVIEW"
	ReportStatusClosed   = "CLOSED"
)

// WhistleblowingReport is an anonymous intake record. TicketCode is the
// only handle the reporter keeps to check the status later.
type WhistleblowingReport struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID       uuid.UUID `gorm:"type:uuid;index" json:"company_id"`
	TicketCode      string    `gorm:"type:varchar(36);uniqueIndex" json:"ticket_code"`
	Category        string    `gorm:"type:varchar(100)" json:"category"`
	Subject         string    `gorm:"type:varchar(200)" json:"subject"`
	Description     string    `gorm:"type:text" json:"description"`
	ReporterName    string    `gorm:"type:varchar(200);default:Anonymous" json:"reporter_name"`
	ContactEmail    string    `gorm:"type:varchar(150)" json:"contact_email"`
	Status          string    `gorm:"type:varchar(20);default:RECEIVED" json:"status"`
	ConsultantReply string    `gorm:"type:text" json:"consultant_reply"`
	SubmittedAt     time.Time `gorm:"autoCreateTime" json:"submitted_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type WhistleblowingAttachment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	ReportID uuid.UUID `gorm:"type:uuid;index" json:"report_id"`
	FileName string    `gorm:"type:varchar(255)" json:"file_name"`
	Path     string    `gorm:"type:varchar(500)" json:"-"`
}

// WhistleblowingConfig activates the intake channel for a company.
type WhistleblowingConfig struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CompanyID   uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"company_id"`
	PackageName string    `gorm:"type:varchar(100);default:'Standard Whistleblowing Package'" json:"package_name"`
	Active      bool      `gorm:"default:true" json:"active"`
	ActivatedAt time.Time `gorm:"autoCreateTime" json:"activated_at"`
}
