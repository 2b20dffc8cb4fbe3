package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	IncidentStatusOpen    = "OPEN"
	IncidentStatusManaged = "IN_PROGRESS"
	IncidentStatusClosed  = "CLOSED"
)

// Incident is a GDPR data-breach record.
type Incident struct {
	ID                      uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID               uuid.UUID  `gorm:"type:uuid;index" json:"company_id"`
	Title                   string     `gorm:"type:varchar(200)" json:"title"`
	Description             string     `gorm:"type:text" json:"description"`
	DetectedAt              time.Time  `json:"detected_at"`
	Status                  string     `gorm:"type:varchar(20);default:OPEN" json:"status"`
	RiskAssessment          string     `gorm:"type:text" json:"risk_assessment"`
	AuthorityNotifyRequired bool       `gorm:"default:false" json:"authority_notify_required"`
	SubjectsNotifyRequired  bool       `gorm:"default:false" json:"subjects_notify_required"`
	NotificationDeadline    *time.Time `json:"notification_deadline"`
	CorrectiveActions       string     `gorm:"type:text" json:"corrective_actions"`
	ReportedBy              string     `gorm:"type:varchar(150)" json:"reported_by"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

// CSIRTReferent is the single NIS2 point of contact of a company.
type CSIRTReferent struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID        uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"company_id"`
	AppointedAt      time.Time `json:"appointed_at"`
	ContactName      string    `gorm:"type:varchar(100)" json:"contact_name"`
	ContactSurname   string    `gorm:"type:varchar(100)" json:"contact_surname"`
	ContactEmail     string    `gorm:"type:varchar(150)" json:"contact_email"`
	ContactPhone     string    `gorm:"type:varchar(20)" json:"contact_phone"`
	IPACode          string    `gorm:"type:varchar(100)" json:"ipa_code"`
	FiscalCode       string    `gorm:"type:varchar(16)" json:"fiscal_code"`
	Role             string    `gorm:"type:varchar(100)" json:"role"`
	SkillsDocumented bool      `gorm:"default:false" json:"skills_documented"`
	ExternalReason   string    `gorm:"type:text" json:"external_reason"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

const (
	NotificationStatusOpen       = "OPEN"
	NotificationStatusResponding = "RESPONDING"
	NotificationStatusNotified   = "NOTIFIED"
	NotificationStatusClosed     = "CLOSED"
)

// IncidentNotification is a NIS2 CSIRT incident notification record.
type IncidentNotification struct {
	ID                uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID         uuid.UUID  `gorm:"type:uuid;index" json:"company_id"`
	ReferentID        *uuid.UUID `gorm:"type:uuid" json:"referent_id"`
	Title             string     `gorm:"type:varchar(255)" json:"title"`
	OccurredAt        time.Time  `json:"occurred_at"`
	NotifiedAt        *time.Time `json:"notified_at"`
	Status            string     `gorm:"type:varchar(20);default:OPEN" json:"status"`
	DamageDescription string     `gorm:"type:text" json:"damage_description"`
	Category          string     `gorm:"type:varchar(50);default:MALWARE" json:"category"` // RANSOMWARE, DDOS, PHISHING, ACCESS_VIOLATION, MALWARE
	Impact            string     `gorm:"type:varchar(20);default:HIGH" json:"impact"`
	Severity          string     `gorm:"type:varchar(20);default:HIGH" json:"severity"`
	Playbook          string     `gorm:"type:varchar(50)" json:"playbook"`
	RiskAssessment    string     `gorm:"type:text" json:"risk_assessment"`
	CorrectiveActions string     `gorm:"type:text" json:"corrective_actions"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type NotificationAttachment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	NotificationID uuid.UUID `gorm:"type:uuid;index" json:"notification_id"`
	FileName       string    `gorm:"type:varchar(255)" json:"file_name"`
	Path           string    `gorm:"type:varchar(500)" json:"-"`
	Description    string    `gorm:"type:varchar(255)" json:"description"`
	UploadedBy     string    `gorm:"type:varchar(150)" json:"uploaded_by"`
	UploadedAt     time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}
