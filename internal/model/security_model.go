package model

import (
	"time"

	"github.com/google/uuid"
)

// SecurityControl is one row of the security checklist catalog, importable
// from Excel with the columns control_id, area, descrizione,
// supporto_verifica, riferimento_iso.
type SecurityControl struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	ControlID       string `gorm:"type:varchar(50);uniqueIndex" json:"control_id"`
	Area            string `gorm:"type:varchar(255);index" json:"area"`
	Description     string `gorm:"type:text" json:"descrizione"`
	VerificationAid string `gorm:"type:text" json:"supporto_verifica"`
	ISOReference    string `gorm:"type:varchar(255)" json:"riferimento_iso"`
}

type SecurityAudit struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;index" json:"company_id"`
	Completed bool      `gorm:"default:false" json:"completed"`
	CreatedBy string    `gorm:"type:varchar(150)" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SecurityResponse holds at most one outcome per (audit, control). Outcome
// is one of scoring.Outcome's values; "NO" until the auditor records one.
type SecurityResponse struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AuditID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_audit_control" json:"audit_id"`
	ControlID uint      `gorm:"uniqueIndex:idx_audit_control" json:"control_id"`
	Control   SecurityControl `gorm:"foreignKey:ControlID" json:"control"`
	Outcome   string    `gorm:"type:varchar(20);default:NO" json:"outcome"`
	Note      string    `gorm:"type:text" json:"note"`
	UpdatedAt time.Time `json:"updated_at"`
}
