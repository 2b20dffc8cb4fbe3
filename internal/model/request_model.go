package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RequestTypeAccess        = "ACCESS"
	RequestTypeRectification = "RECTIFICATION"
	RequestTypeErasure       = "ERASURE"
	RequestTypeObjection     = "OBJECTION"
	RequestTypePortability   = "PORTABILITY"

	RequestStatusReceived   = "RECEIVED"
	RequestStatusInProgress = "IN_PROGRESS"
	RequestStatusFulfilled  = "FULFILLED"
	RequestStatusRejected   = "REJECTED"
)

// DataSubjectRequest tracks a GDPR right-of-the-interested request.
type DataSubjectRequest struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID        uuid.UUID  `gorm:"type:uuid;index" json:"company_id"`
	ReceivedAt       time.Time  `gorm:"autoCreateTime" json:"received_at"`
	Type             string     `gorm:"type:varchar(20)" json:"type"`
	RequesterName    string     `gorm:"type:varchar(200)" json:"requester_name"`
	RequesterEmail   string     `gorm:"type:varchar(150)" json:"requester_email"`
	Text             string     `gorm:"type:text" json:"text"`
	Status           string     `gorm:"type:varchar(20);default:RECEIVED" json:"status"`
	InternalNotes    string     `gorm:"type:text" json:"internal_notes"`
	ResponseDeadline *time.Time `json:"response_deadline"`
	HandledBy        string     `gorm:"type:varchar(150)" json:"handled_by"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
