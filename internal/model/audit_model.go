package model

import (
	"time"

	"github.com/google/uuid"
)

type AuditCategory struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"type:varchar(100)" json:"name"`
	Order int    `gorm:"column:sort_order;default:0" json:"order"`
}

type AuditQuestion struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CategoryID uint   `gorm:"index" json:"category_id"`
	Text       string `gorm:"type:text" json:"text"`
	Order      int    `gorm:"column:sort_order;default:0" json:"order"`
}

// AuditSession is one run of the recurring compliance checklist. Archived
// sessions are frozen: answer writes are rejected.
type AuditSession struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;index" json:"company_id"`
	CreatedBy string    `gorm:"type:varchar(150)" json:"created_by"`
	Completed bool      `gorm:"default:false" json:"completed"`
	Archived  bool      `gorm:"default:false" json:"archived"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuditAnswer holds at most one boolean answer per (session, question).
type AuditAnswer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SessionID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_session_question" json:"session_id"`
	QuestionID uint      `gorm:"uniqueIndex:idx_session_question" json:"question_id"`
	Answer     bool      `gorm:"default:false" json:"answer"`
	Note       string    `gorm:"type:text" json:"note"`
	UpdatedAt  time.Time `json:"updated_at"`
}
