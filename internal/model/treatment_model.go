package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type DataCategory struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100)" json:"name"`
}

type DataSubject struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100)" json:"name"`
}

// Treatment is one entry of the privacy-treatment register. RiskScore,
// RiskLevel and DPIARequired are written back by the risk checklist
// submission; the Embedding feeds similarity search for AI suggestions.
type Treatment struct {
	ID                 uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID          uuid.UUID       `gorm:"type:uuid;index" json:"company_id"`
	Name               string          `gorm:"type:varchar(200)" json:"name"`
	RoleType           string          `gorm:"type:varchar(20);default:CONTROLLER" json:"role_type"` // "CONTROLLER" or "PROCESSOR"
	OnBehalfOf         string          `gorm:"type:varchar(200)" json:"on_behalf_of"`
	Purpose            string          `gorm:"type:text" json:"purpose"`
	DataCategories     []DataCategory  `gorm:"many2many:treatment_data_categories" json:"data_categories"`
	DataSubjects       []DataSubject   `gorm:"many2many:treatment_data_subjects" json:"data_subjects"`
	InternalRecipients string          `gorm:"type:text" json:"internal_recipients"`
	ExternalRecipients string          `gorm:"type:text" json:"external_recipients"`
	RetentionPeriod    string          `gorm:"type:varchar(200)" json:"retention_period"`
	SecurityMeasures   string          `gorm:"type:text" json:"security_measures"`
	RiskLevel          string          `gorm:"type:varchar(20);default:LOW" json:"risk_level"`
	RiskScore          int             `gorm:"default:0" json:"risk_score"`
	DPIARequired       bool            `gorm:"default:false" json:"dpia_required"`
	Embedding          pgvector.Vector `gorm:"type:vector(3072)" json:"-"`
	CreatedBy          string          `gorm:"type:varchar(150)" json:"created_by"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ChecklistQuestion is a weighted yes/no question of the risk checklist.
type ChecklistQuestion struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Text       string `gorm:"type:text" json:"text"`
	RiskWeight int    `gorm:"default:1" json:"risk_weight"`
	Order      int    `gorm:"column:sort_order;default:0" json:"order"`
}

// ChecklistAnswer holds at most one boolean answer per (treatment, question).
type ChecklistAnswer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TreatmentID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_treatment_question" json:"treatment_id"`
	QuestionID  uint      `gorm:"uniqueIndex:idx_treatment_question" json:"question_id"`
	Answer      bool      `gorm:"default:false" json:"answer"` // true = risk factor present
	UpdatedAt   time.Time `json:"updated_at"`
}
