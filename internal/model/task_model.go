package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TaskStatusOpen       = "OPEN"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusDone       = "DONE"
)

// Task is a consultant-assigned follow-up, either global or scoped to a
// set of companies. ReminderSent keeps the overdue digest at-most-once.
type Task struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title        string     `gorm:"type:varchar(200)" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	DueDate      *time.Time `json:"due_date"`
	Status       string     `gorm:"type:varchar(20);default:OPEN" json:"status"`
	Priority     string     `gorm:"type:varchar(10);default:MEDIUM" json:"priority"` // LOW, MEDIUM, HIGH
	IsGlobal     bool       `gorm:"default:false" json:"is_global"`
	Companies    []Company  `gorm:"many2many:task_companies" json:"companies"`
	ReminderSent bool       `gorm:"default:false" json:"reminder_sent"`
	CreatedBy    string     `gorm:"type:varchar(150)" json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
