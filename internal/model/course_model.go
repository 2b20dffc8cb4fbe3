package model

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(200)" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type CourseModule struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;index" json:"course_id"`
	Title    string    `gorm:"type:varchar(200)" json:"title"`
	Order    int       `gorm:"column:sort_order;default:0" json:"order"`
}

// Enrollment ties a student to a course. Students are identified by email;
// account management lives outside this service.
type Enrollment struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID    uuid.UUID `gorm:"type:uuid;index" json:"company_id"`
	CourseID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_student_course" json:"course_id"`
	StudentEmail string    `gorm:"type:varchar(150);uniqueIndex:idx_student_course" json:"student_email"`
	StudentName  string    `gorm:"type:varchar(200)" json:"student_name"`
	EnrolledAt   time.Time `gorm:"autoCreateTime" json:"enrolled_at"`
}

// ModuleProgress holds at most one record per (enrollment, module).
type ModuleProgress struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	EnrollmentID uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_enrollment_module" json:"enrollment_id"`
	ModuleID     uint       `gorm:"uniqueIndex:idx_enrollment_module" json:"module_id"`
	Completed    bool       `gorm:"default:false" json:"completed"`
	CompletedAt  *time.Time `json:"completed_at"`
}

// Certificate is issued once an enrollment reaches 100% completion.
type Certificate struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EnrollmentID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"enrollment_id"`
	IssuedAt     time.Time `gorm:"autoCreateTime" json:"issued_at"`
}
