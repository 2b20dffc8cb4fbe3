package repository

import (
	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db}
}

func (r *CourseRepository) GetCourses() ([]model.Course, error) {
	var courses []model.Course
	err := r.db.Order("name").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindCourseByID(id uuid.UUID) (*model.Course, error) {
	var course model.Course
	err := r.db.First(&course, "id = ?", id).Error
	return &course, err
}

func (r *CourseRepository) GetModules(courseID uuid.UUID) ([]model.CourseModule, error) {
	var modules []model.CourseModule
	err := r.db.Where("course_id = ?", courseID).Order("sort_order").Find(&modules).Error
	return modules, err
}

func (r *CourseRepository) CreateEnrollment(enrollment *model.Enrollment) error {
	return r.db.Create(enrollment).Error
}

func (r *CourseRepository) FindEnrollmentByID(id uuid.UUID) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.First(&enrollment, "id = ?", id).Error
	return &enrollment, err
}

func (r *CourseRepository) GetEnrollmentsByCompany(companyID uuid.UUID) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.Where("company_id = ?", companyID).Order("enrolled_at DESC").Find(&enrollments).Error
	return enrollments, err
}

// UpsertProgress creates or replaces the record keyed by (enrollment, module).
func (r *CourseRepository) UpsertProgress(progress *model.ModuleProgress) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "enrollment_id"}, {Name: "module_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at"}),
	}).Create(progress).Error
}

func (r *CourseRepository) GetProgress(enrollmentID uuid.UUID) ([]model.ModuleProgress, error) {
	var progress []model.ModuleProgress
	err := r.db.Where("enrollment_id = ?", enrollmentID).Find(&progress).Error
	return progress, err
}

// CreateCertificateIfAbsent issues at most one certificate per enrollment.
func (r *CourseRepository) CreateCertificateIfAbsent(certificate *model.Certificate) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "enrollment_id"}},
		DoNothing: true,
	}).Create(certificate).Error
}

func (r *CourseRepository) FindCertificate(enrollmentID uuid.UUID) (*model.Certificate, error) {
	var certificate model.Certificate
	err := r.db.First(&certificate, "enrollment_id = ?", enrollmentID).Error
	return &certificate, err
}
