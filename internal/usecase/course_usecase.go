package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/repository"
	"github.com/hubcompliance/compliance-hub/internal/scoring"
)

type CourseUsecase struct {
	courseRepo *repository.CourseRepository
}

func NewCourseUsecase(courseRepo *repository.CourseRepository) *CourseUsecase {
	return &CourseUsecase{courseRepo: courseRepo}
}

// EnrollmentProgress is the per-student completion summary.
type EnrollmentProgress struct {
	EnrollmentID     uuid.UUID `json:"enrollment_id"`
	CompletedModules int       `json:"completed_modules"`
	TotalModules     int       `json:"total_modules"`
	Percentage       float64   `json:"percentage"`
	Certified        bool      `json:"certified"`
}

func (uc *CourseUsecase) ListCourses() ([]model.Course, error) {
	return uc.courseRepo.GetCourses()
}

func (uc *CourseUsecase) GetCourse(id uuid.UUID) (*model.Course, []model.CourseModule, error) {
	course, err := uc.courseRepo.FindCourseByID(id)
	if err != nil {
		return nil, nil, err
	}
	modules, err := uc.courseRepo.GetModules(id)
	if err != nil {
		return nil, nil, err
	}
	return course, modules, nil
}

func (uc *CourseUsecase) Enroll(enrollment *model.Enrollment) error {
	return uc.courseRepo.CreateEnrollment(enrollment)
}

func (uc *CourseUsecase) ListEnrollments(companyID uuid.UUID) ([]model.Enrollment, error) {
	return uc.courseRepo.GetEnrollmentsByCompany(companyID)
}

// CompleteModule marks one module done and issues the certificate when the
// enrollment reaches full completion.
func (uc *CourseUsecase) CompleteModule(enrollmentID uuid.UUID, moduleID uint) (*EnrollmentProgress, error) {
	enrollment, err := uc.courseRepo.FindEnrollmentByID(enrollmentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := uc.courseRepo.UpsertProgress(&model.ModuleProgress{
		EnrollmentID: enrollmentID,
		ModuleID:     moduleID,
		Completed:    true,
		CompletedAt:  &now,
	}); err != nil {
		return nil, err
	}

	progress, err := uc.Progress(enrollment.ID)
	if err != nil {
		return nil, err
	}

	if progress.Percentage >= 100 {
		if err := uc.courseRepo.CreateCertificateIfAbsent(&model.Certificate{
			EnrollmentID: enrollmentID,
		}); err != nil {
			return nil, err
		}
		progress.Certified = true
	}
	return progress, nil
}

// Progress computes the completion percentage of an enrollment.
func (uc *CourseUsecase) Progress(enrollmentID uuid.UUID) (*EnrollmentProgress, error) {
	enrollment, err := uc.courseRepo.FindEnrollmentByID(enrollmentID)
	if err != nil {
		return nil, err
	}
	modules, err := uc.courseRepo.GetModules(enrollment.CourseID)
	if err != nil {
		return nil, err
	}
	records, err := uc.courseRepo.GetProgress(enrollmentID)
	if err != nil {
		return nil, err
	}

	completed := map[uint]bool{}
	for _, p := range records {
		if p.Completed {
			completed[p.ModuleID] = true
		}
	}

	values := make([]bool, 0, len(modules))
	done := 0
	for _, m := range modules {
		values = append(values, completed[m.ID])
		if completed[m.ID] {
			done++
		}
	}

	progress := &EnrollmentProgress{
		EnrollmentID:     enrollmentID,
		CompletedModules: done,
		TotalModules:     len(modules),
		Percentage:       scoring.CompletionRateBool(values),
	}
	if _, err := uc.courseRepo.FindCertificate(enrollmentID); err == nil {
		progress.Certified = true
	}
	return progress, nil
}

func (uc *CourseUsecase) GetCertificate(enrollmentID uuid.UUID) (*model.Certificate, error) {
	return uc.courseRepo.FindCertificate(enrollmentID)
}
