package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/repository"
	"github.com/hubcompliance/compliance-hub/internal/scoring"
)

type DashboardUsecase struct {
	treatmentRepo *repository.TreatmentRepository
	auditRepo     *repository.AuditRepository
	securityRepo  *repository.SecurityRepository
	vendorRepo    *repository.VendorRepository
	incidentRepo  *repository.IncidentRepository
	requestRepo   *repository.RequestRepository
	taskRepo      *repository.TaskRepository
	wbRepo        *repository.WhistleblowingRepository
}

func NewDashboardUsecase(
	treatmentRepo *repository.TreatmentRepository,
	auditRepo *repository.AuditRepository,
	securityRepo *repository.SecurityRepository,
	vendorRepo *repository.VendorRepository,
	incidentRepo *repository.IncidentRepository,
	requestRepo *repository.RequestRepository,
	taskRepo *repository.TaskRepository,
	wbRepo *repository.WhistleblowingRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		treatmentRepo: treatmentRepo,
		auditRepo:     auditRepo,
		securityRepo:  securityRepo,
		vendorRepo:    vendorRepo,
		incidentRepo:  incidentRepo,
		requestRepo:   requestRepo,
		taskRepo:      taskRepo,
		wbRepo:        wbRepo,
	}
}

// CompanyDashboard is the per-tenant compliance overview.
type CompanyDashboard struct {
	Treatments      TreatmentSummary `json:"treatments"`
	LastAudit       *AuditSummary    `json:"last_audit"`
	LastSecurity    *AuditSummary    `json:"last_security_audit"`
	Vendors         VendorSummary    `json:"vendors"`
	OpenIncidents   int64            `json:"open_incidents"`
	OpenRequests    int              `json:"open_requests"`
	OverdueRequests int              `json:"overdue_requests"`
	OverdueTasks    int              `json:"overdue_tasks"`
	ReportsThisYear int64            `json:"reports_this_year"`
}

type TreatmentSummary struct {
	Total        int `json:"total"`
	HighRisk     int `json:"high_risk"`
	DPIARequired int `json:"dpia_required"`
}

type AuditSummary struct {
	ID         uuid.UUID    `json:"id"`
	Percentage float64      `json:"percentage"`
	Band       scoring.Band `json:"band"`
	Completed  bool         `json:"completed"`
	CreatedAt  time.Time    `json:"created_at"`
}

type VendorSummary struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	AvgScore  float64 `json:"avg_score"`
}

// Build assembles the dashboard for one company.
func (uc *DashboardUsecase) Build(companyID uuid.UUID) (*CompanyDashboard, error) {
	dashboard := &CompanyDashboard{}
	now := time.Now()

	treatments, err := uc.treatmentRepo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}
	dashboard.Treatments.Total = len(treatments)
	for _, t := range treatments {
		if t.RiskLevel == string(scoring.RiskHigh) {
			dashboard.Treatments.HighRisk++
		}
		if t.DPIARequired {
			dashboard.Treatments.DPIARequired++
		}
	}

	if summary, err := uc.lastAuditSummary(companyID); err == nil {
		dashboard.LastAudit = summary
	}
	if summary, err := uc.lastSecuritySummary(companyID); err == nil {
		dashboard.LastSecurity = summary
	}

	vendors, err := uc.vendorRepo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}
	dashboard.Vendors = uc.vendorSummary(vendors)

	openIncidents, err := uc.incidentRepo.CountOpenByCompany(companyID)
	if err != nil {
		return nil, err
	}
	dashboard.OpenIncidents = openIncidents

	requests, err := uc.requestRepo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}
	for _, r := range requests {
		if r.Status == model.RequestStatusFulfilled || r.Status == model.RequestStatusRejected {
			continue
		}
		dashboard.OpenRequests++
		if r.ResponseDeadline != nil && r.ResponseDeadline.Before(now) {
			dashboard.OverdueRequests++
		}
	}

	tasks, err := uc.taskRepo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.Status != model.TaskStatusDone && t.DueDate != nil && t.DueDate.Before(now) {
			dashboard.OverdueTasks++
		}
	}

	reports, err := uc.wbRepo.CountReportsInYear(companyID, now.Year())
	if err != nil {
		return nil, err
	}
	dashboard.ReportsThisYear = reports

	return dashboard, nil
}

func (uc *DashboardUsecase) lastAuditSummary(companyID uuid.UUID) (*AuditSummary, error) {
	sessions, err := uc.auditRepo.GetSessionsByCompany(companyID)
	if err != nil || len(sessions) == 0 {
		return nil, err
	}

	latest := sessions[0]
	answers, err := uc.auditRepo.GetAnswers(latest.ID)
	if err != nil {
		return nil, err
	}
	values := make([]bool, 0, len(answers))
	for _, a := range answers {
		values = append(values, a.Answer)
	}
	percentage := scoring.CompletionRateBool(values)

	return &AuditSummary{
		ID:         latest.ID,
		Percentage: percentage,
		Band:       scoring.RateBand(percentage),
		Completed:  latest.Completed,
		CreatedAt:  latest.CreatedAt,
	}, nil
}

func (uc *DashboardUsecase) lastSecuritySummary(companyID uuid.UUID) (*AuditSummary, error) {
	audits, err := uc.securityRepo.GetAuditsByCompany(companyID)
	if err != nil || len(audits) == 0 {
		return nil, err
	}

	latest := audits[0]
	responses, err := uc.securityRepo.GetResponses(latest.ID)
	if err != nil {
		return nil, err
	}
	outcomes := make([]scoring.Outcome, 0, len(responses))
	for _, r := range responses {
		outcomes = append(outcomes, scoring.Outcome(r.Outcome))
	}
	percentage := scoring.CompletionRate(outcomes)

	return &AuditSummary{
		ID:         latest.ID,
		Percentage: percentage,
		Band:       scoring.RateBand(percentage),
		Completed:  latest.Completed,
		CreatedAt:  latest.CreatedAt,
	}, nil
}

func (uc *DashboardUsecase) vendorSummary(vendors []model.Vendor) VendorSummary {
	summary := VendorSummary{Total: len(vendors)}
	if len(vendors) == 0 {
		return summary
	}

	questions, err := uc.vendorRepo.GetQuestions()
	if err != nil {
		return summary
	}
	scoringQuestions := make([]scoring.VendorQuestion, 0, len(questions))
	for _, q := range questions {
		scoringQuestions = append(scoringQuestions, scoring.VendorQuestion{
			ID:             q.ID,
			Area:           scoring.Area(q.Area),
			TopicWeight:    q.TopicWeight,
			QuestionWeight: q.QuestionWeight,
		})
	}

	var sum float64
	for _, v := range vendors {
		if v.Status != model.VendorStatusCompleted {
			continue
		}
		answers, err := uc.vendorRepo.GetAnswers(v.ID)
		if err != nil {
			continue
		}
		values := make(map[uint]float64, len(answers))
		for _, a := range answers {
			values[a.QuestionID] = a.Value
		}
		results := scoring.ScoreVendor(scoringQuestions, values)
		sum += results[scoring.AreaOverall]
		summary.Completed++
	}
	if summary.Completed > 0 {
		summary.AvgScore = scoring.Round2(sum / float64(summary.Completed))
	}
	return summary
}
