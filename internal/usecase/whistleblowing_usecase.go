package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/repository"
	"github.com/hubcompliance/compliance-hub/internal/service"
	"gorm.io/gorm"
)

type WhistleblowingUsecase struct {
	wbRepo      *repository.WhistleblowingRepository
	companyRepo *repository.CompanyRepository
	email       service.EmailServiceInterface
}

func NewWhistleblowingUsecase(wbRepo *repository.WhistleblowingRepository, companyRepo *repository.CompanyRepository, email service.EmailServiceInterface) *WhistleblowingUsecase {
	return &WhistleblowingUsecase{wbRepo: wbRepo, companyRepo: companyRepo, email: email}
}

// SubmitReport files an anonymous report and returns the generated ticket
// code, the only handle the reporter keeps. The company contact gets an
// intake notification; delivery failure never blocks the filing.
func (uc *WhistleblowingUsecase) SubmitReport(ctx context.Context, report *model.WhistleblowingReport) (string, error) {
	config, err := uc.wbRepo.FindConfigByCompany(report.CompanyID)
	if err != nil || !config.Active {
		return "", ErrChannelInactive
	}

	report.TicketCode = uuid.New().String()
	report.Status = model.ReportStatusReceived
	if report.ReporterName == "" {
		report.ReporterName = "Anonymous"
	}
	if err := uc.wbRepo.CreateReport(report); err != nil {
		return "", err
	}

	if company, err := uc.companyRepo.FindByID(report.CompanyID); err == nil && company.ContactEmail != "" {
		_, err := uc.email.Send(ctx, service.EmailMessage{
			To:      company.ContactEmail,
			Subject: "Nuova segnalazione whistleblowing",
			Params: map[string]string{
				"company_name": company.Name,
				"category":     report.Category,
			},
		})
		if err != nil {
			slog.Error("failed to notify whistleblowing intake", "company_id", report.CompanyID, "error", err)
		}
	}
	return report.TicketCode, nil
}

// CheckTicket returns the report behind an anonymous ticket code.
func (uc *WhistleblowingUsecase) CheckTicket(ticketCode string) (*model.WhistleblowingReport, error) {
	return uc.wbRepo.FindReportByTicket(ticketCode)
}

func (uc *WhistleblowingUsecase) ListReports(companyID uuid.UUID) ([]model.WhistleblowingReport, error) {
	return uc.wbRepo.GetReportsByCompany(companyID)
}

// Reply records the consultant answer and moves the report to review.
func (uc *WhistleblowingUsecase) Reply(companyID, reportID uuid.UUID, reply, status string) (*model.WhistleblowingReport, error) {
	report, err := uc.wbRepo.FindReportByID(reportID)
	if err != nil {
		return nil, err
	}
	if report.CompanyID != companyID {
		return nil, gorm.ErrRecordNotFound
	}

	report.ConsultantReply = reply
	if status != "" {
		report.Status = status
	} else if report.Status == model.ReportStatusReceived {
		report.Status = model.ReportStatusInReview
	}
	if err := uc.wbRepo.UpdateReport(report); err != nil {
		return nil, err
	}
	return report, nil
}

func (uc *WhistleblowingUsecase) AddAttachment(ticketCode, fileName, path string) (*model.WhistleblowingAttachment, error) {
	report, err := uc.wbRepo.FindReportByTicket(ticketCode)
	if err != nil {
		return nil, err
	}
	attachment := &model.WhistleblowingAttachment{
		ReportID: report.ID,
		FileName: fileName,
		Path:     path,
	}
	if err := uc.wbRepo.CreateAttachment(attachment); err != nil {
		return nil, err
	}
	return attachment, nil
}

// YearCount reports the intake volume for the annual reporting obligation.
func (uc *WhistleblowingUsecase) YearCount(companyID uuid.UUID, year int) (int64, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	return uc.wbRepo.CountReportsInYear(companyID, year)
}

// Activate turns the intake channel on for a company.
func (uc *WhistleblowingUsecase) Activate(companyID uuid.UUID, packageName string) error {
	config := &model.WhistleblowingConfig{
		CompanyID: companyID,
		Active:    true,
	}
	if packageName != "" {
		config.PackageName = packageName
	}
	return uc.wbRepo.UpsertConfig(config)
}

func (uc *WhistleblowingUsecase) GetConfig(companyID uuid.UUID) (*model.WhistleblowingConfig, error) {
	return uc.wbRepo.FindConfigByCompany(companyID)
}
