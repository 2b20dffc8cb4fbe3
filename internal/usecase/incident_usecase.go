package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/repository"
)

// authorityNotificationWindow is the GDPR art. 33 deadline for notifying
// the supervisory authority after becoming aware of a breach.
const authorityNotificationWindow = 72 * time.Hour

type IncidentUsecase struct {
	incidentRepo *repository.IncidentRepository
}

func NewIncidentUsecase(incidentRepo *repository.IncidentRepository) *IncidentUsecase {
	return &IncidentUsecase{incidentRepo: incidentRepo}
}

func (uc *IncidentUsecase) Create(incident *model.Incident) error {
	if incident.DetectedAt.IsZero() {
		incident.DetectedAt = time.Now()
	}
	applyNotificationDeadline(incident)
	return uc.incidentRepo.Create(incident)
}

func (uc *IncidentUsecase) Update(companyID uuid.UUID, incident *model.Incident) error {
	existing, err := uc.incidentRepo.FindByID(companyID, incident.ID)
	if err != nil {
		return err
	}
	incident.CompanyID = existing.CompanyID
	applyNotificationDeadline(incident)
	return uc.incidentRepo.Update(incident)
}

func (uc *IncidentUsecase) Get(companyID, id uuid.UUID) (*model.Incident, error) {
	return uc.incidentRepo.FindByID(companyID, id)
}

func (uc *IncidentUsecase) List(companyID uuid.UUID) ([]model.Incident, error) {
	return uc.incidentRepo.GetByCompany(companyID)
}

func applyNotificationDeadline(incident *model.Incident) {
	if incident.AuthorityNotifyRequired && incident.NotificationDeadline == nil {
		deadline := incident.DetectedAt.Add(authorityNotificationWindow)
		incident.NotificationDeadline = &deadline
	}
}

// UpsertReferent replaces the single CSIRT point of contact of a company.
func (uc *IncidentUsecase) UpsertReferent(referent *model.CSIRTReferent) error {
	if referent.AppointedAt.IsZero() {
		referent.AppointedAt = time.Now()
	}
	return uc.incidentRepo.UpsertReferent(referent)
}

func (uc *IncidentUsecase) GetReferent(companyID uuid.UUID) (*model.CSIRTReferent, error) {
	return uc.incidentRepo.FindReferentByCompany(companyID)
}

// CreateNotification opens a NIS2 incident notification, linked to the
// company referent when one is appointed.
func (uc *IncidentUsecase) CreateNotification(n *model.IncidentNotification) error {
	if n.OccurredAt.IsZero() {
		n.OccurredAt = time.Now()
	}
	if referent, err := uc.incidentRepo.FindReferentByCompany(n.CompanyID); err == nil {
		n.ReferentID = &referent.ID
	}
	return uc.incidentRepo.CreateNotification(n)
}

func (uc *IncidentUsecase) UpdateNotification(companyID uuid.UUID, n *model.IncidentNotification) error {
	existing, err := uc.incidentRepo.FindNotificationByID(companyID, n.ID)
	if err != nil {
		return err
	}
	n.CompanyID = existing.CompanyID
	return uc.incidentRepo.UpdateNotification(n)
}

// MarkNotified records the CSIRT submission timestamp.
func (uc *IncidentUsecase) MarkNotified(companyID, id uuid.UUID) (*model.IncidentNotification, error) {
	n, err := uc.incidentRepo.FindNotificationByID(companyID, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	n.NotifiedAt = &now
	n.Status = model.NotificationStatusNotified
	if err := uc.incidentRepo.UpdateNotification(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (uc *IncidentUsecase) GetNotification(companyID, id uuid.UUID) (*model.IncidentNotification, []model.NotificationAttachment, error) {
	n, err := uc.incidentRepo.FindNotificationByID(companyID, id)
	if err != nil {
		return nil, nil, err
	}
	attachments, err := uc.incidentRepo.GetNotificationAttachments(id)
	if err != nil {
		return nil, nil, err
	}
	return n, attachments, nil
}

func (uc *IncidentUsecase) ListNotifications(companyID uuid.UUID) ([]model.IncidentNotification, error) {
	return uc.incidentRepo.GetNotificationsByCompany(companyID)
}

func (uc *IncidentUsecase) AddNotificationAttachment(companyID, notificationID uuid.UUID, fileName, path, description, uploadedBy string) (*model.NotificationAttachment, error) {
	if _, err := uc.incidentRepo.FindNotificationByID(companyID, notificationID); err != nil {
		return nil, err
	}
	attachment := &model.NotificationAttachment{
		NotificationID: notificationID,
		FileName:       fileName,
		Path:           path,
		Description:    description,
		UploadedBy:     uploadedBy,
	}
	if err := uc.incidentRepo.CreateNotificationAttachment(attachment); err != nil {
		return nil, err
	}
	return attachment, nil
}
