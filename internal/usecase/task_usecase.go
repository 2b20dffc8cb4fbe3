package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/repository"
	"github.com/hubcompliance/compliance-hub/internal/service"
)

type TaskUsecase struct {
	taskRepo    *repository.TaskRepository
	companyRepo *repository.CompanyRepository
	email       service.EmailServiceInterface
}

func NewTaskUsecase(taskRepo *repository.TaskRepository, companyRepo *repository.CompanyRepository, email service.EmailServiceInterface) *TaskUsecase {
	return &TaskUsecase{taskRepo: taskRepo, companyRepo: companyRepo, email: email}
}

func (uc *TaskUsecase) Create(task *model.Task) error {
	return uc.taskRepo.Create(task)
}

func (uc *TaskUsecase) Update(task *model.Task) error {
	if _, err := uc.taskRepo.FindByID(task.ID); err != nil {
		return err
	}
	return uc.taskRepo.Update(task)
}

func (uc *TaskUsecase) Get(id uuid.UUID) (*model.Task, error) {
	return uc.taskRepo.FindByID(id)
}

func (uc *TaskUsecase) ListAll() ([]model.Task, error) {
	return uc.taskRepo.GetAll()
}

func (uc *TaskUsecase) ListByCompany(companyID uuid.UUID) ([]model.Task, error) {
	return uc.taskRepo.GetByCompany(companyID)
}

// SendOverdueReminders mails a reminder for every open task past its due
// date, at most once per task. Returns the number of reminders sent.
func (uc *TaskUsecase) SendOverdueReminders(ctx context.Context, now time.Time) (int, error) {
	tasks, err := uc.taskRepo.GetOverdueUnnotified(now)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, task := range tasks {
		recipients := uc.reminderRecipients(&task)
		if len(recipients) == 0 {
			slog.Warn("overdue task has no reminder recipients", "task_id", task.ID, "title", task.Title)
			continue
		}

		delivered := false
		for _, recipient := range recipients {
			_, err := uc.email.Send(ctx, service.EmailMessage{
				To:      recipient,
				Subject: "Promemoria attivita in scadenza",
				Params: map[string]string{
					"task_title":       task.Title,
					"task_description": task.Description,
					"due_date":         task.DueDate.Format("02/01/2006"),
				},
			})
			if err != nil {
				slog.Error("failed to send task reminder", "task_id", task.ID, "to", recipient, "error", err)
				continue
			}
			delivered = true
		}

		if delivered {
			if err := uc.taskRepo.MarkReminderSent(task.ID); err != nil {
				slog.Error("failed to mark reminder sent", "task_id", task.ID, "error", err)
				continue
			}
			sent++
		}
	}
	return sent, nil
}

// StartReminderLoop runs the overdue check on a fixed interval until the
// context is cancelled.
func (uc *TaskUsecase) StartReminderLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sent, err := uc.SendOverdueReminders(ctx, time.Now())
			if err != nil {
				slog.Error("task reminder pass failed", "error", err)
				continue
			}
			if sent > 0 {
				slog.Info("task reminders sent", "count", sent)
			}
		}
	}
}

func (uc *TaskUsecase) reminderRecipients(task *model.Task) []string {
	if task.CreatedBy != "" {
		return []string{task.CreatedBy}
	}
	return nil
}
