package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db}
}

func (r *TaskRepository) Create(task *model.Task) error {
	return r.db.Create(task).Error
}

func (r *TaskRepository) Update(task *model.Task) error {
	return r.db.Save(task).Error
}

func (r *TaskRepository) FindByID(id uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := r.db.Preload("Companies").First(&task, "id = ?", id).Error
	return &task, err
}

func (r *TaskRepository) GetAll() ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.Preload("Companies").Order("due_date").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) GetByCompany(companyID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.Preload("Companies").
		Joins("LEFT JOIN task_companies ON task_companies.task_id = tasks.id").
		Where("tasks.is_global = true OR task_companies.company_id = ?", companyID).
		Group("tasks.id").
		Order("due_date").
		Find(&tasks).Error
	return tasks, err
}

// GetOverdueUnnotified returns open tasks past their due date whose
// reminder has not gone out yet.
func (r *TaskRepository) GetOverdueUnnotified(now time.Time) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.Preload("Companies").
		Where("due_date < ? AND status = ? AND reminder_sent = false", now, model.TaskStatusOpen).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) MarkReminderSent(id uuid.UUID) error {
	return r.db.Model(&model.Task{}).Where("id = ?", id).Update("reminder_sent", true).Error
}
