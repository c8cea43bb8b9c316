package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "task-board.com/task-board/internal/data_models"
	model "task-board.com/task-board/pkg/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateTaskWithLabels creates the task row and all its label associations
// inside one transaction. Labels are resolved in input order; nothing
// persists if any step fails.
func (r *TaskRepository) CreateTaskWithLabels(ctx context.Context, data *dto.NewTaskData) (*model.Task, []LabelResolution, error) {
	now := time.Now().UTC()
	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       data.Title,
		Description: data.Description,
		Priority:    data.Priority,
		Status:      data.Status,
		DueDate:     data.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var resolutions []LabelResolution

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}

		for _, label := range data.Labels {
			res, err := resolveLabel(tx, label)
			if err != nil {
				return err
			}
			resolutions = append(resolutions, res)

			link := &model.TaskLabel{TaskID: task.ID, LabelID: res.LabelID}
			if err := tx.Create(link).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return task, resolutions, nil
}

// List returns tasks matching the filter, ordered ascending by due date.
// Tasks without a due date follow sqlite's null ordering (first).
func (r *TaskRepository) List(ctx context.Context, filter dto.TaskFilter) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{}).
		Preload("Labels.Label").
		Order("tasks.due_date asc")

	if len(filter.LabelNames) > 0 {
		query = query.
			Joins("JOIN task_labels ON task_labels.task_id = tasks.id").
			Joins("JOIN labels ON labels.id = task_labels.label_id").
			Where("labels.name IN ?", filter.LabelNames).
			Distinct("tasks.*")
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("tasks.status IN ?", filter.Statuses)
	}
	if len(filter.Priorities) > 0 {
		query = query.Where("tasks.priority IN ?", filter.Priorities)
	}

	tasks := []model.Task{}
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// Delete removes the task's label associations and then the task itself,
// both inside one transaction. The association delete must come first
// because no cascade is configured. Deleting a task that does not exist
// returns gorm.ErrRecordNotFound.
func (r *TaskRepository) Delete(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&model.TaskLabel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Task{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}
