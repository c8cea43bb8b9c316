package services

import (
	"context"

	"go.uber.org/zap"

	dto "task-board.com/task-board/internal/data_models"
	"task-board.com/task-board/internal/logger"
	repository "task-board.com/task-board/internal/repositories"
	model "task-board.com/task-board/pkg/models"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// CreateTask persists a validated task together with its label associations.
// The returned resolutions report, per requested label, whether an existing
// row was reused or a new one created.
func (s *TaskService) CreateTask(ctx context.Context, data *dto.NewTaskData) (*model.Task, []repository.LabelResolution, error) {
	task, resolutions, err := s.repo.CreateTaskWithLabels(ctx, data)
	if err != nil {
		return nil, nil, err
	}

	created := 0
	for _, res := range resolutions {
		if res.Outcome == repository.LabelCreated {
			created++
		}
	}
	logger.Info("task created",
		zap.String("task_id", task.ID),
		zap.Int("labels", len(resolutions)),
		zap.Int("labels_created", created))

	return task, resolutions, nil
}

func (s *TaskService) ListTasks(ctx context.Context, filter dto.TaskFilter) ([]model.Task, error) {
	return s.repo.List(ctx, filter)
}

// DeleteTask removes the task and its label associations, returning the
// task's prior field values.
func (s *TaskService) DeleteTask(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("task deleted", zap.String("task_id", id))
	return task, nil
}
