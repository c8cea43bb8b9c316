package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "task-board.com/task-board/internal/data_models"
	apperrors "task-board.com/task-board/internal/errors"
	"task-board.com/task-board/internal/http/validators"
	"task-board.com/task-board/internal/logger"
	"task-board.com/task-board/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON payload"})
	}

	// Early due-date check, kept separate from the full validator for
	// compatibility with the original API surface.
	if req.DueDate != "" {
		if _, err := validators.ParseDueDate(req.DueDate); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": apperrors.ErrInvalidDueDate.Message})
		}
	}

	data, err := validators.ValidateCreateTaskRequest(&req, dto.DefaultTaskDefaults())
	if err != nil {
		return c.JSON(apperrors.StatusCode(err), echo.Map{"error": err.Error()})
	}

	task, _, err := h.taskService.CreateTask(c.Request().Context(), data)
	if err != nil {
		logger.Error("create task failed", err, zap.String("title", req.Title))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create task"})
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	params := c.QueryParams()
	filter := dto.TaskFilter{
		LabelNames: params["label"],
		Statuses:   params["status"],
		Priorities: params["priority"],
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), filter)
	if err != nil {
		logger.Error("list tasks failed", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch tasks"})
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(apperrors.ErrTaskIDRequired.StatusCode, echo.Map{"error": apperrors.ErrTaskIDRequired.Message})
	}

	task, err := h.taskService.DeleteTask(c.Request().Context(), id)
	if err != nil {
		logger.Error("delete task failed", err, zap.String("task_id", id))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "Failed to delete task",
			"details": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Task deleted successfully",
		"data":    task,
	})
}
