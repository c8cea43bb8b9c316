package dto

import (
	"time"

	"task-board.com/task-board/pkg/constants"
)

// CreateTaskRequest is the raw JSON body of POST /api/tasks, before any
// validation has run.
type CreateTaskRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    string       `json:"priority"`
	Status      string       `json:"status"`
	DueDate     string       `json:"dueDate"`
	Labels      []LabelInput `json:"labels"`
}

type LabelInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// NewTaskData is the normalized, typed result of validating a create
// request. Defaults have already been applied.
type NewTaskData struct {
	Title       string
	Description string
	Priority    constants.TaskPriority
	Status      constants.TaskStatus
	DueDate     *time.Time
	Labels      []NewLabelData
}

type NewLabelData struct {
	Name  string
	Color string
}
