package validators

import (
	"fmt"
	"regexp"
	"time"

	dto "task-board.com/task-board/internal/data_models"
	apperrors "task-board.com/task-board/internal/errors"
	"task-board.com/task-board/pkg/constants"
)

var colorPattern = regexp.MustCompile(`(?i)^#([0-9A-F]{3}){1,2}$`)

// Layouts accepted for the dueDate field, tried in order.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDueDate parses a due-date string against the accepted layouts.
func ParseDueDate(value string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized due date %q", value)
}

// ValidateCreateTaskRequest checks the raw request and, on success, returns
// the normalized creation data with defaults applied.
func ValidateCreateTaskRequest(r *dto.CreateTaskRequest, defaults dto.TaskDefaults) (*dto.NewTaskData, error) {
	if r.Title == "" {
		return nil, apperrors.ValidationError("Title is required")
	}
	if len(r.Title) > 100 {
		return nil, apperrors.ValidationError("Title must be at most 100 characters")
	}

	data := &dto.NewTaskData{
		Title:       r.Title,
		Description: r.Description,
		Priority:    defaults.Priority,
		Status:      defaults.Status,
	}

	if r.Priority != "" {
		p := constants.TaskPriority(r.Priority)
		if !p.Valid() {
			return nil, apperrors.ValidationError("Invalid priority: " + r.Priority)
		}
		data.Priority = p
	}

	if r.Status != "" {
		s := constants.TaskStatus(r.Status)
		if !s.Valid() {
			return nil, apperrors.ValidationError("Invalid status: " + r.Status)
		}
		data.Status = s
	}

	if r.DueDate != "" {
		due, err := ParseDueDate(r.DueDate)
		if err != nil {
			return nil, apperrors.ErrInvalidDueDate
		}
		data.DueDate = &due
	}

	for _, label := range r.Labels {
		color := label.Color
		if color == "" {
			color = defaults.LabelColor
		} else if !colorPattern.MatchString(color) {
			return nil, apperrors.ValidationError("Invalid label color: " + label.Color)
		}
		data.Labels = append(data.Labels, dto.NewLabelData{
			Name:  label.Name,
			Color: color,
		})
	}

	return data, nil
}
