package validators

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "task-board.com/task-board/internal/data_models"
	apperrors "task-board.com/task-board/internal/errors"
	"task-board.com/task-board/pkg/constants"
)

func validate(r *dto.CreateTaskRequest) (*dto.NewTaskData, error) {
	return ValidateCreateTaskRequest(r, dto.DefaultTaskDefaults())
}

func TestValidate_AppliesDefaults(t *testing.T) {
	data, err := validate(&dto.CreateTaskRequest{Title: "Just a title"})
	require.NoError(t, err)

	assert.Equal(t, "Just a title", data.Title)
	assert.Equal(t, constants.PriorityMedium, data.Priority)
	assert.Equal(t, constants.StatusTodo, data.Status)
	assert.Nil(t, data.DueDate)
	assert.Empty(t, data.Labels)
}

func TestValidate_TitleRules(t *testing.T) {
	_, err := validate(&dto.CreateTaskRequest{})
	assert.EqualError(t, err, "Title is required")

	_, err = validate(&dto.CreateTaskRequest{Title: strings.Repeat("x", 101)})
	assert.EqualError(t, err, "Title must be at most 100 characters")

	_, err = validate(&dto.CreateTaskRequest{Title: strings.Repeat("x", 100)})
	assert.NoError(t, err)
}

func TestValidate_EnumFields(t *testing.T) {
	_, err := validate(&dto.CreateTaskRequest{Title: "t", Priority: "URGENT"})
	require.Error(t, err)
	var exc *apperrors.Exception
	require.ErrorAs(t, err, &exc)
	assert.Equal(t, 400, exc.StatusCode)

	_, err = validate(&dto.CreateTaskRequest{Title: "t", Status: "CANCELLED"})
	require.Error(t, err)

	data, err := validate(&dto.CreateTaskRequest{Title: "t", Priority: "HIGH", Status: "IN_PROGRESS"})
	require.NoError(t, err)
	assert.Equal(t, constants.PriorityHigh, data.Priority)
	assert.Equal(t, constants.StatusInProgress, data.Status)
}

func TestValidate_DueDate(t *testing.T) {
	_, err := validate(&dto.CreateTaskRequest{Title: "t", DueDate: "not-a-date"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDueDate)

	for _, value := range []string{
		"2026-03-01",
		"2026-03-01T10:30:00",
		"2026-03-01 10:30:00",
		"2026-03-01T10:30:00Z",
	} {
		data, err := validate(&dto.CreateTaskRequest{Title: "t", DueDate: value})
		require.NoError(t, err, value)
		require.NotNil(t, data.DueDate, value)
		assert.Equal(t, 2026, data.DueDate.Year(), value)
		assert.Equal(t, time.March, data.DueDate.Month(), value)
	}
}

func TestValidate_LabelColors(t *testing.T) {
	for _, bad := range []string{"red", "#ab", "#ff00", "#gggggg", "3b82f6"} {
		_, err := validate(&dto.CreateTaskRequest{
			Title:  "t",
			Labels: []dto.LabelInput{{Name: "work", Color: bad}},
		})
		assert.Error(t, err, bad)
	}

	data, err := validate(&dto.CreateTaskRequest{
		Title: "t",
		Labels: []dto.LabelInput{
			{Name: "short", Color: "#abc"},
			{Name: "long", Color: "#AABBCC"},
			{Name: "mixed", Color: "#3b82F6"},
			{Name: "defaulted"},
		},
	})
	require.NoError(t, err)
	require.Len(t, data.Labels, 4)
	assert.Equal(t, "#abc", data.Labels[0].Color)
	assert.Equal(t, "#3b82f6", data.Labels[3].Color)
}

func TestValidate_DescriptionPassesThrough(t *testing.T) {
	data, err := validate(&dto.CreateTaskRequest{Title: "t", Description: "  raw text  "})
	require.NoError(t, err)
	assert.Equal(t, "  raw text  ", data.Description)
}
