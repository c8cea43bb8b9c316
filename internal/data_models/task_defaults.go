package dto

import "task-board.com/task-board/pkg/constants"

// TaskDefaults holds the values filled in for omitted request fields. They
// are applied after validation succeeds, never inside the validation
// predicates themselves.
type TaskDefaults struct {
	Priority   constants.TaskPriority
	Status     constants.TaskStatus
	LabelColor string
}

func DefaultTaskDefaults() TaskDefaults {
	return TaskDefaults{
		Priority:   constants.PriorityMedium,
		Status:     constants.StatusTodo,
		LabelColor: "#3b82f6",
	}
}
