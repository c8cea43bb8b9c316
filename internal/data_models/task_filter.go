package dto

// TaskFilter narrows a task listing. An empty slice means no constraint for
// that category. Categories combine with AND; values within one category
// combine with OR.
type TaskFilter struct {
	LabelNames []string
	Statuses   []string
	Priorities []string
}

func (f TaskFilter) Empty() bool {
	return len(f.LabelNames) == 0 && len(f.Statuses) == 0 && len(f.Priorities) == 0
}
