package model

import (
	"time"

	"task-board.com/task-board/pkg/constants"
)

type Task struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	Title       string                 `gorm:"size:100;not null" json:"title"`
	Description string                 `json:"description"`
	Priority    constants.TaskPriority `gorm:"type:varchar(10);not null" json:"priority"`
	Status      constants.TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	DueDate     *time.Time             `json:"dueDate"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`

	// Labels is populated by list queries; create responses leave it empty.
	Labels []TaskLabel `gorm:"foreignKey:TaskID" json:"labels,omitempty"`
}
