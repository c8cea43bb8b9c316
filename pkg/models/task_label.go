package model

// TaskLabel links one task to one label. No cascade is configured at the
// storage level; associations are deleted explicitly before their task.
type TaskLabel struct {
	TaskID  string `gorm:"primaryKey;size:36" json:"taskId"`
	LabelID string `gorm:"primaryKey;size:36" json:"labelId"`

	Label Label `gorm:"foreignKey:LabelID" json:"label"`
}
