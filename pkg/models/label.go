package model

import "time"

// Label is a named, colored tag attachable to many tasks. The (name, color)
// pair is unique, but task creation resolves labels by name alone.
type Label struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex:idx_labels_name_color" json:"name"`
	Color     string    `gorm:"size:7;not null;uniqueIndex:idx_labels_name_color" json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}
