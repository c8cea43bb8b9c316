package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "task-board.com/task-board/internal/data_models"
	model "task-board.com/task-board/pkg/models"
)

type LabelOutcome string

const (
	LabelReused  LabelOutcome = "reused"
	LabelCreated LabelOutcome = "created"
)

// LabelResolution records how one requested label was satisfied: reuse of an
// existing row or creation of a new one.
type LabelResolution struct {
	LabelID string
	Outcome LabelOutcome
}

// resolveLabel looks up a label by name only. An existing label is reused
// as-is even when the requested color differs; its color is never updated.
func resolveLabel(tx *gorm.DB, label dto.NewLabelData) (LabelResolution, error) {
	var existing model.Label
	err := tx.First(&existing, "name = ?", label.Name).Error
	if err == nil {
		return LabelResolution{LabelID: existing.ID, Outcome: LabelReused}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return LabelResolution{}, err
	}

	created := model.Label{
		ID:        uuid.NewString(),
		Name:      label.Name,
		Color:     label.Color,
		CreatedAt: time.Now().UTC(),
	}
	if err := tx.Create(&created).Error; err != nil {
		return LabelResolution{}, err
	}

	return LabelResolution{LabelID: created.ID, Outcome: LabelCreated}, nil
}
