package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "task-board.com/task-board/pkg/models"
)

func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(&model.Task{}, &model.Label{}, &model.TaskLabel{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
