package main

import (
	"log"

	"gorm.io/gorm"

	"taskboard/internal/config"
	"taskboard/internal/repository"
	"taskboard/models"
)

func initDB(cfg config.Config) *gorm.DB {
	db, err := repository.Open(repository.Options{
		Driver:   cfg.Driver,
		DSN:      cfg.DSN(),
		LogLevel: cfg.DBLogLevel,
	})
	if err != nil {
		log.Fatalf("db: %v", err)
	}

	if cfg.SeedDev {
		if err := seedDevData(db); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}
	return db
}

// seedDevData inserts a few categories and tasks into an empty store.
func seedDevData(db *gorm.DB) error {
	var cnt int64
	if err := db.Model(&models.Category{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		cats := []models.Category{{Name: "Work"}, {Name: "Home"}, {Name: "Study"}}
		if err := tx.Create(&cats).Error; err != nil {
			return err
		}
		tasks := []models.Task{
			{Name: "Write weekly report", CategoryID: cats[0].ID},
			{Name: "Review pull requests", CategoryID: cats[0].ID, Status: true},
			{Name: "Buy groceries", CategoryID: cats[1].ID},
			{Name: "Read chapter 3", CategoryID: cats[2].ID},
		}
		return tx.Create(&tasks).Error
	})
}
