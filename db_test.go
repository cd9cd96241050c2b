package main

import (
	"testing"

	"taskboard/internal/repository"
	"taskboard/models"
)

func TestSeedDevData(t *testing.T) {
	db, err := repository.Open(repository.Options{Driver: "sqlite", DSN: ":memory:", LogLevel: "silent"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := seedDevData(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// a second run must not duplicate rows
	if err := seedDevData(db); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	var cats, tasks int64
	db.Model(&models.Category{}).Count(&cats)
	db.Model(&models.Task{}).Count(&tasks)
	if cats != 3 || tasks != 4 {
		t.Fatalf("expected 3 categories and 4 tasks, got %d and %d", cats, tasks)
	}
}
