package database

import (
	"context"
	"log"
	"os"
	"testing"

	m "datadrop-backend/internal/model"
)

var testDB *Instance

func TestMain(t *testing.M) {
	teardown, db, err := GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}
	testDB = db

	code := t.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Fatalf("could not teardown postgres container: %v", err)
		}
	}
	os.Exit(code)
}

func TestHealth(t *testing.T) {
	stats := testDB.Health()

	if stats["status"] != "up" {
		t.Fatalf("expected status to be up, got %s", stats["status"])
	}

	if _, ok := stats["error"]; ok {
		t.Fatalf("expected error not to be present")
	}

	if stats["message"] != "It's healthy" {
		t.Fatalf("expected message to be 'It's healthy', got %s", stats["message"])
	}
}

func TestMigrateCreatedTables(t *testing.T) {
	for _, table := range []string{"users", "access_tokens", "base_url"} {
		if !testDB.Migrator().HasTable(table) {
			t.Fatalf("expected table %q to exist after migration", table)
		}
	}
}

func TestSeededWhitelist(t *testing.T) {
	var count int64
	if err := testDB.Model(&m.AllowedFileType{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count < 3 {
		t.Fatalf("expected at least 3 seeded file types, got %d", count)
	}
}
