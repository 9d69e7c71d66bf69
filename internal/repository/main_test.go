package repository

import (
	"context"
	"log"
	"os"
	"testing"

	"datadrop-backend/internal/database"
)

var testDB *database.Instance

func TestMain(m *testing.M) {
	teardown, db, err := database.GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}
	testDB = db

	code := m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Fatalf("could not teardown postgres container: %v", err)
		}
	}
	os.Exit(code)
}
