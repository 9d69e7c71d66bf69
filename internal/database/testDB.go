package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"datadrop-backend/internal/config"
	m "datadrop-backend/internal/model"
)

var testDBInstance *Instance
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seed records for tests
var (
	TestTypeCSV m.AllowedFileType
	TestTypePDF m.AllowedFileType
	TestTypePNG m.AllowedFileType

	TestUser m.User
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup. The container and
// instance are shared across callers within one test binary.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *Instance, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	cfg := config.DatabaseConfig{
		UseConnStr: true,
		ConnStr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := New(cfg)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts a small extension whitelist and one user if empty.
func seedTestData(db *Instance) error {
	var typeCount int64
	if err := db.Model(&m.AllowedFileType{}).Count(&typeCount).Error; err != nil {
		return err
	}

	if typeCount > 0 {
		return loadTestData(db)
	}

	types := []m.AllowedFileType{
		{BaseURL: "https://example.com/csv", FileType: "csv"},
		{BaseURL: "https://example.com/pdf", FileType: "PDF"},
		{BaseURL: "https://example.com/png", FileType: "png"},
	}
	if err := db.Create(&types).Error; err != nil {
		return err
	}
	TestTypeCSV = types[0]
	TestTypePDF = types[1]
	TestTypePNG = types[2]

	user := m.User{
		Name:     "Seeded User",
		Email:    "seeded@example.com",
		GoogleID: "google_seed_001",
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	TestUser = user

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *Instance) error {
	if err := db.Where("file_type = ?", "csv").First(&TestTypeCSV).Error; err != nil {
		return err
	}
	if err := db.Where("file_type = ?", "PDF").First(&TestTypePDF).Error; err != nil {
		return err
	}
	if err := db.Where("file_type = ?", "png").First(&TestTypePNG).Error; err != nil {
		return err
	}
	return db.Where("google_id = ?", "google_seed_001").First(&TestUser).Error
}
