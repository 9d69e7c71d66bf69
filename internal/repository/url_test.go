package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadrop-backend/internal/database"
	"datadrop-backend/internal/model"
)

func TestUrlRepository_CreateAndGetByID(t *testing.T) {
	repo := NewUrlRepository(testDB)

	record := model.AllowedFileType{BaseURL: "https://example.com/docx", FileType: "docx"}
	require.NoError(t, repo.Create(&record))
	require.NotZero(t, record.ID, "create should populate the generated id")

	got, err := repo.GetByID(record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.BaseURL, got.BaseURL)
	assert.Equal(t, record.FileType, got.FileType)
}

func TestUrlRepository_GetByIDMissing(t *testing.T) {
	repo := NewUrlRepository(testDB)

	_, err := repo.GetByID(999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUrlRepository_GetAllIncludesSeeds(t *testing.T) {
	repo := NewUrlRepository(testDB)

	records, err := repo.GetAll()
	require.NoError(t, err)

	types := make(map[string]bool)
	for _, r := range records {
		types[r.FileType] = true
	}
	assert.True(t, types[database.TestTypeCSV.FileType])
	assert.True(t, types[database.TestTypePDF.FileType])
	assert.True(t, types[database.TestTypePNG.FileType])
}
