package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadrop-backend/internal/model"
	"datadrop-backend/internal/repository"
)

// fakeUrlRepository is an in-memory stand-in for the whitelist table.
type fakeUrlRepository struct {
	records []model.AllowedFileType
	nextID  int
	failAll error
}

func newFakeUrlRepository(types ...string) *fakeUrlRepository {
	repo := &fakeUrlRepository{nextID: 1}
	for _, ft := range types {
		repo.records = append(repo.records, model.AllowedFileType{
			ID:       repo.nextID,
			BaseURL:  "https://example.com/" + ft,
			FileType: ft,
		})
		repo.nextID++
	}
	return repo
}

func (f *fakeUrlRepository) GetAll() ([]model.AllowedFileType, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	return f.records, nil
}

func (f *fakeUrlRepository) GetByID(id int) (model.AllowedFileType, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return model.AllowedFileType{}, repository.ErrNotFound
}

func (f *fakeUrlRepository) Create(record *model.AllowedFileType) error {
	record.ID = f.nextID
	f.nextID++
	f.records = append(f.records, *record)
	return nil
}

func TestCreateAndGetByIDRoundTrip(t *testing.T) {
	svc := NewUrlService(newFakeUrlRepository())

	created, err := svc.Create("https://example.com/csv", "csv")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.BaseURL, got.BaseURL)
	assert.Equal(t, created.FileType, got.FileType)
}

func TestCreateRejectsEmptyFields(t *testing.T) {
	svc := NewUrlService(newFakeUrlRepository())

	_, err := svc.Create("", "csv")
	assert.ErrorIs(t, err, ErrEmptyField)

	_, err = svc.Create("https://example.com/csv", "")
	assert.ErrorIs(t, err, ErrEmptyField)
}

func TestGetByIDMissing(t *testing.T) {
	svc := NewUrlService(newFakeUrlRepository("csv"))

	_, err := svc.GetByID(42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestIsExtensionAllowed(t *testing.T) {
	svc := NewUrlService(newFakeUrlRepository("csv", "PDF"))

	cases := []struct {
		ext     string
		allowed bool
	}{
		{"csv", true},
		{"CSV", true},
		{"pdf", true},
		{"Pdf", true},
		{"exe", false},
		{"", false},
	}

	for _, tc := range cases {
		allowed, err := svc.IsExtensionAllowed(tc.ext)
		require.NoError(t, err)
		assert.Equalf(t, tc.allowed, allowed, "extension %q", tc.ext)
	}
}

func TestIsExtensionAllowedPropagatesError(t *testing.T) {
	repo := newFakeUrlRepository("csv")
	repo.failAll = errors.New("connection refused")
	svc := NewUrlService(repo)

	_, err := svc.IsExtensionAllowed("csv")
	assert.Error(t, err)
}
