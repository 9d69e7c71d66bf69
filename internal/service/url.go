// Package service contains the business logic wrapping the persistence gateway.
package service

import (
	"errors"
	"strings"

	"datadrop-backend/internal/model"
	"datadrop-backend/internal/repository"
)

// ErrEmptyField is returned when a create call is missing the label or the
// extension. Callers supply both fields; there is no defaulting.
var ErrEmptyField = errors.New("url and file_type must not be empty")

// UrlService wraps the whitelist repository. Reads pass straight through;
// create validates that both fields are present.
type UrlService struct {
	repo repository.UrlRepository
}

// NewUrlService creates a UrlService over the given repository.
func NewUrlService(repo repository.UrlRepository) *UrlService {
	return &UrlService{repo: repo}
}

// GetAll returns every whitelist record. Order is engine-determined.
func (s *UrlService) GetAll() ([]model.AllowedFileType, error) {
	return s.repo.GetAll()
}

// GetByID returns the record with the given id, or repository.ErrNotFound.
func (s *UrlService) GetByID(id int) (model.AllowedFileType, error) {
	return s.repo.GetByID(id)
}

// Create stores a new whitelist record and returns it with its generated id.
func (s *UrlService) Create(url, fileType string) (model.AllowedFileType, error) {
	if url == "" || fileType == "" {
		return model.AllowedFileType{}, ErrEmptyField
	}

	record := model.AllowedFileType{
		BaseURL:  url,
		FileType: fileType,
	}
	if err := s.repo.Create(&record); err != nil {
		return model.AllowedFileType{}, err
	}
	return record, nil
}

// IsExtensionAllowed reports whether ext case-insensitively matches any
// whitelist row. Full table scan on every call; the table stays small.
func (s *UrlService) IsExtensionAllowed(ext string) (bool, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		return false, err
	}
	for _, r := range records {
		if strings.EqualFold(r.FileType, ext) {
			return true, nil
		}
	}
	return false, nil
}
