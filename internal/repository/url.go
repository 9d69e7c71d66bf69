package repository

import (
	"errors"

	"gorm.io/gorm"

	"datadrop-backend/internal/database"
	"datadrop-backend/internal/model"
)

// UrlRepository persists the extension whitelist (table base_url).
type UrlRepository interface {
	GetAll() ([]model.AllowedFileType, error)
	GetByID(id int) (model.AllowedFileType, error)
	Create(record *model.AllowedFileType) error
}

type urlRepository struct {
	db *database.Instance
}

// NewUrlRepository creates a UrlRepository backed by the given database.
func NewUrlRepository(db *database.Instance) UrlRepository {
	return &urlRepository{db: db}
}

func (r *urlRepository) GetAll() ([]model.AllowedFileType, error) {
	var records []model.AllowedFileType
	if err := r.db.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *urlRepository) GetByID(id int) (model.AllowedFileType, error) {
	var record model.AllowedFileType
	err := r.db.First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return record, ErrNotFound
	}
	return record, err
}

func (r *urlRepository) Create(record *model.AllowedFileType) error {
	return r.db.Create(record).Error
}
