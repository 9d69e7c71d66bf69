package repository

import (
	"errors"

	"gorm.io/gorm"

	"datadrop-backend/internal/database"
	"datadrop-backend/internal/model"
)

// UserRepository persists user records keyed by the provider's subject id.
type UserRepository interface {
	FindByGoogleID(googleID string) (model.User, error)
	FindByEmail(email string) (model.User, error)
	Save(user *model.User) error
}

type userRepository struct {
	db *database.Instance
}

// NewUserRepository creates a UserRepository backed by the given database.
func NewUserRepository(db *database.Instance) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByGoogleID(googleID string) (model.User, error) {
	var user model.User
	err := r.db.Where("google_id = ?", googleID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, ErrNotFound
	}
	return user, err
}

func (r *userRepository) FindByEmail(email string) (model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, ErrNotFound
	}
	return user, err
}

func (r *userRepository) Save(user *model.User) error {
	return r.db.Save(user).Error
}

// AccessTokenRepository appends exchanged provider tokens. There are no reads:
// rows exist for auditing and are never consulted by request paths.
type AccessTokenRepository interface {
	Save(token *model.AccessToken) error
}

type accessTokenRepository struct {
	db *database.Instance
}

// NewAccessTokenRepository creates an AccessTokenRepository backed by the given database.
func NewAccessTokenRepository(db *database.Instance) AccessTokenRepository {
	return &accessTokenRepository{db: db}
}

func (r *accessTokenRepository) Save(token *model.AccessToken) error {
	return r.db.Create(token).Error
}
