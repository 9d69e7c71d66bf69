package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadrop-backend/internal/database"
	"datadrop-backend/internal/model"
)

func TestUserRepository_FindByGoogleID(t *testing.T) {
	repo := NewUserRepository(testDB)

	got, err := repo.FindByGoogleID(database.TestUser.GoogleID)
	require.NoError(t, err)
	assert.Equal(t, database.TestUser.ID, got.ID)
	assert.Equal(t, database.TestUser.Email, got.Email)
}

func TestUserRepository_FindByGoogleIDMissing(t *testing.T) {
	repo := NewUserRepository(testDB)

	_, err := repo.FindByGoogleID("google_does_not_exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo := NewUserRepository(testDB)

	got, err := repo.FindByEmail(database.TestUser.Email)
	require.NoError(t, err)
	assert.Equal(t, database.TestUser.GoogleID, got.GoogleID)

	_, err = repo.FindByEmail("missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_SaveAssignsID(t *testing.T) {
	repo := NewUserRepository(testDB)

	user := model.User{Name: "New User", Email: "new@example.com", GoogleID: "google_new_001"}
	require.NoError(t, repo.Save(&user))
	assert.NotZero(t, user.ID)
}

func TestAccessTokenRepository_SaveAppends(t *testing.T) {
	tokens := NewAccessTokenRepository(testDB)

	row := model.AccessToken{
		UserID:       database.TestUser.ID,
		AccessToken:  "tok-1",
		RefreshToken: "ref-1",
		ExpiresIn:    3600,
	}
	require.NoError(t, tokens.Save(&row))
	require.NotZero(t, row.ID)
	assert.False(t, row.CreatedAt.IsZero(), "created_at should be set on insert")

	// a second save appends, never updates
	again := model.AccessToken{UserID: database.TestUser.ID, AccessToken: "tok-2", ExpiresIn: 0}
	require.NoError(t, tokens.Save(&again))
	assert.NotEqual(t, row.ID, again.ID)
}
