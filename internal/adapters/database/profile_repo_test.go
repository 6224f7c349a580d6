package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"rainydays.app/internal/ports"
	"rainydays.app/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&ProfileModel{})
	require.NoError(t, err)

	return db
}

func newProfileData(username string) *ports.ProfileData {
	return &ports.ProfileData{
		Username:       username,
		Email:          username + "@example.com",
		CustomCities:   []string{"Mexicali", "Tijuana", "Madrid"},
		SelectedCity:   "Mexicali",
		LoginTimestamp: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
	}
}

func TestProfileRepository_SaveAndFind(t *testing.T) {
	repo := NewProfileRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	profile := newProfileData("ana")
	require.NoError(t, repo.Save(ctx, profile))
	assert.NotZero(t, profile.ID)
	assert.False(t, profile.CreatedAt.IsZero())

	found, err := repo.FindByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, found.ID)
	assert.Equal(t, "ana@example.com", found.Email)
	assert.Equal(t, []string{"Mexicali", "Tijuana", "Madrid"}, found.CustomCities)
	assert.Equal(t, "Mexicali", found.SelectedCity)
	assert.True(t, profile.LoginTimestamp.Equal(found.LoginTimestamp))
}

func TestProfileRepository_FindByUsername_NotFound(t *testing.T) {
	repo := NewProfileRepositoryAdapter(setupTestDB(t))

	found, err := repo.FindByUsername(context.Background(), "nobody")

	assert.Nil(t, found)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestProfileRepository_FindByUsername_IsCaseSensitive(t *testing.T) {
	repo := NewProfileRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, newProfileData("ana")))

	_, err := repo.FindByUsername(ctx, "Ana")

	assert.True(t, errors.IsNotFoundError(err))
}

func TestProfileRepository_Save_Duplicate(t *testing.T) {
	repo := NewProfileRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, newProfileData("ana")))

	err := repo.Save(ctx, newProfileData("ana"))

	assert.True(t, errors.IsAlreadyExistsError(err))
}

func TestProfileRepository_Update(t *testing.T) {
	repo := NewProfileRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	profile := newProfileData("ana")
	require.NoError(t, repo.Save(ctx, profile))

	profile.CustomCities = []string{"Madrid", "Beijing"}
	profile.SelectedCity = "Beijing"
	profile.LoginTimestamp = profile.LoginTimestamp.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, profile))

	found, err := repo.FindByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, []string{"Madrid", "Beijing"}, found.CustomCities)
	assert.Equal(t, "Beijing", found.SelectedCity)
	assert.True(t, profile.LoginTimestamp.Equal(found.LoginTimestamp))
	assert.Equal(t, "ana", found.Username)
}

func TestProfileRepository_Update_Missing(t *testing.T) {
	repo := NewProfileRepositoryAdapter(setupTestDB(t))
	profile := newProfileData("ghost")
	profile.ID = 42

	err := repo.Update(context.Background(), profile)

	assert.True(t, errors.IsNotFoundError(err))
}

func TestProfileRepository_Validation(t *testing.T) {
	repo := NewProfileRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByUsername(ctx, "")
	assert.True(t, errors.IsValidationError(err))

	assert.True(t, errors.IsValidationError(repo.Save(ctx, nil)))
	assert.True(t, errors.IsValidationError(repo.Update(ctx, nil)))
	assert.True(t, errors.IsValidationError(repo.Update(ctx, newProfileData("ana"))))

	stored := newProfileData("ana")
	stored.ID = 7
	assert.True(t, errors.IsValidationError(repo.Save(ctx, stored)))
}
