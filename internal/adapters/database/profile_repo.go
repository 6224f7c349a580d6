package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"rainydays.app/internal/ports"
	"rainydays.app/pkg/errors"
)

// ProfileModel represents the database model for user profiles
type ProfileModel struct {
	ID             uint     `gorm:"primaryKey"`
	Username       string   `gorm:"uniqueIndex;not null"`
	Email          string   `gorm:"not null;default:''"`
	CustomCities   []string `gorm:"serializer:json;not null"`
	SelectedCity   string   `gorm:"not null"`
	LoginTimestamp time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ProfileModel) TableName() string {
	return "profiles"
}

// ProfileRepositoryAdapter implements the ProfileRepository port using GORM
type ProfileRepositoryAdapter struct {
	db *gorm.DB
}

func NewProfileRepositoryAdapter(db *gorm.DB) ports.ProfileRepository {
	return &ProfileRepositoryAdapter{db: db}
}

// FindByUsername retrieves a profile by its unique username
func (r *ProfileRepositoryAdapter) FindByUsername(ctx context.Context, username string) (*ports.ProfileData, error) {
	if username == "" {
		return nil, errors.NewValidationError("username cannot be empty")
	}

	var model ProfileModel
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("profile not found")
		}
		return nil, errors.NewDatabaseError("failed to find profile", result.Error)
	}

	return r.modelToData(&model), nil
}

// Save creates a new profile and sets its ID
func (r *ProfileRepositoryAdapter) Save(ctx context.Context, profile *ports.ProfileData) error {
	if profile == nil {
		return errors.NewValidationError("profile cannot be nil")
	}
	if profile.ID != 0 {
		return errors.NewValidationError("profile is already stored")
	}

	model := r.dataToModel(profile)
	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errors.NewAlreadyExistsError("profile already exists")
		}
		return errors.NewDatabaseError("failed to save profile", result.Error)
	}

	profile.ID = model.ID
	profile.CreatedAt = model.CreatedAt
	profile.UpdatedAt = model.UpdatedAt
	return nil
}

// Update overwrites an existing profile
func (r *ProfileRepositoryAdapter) Update(ctx context.Context, profile *ports.ProfileData) error {
	if profile == nil {
		return errors.NewValidationError("profile cannot be nil")
	}
	if profile.ID == 0 {
		return errors.NewValidationError("profile ID cannot be zero for update")
	}

	model := r.dataToModel(profile)
	result := r.db.WithContext(ctx).
		Model(&ProfileModel{ID: profile.ID}).
		Select("Email", "CustomCities", "SelectedCity", "LoginTimestamp", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to update profile", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("profile not found")
	}

	return nil
}

func (r *ProfileRepositoryAdapter) dataToModel(data *ports.ProfileData) *ProfileModel {
	cities := make([]string, len(data.CustomCities))
	copy(cities, data.CustomCities)

	return &ProfileModel{
		ID:             data.ID,
		Username:       data.Username,
		Email:          data.Email,
		CustomCities:   cities,
		SelectedCity:   data.SelectedCity,
		LoginTimestamp: data.LoginTimestamp,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func (r *ProfileRepositoryAdapter) modelToData(model *ProfileModel) *ports.ProfileData {
	return &ports.ProfileData{
		ID:             model.ID,
		Username:       model.Username,
		Email:          model.Email,
		CustomCities:   model.CustomCities,
		SelectedCity:   model.SelectedCity,
		LoginTimestamp: model.LoginTimestamp,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}
