package profile

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"rainydays.app/internal/core/weather"
	"rainydays.app/internal/ports"
	"rainydays.app/pkg/errors"
	"rainydays.app/pkg/validation"
)

type UseCase struct {
	profiles ports.ProfileRepository
	sessions ports.SessionStore
	config   ports.ConfigProvider
	logger   ports.Logger
	now      func() time.Time
}

type UseCaseDependencies struct {
	ProfileRepo  ports.ProfileRepository
	SessionStore ports.SessionStore
	Config       ports.ConfigProvider
	Logger       ports.Logger
	// Clock defaults to time.Now
	Clock func() time.Time
}

type LoginParams struct {
	Username string
	Password string
	Email    string
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.ProfileRepo == nil {
		return nil, errors.NewValidationError("profile repository is required")
	}
	if deps.SessionStore == nil {
		return nil, errors.NewValidationError("session store is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &UseCase{
		profiles: deps.ProfileRepo,
		sessions: deps.SessionStore,
		config:   deps.Config,
		logger:   deps.Logger,
		now:      clock,
	}, nil
}

func (uc *UseCase) validateLoginParams(params LoginParams) error {
	if !validation.IsNotEmpty(params.Username) {
		return errors.NewValidationError("username is required")
	}
	if !validation.IsNotEmpty(params.Password) {
		return errors.NewValidationError("password is required")
	}
	if params.Email != "" && !validation.IsValidEmail(params.Email) {
		return errors.NewValidationError("invalid email format")
	}
	return nil
}

// Login opens a session for any non-empty username and password. Credentials
// are not checked; the first login creates the profile with the default cities.
func (uc *UseCase) Login(ctx context.Context, params LoginParams) (*Session, error) {
	if err := uc.validateLoginParams(params); err != nil {
		return nil, err
	}

	username, _ := validation.TrimAndValidate(params.Username)
	now := uc.now()
	sessionConfig := uc.config.GetSessionConfig()

	existing, err := uc.profiles.FindByUsername(ctx, username)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	var profile *Profile
	if existing == nil {
		profile = NewProfile(username, params.Email, sessionConfig.DefaultCities, sessionConfig.DefaultCity, now)
		data := uc.convertToPortsProfile(profile)
		if err := uc.profiles.Save(ctx, data); err != nil {
			return nil, fmt.Errorf("save profile: %w", err)
		}
		profile.ID = data.ID
		uc.logger.Info("Profile created", ports.F("username", username))
	} else {
		existing.LoginTimestamp = now
		if params.Email != "" {
			existing.Email = params.Email
		}
		if err := uc.profiles.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
		profile = uc.convertFromPortsProfile(existing)
	}

	token := uuid.NewString()
	session := &ports.SessionData{
		Token:          token,
		Username:       username,
		LoginTimestamp: now,
	}
	if err := uc.sessions.Save(ctx, session, sessionConfig.Duration); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	uc.logger.Debug("Session opened", ports.F("username", username))
	return &Session{
		Token:     token,
		Profile:   profile,
		ExpiresAt: now.Add(sessionConfig.Duration),
	}, nil
}

// Logout closes the session. Closing an unknown session is not an error.
func (uc *UseCase) Logout(ctx context.Context, token string) error {
	if !validation.IsNotEmpty(token) {
		return errors.NewValidationError("session token is required")
	}

	if err := uc.sessions.Delete(ctx, token); err != nil && !errors.IsNotFoundError(err) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// CurrentProfile returns the profile behind a session and extends the session
func (uc *UseCase) CurrentProfile(ctx context.Context, token string) (*Profile, error) {
	profile, err := uc.authorize(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := uc.profiles.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return uc.convertFromPortsProfile(profile), nil
}

// AddCity appends a supported city to the profile
func (uc *UseCase) AddCity(ctx context.Context, token, city string) (*Profile, error) {
	data, err := uc.authorize(ctx, token)
	if err != nil {
		return nil, err
	}
	if !weather.IsKnownCity(city) {
		return nil, errors.NewCityNotFoundError(city)
	}

	profile := uc.convertFromPortsProfile(data)
	if err := profile.AddCity(city); err != nil {
		return nil, uc.mapProfileError(err, city)
	}

	return uc.save(ctx, profile)
}

// RemoveCity drops a city from the profile, keeping at least one
func (uc *UseCase) RemoveCity(ctx context.Context, token, city string) (*Profile, error) {
	data, err := uc.authorize(ctx, token)
	if err != nil {
		return nil, err
	}

	profile := uc.convertFromPortsProfile(data)
	if err := profile.RemoveCity(city); err != nil {
		return nil, uc.mapProfileError(err, city)
	}

	return uc.save(ctx, profile)
}

// SelectCity changes which of the profile's cities is shown first
func (uc *UseCase) SelectCity(ctx context.Context, token, city string) (*Profile, error) {
	data, err := uc.authorize(ctx, token)
	if err != nil {
		return nil, err
	}

	profile := uc.convertFromPortsProfile(data)
	if err := profile.SelectCity(city); err != nil {
		return nil, uc.mapProfileError(err, city)
	}

	return uc.save(ctx, profile)
}

// SuggestCities lists supported cities matching query that the profile lacks
func (uc *UseCase) SuggestCities(ctx context.Context, token, query string) ([]string, error) {
	data, err := uc.authorize(ctx, token)
	if err != nil {
		return nil, err
	}
	return weather.SuggestCities(query, data.CustomCities, weather.DefaultSuggestionLimit), nil
}

func (uc *UseCase) authorize(ctx context.Context, token string) (*ports.ProfileData, error) {
	if !validation.IsNotEmpty(token) {
		return nil, errors.NewUnauthorizedError("session token is required")
	}

	session, err := uc.sessions.Get(ctx, token)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("session not found")
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	now := uc.now()
	duration := uc.config.GetSessionConfig().Duration
	if IsExpired(session.LoginTimestamp, duration, now) {
		if err := uc.sessions.Delete(ctx, token); err != nil {
			uc.logger.Warn("Failed to delete expired session",
				ports.F("username", session.Username),
				ports.F("error", err))
		}
		return nil, errors.NewUnauthorizedError("session expired")
	}

	profile, err := uc.profiles.FindByUsername(ctx, session.Username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("session refers to a missing profile")
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	session.LoginTimestamp = now
	if err := uc.sessions.Save(ctx, session, duration); err != nil {
		uc.logger.Warn("Failed to extend session",
			ports.F("username", session.Username),
			ports.F("error", err))
	}
	profile.LoginTimestamp = now

	return profile, nil
}

func (uc *UseCase) save(ctx context.Context, profile *Profile) (*Profile, error) {
	if err := profile.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid profile: " + err.Error())
	}

	profile.UpdatedAt = uc.now()
	if err := uc.profiles.Update(ctx, uc.convertToPortsProfile(profile)); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	uc.logger.Debug("Profile updated",
		ports.F("username", profile.Username),
		ports.F("cities", profile.CustomCities),
		ports.F("selected_city", profile.SelectedCity))
	return profile, nil
}

func (uc *UseCase) mapProfileError(err error, city string) error {
	switch {
	case stderrors.Is(err, ErrCityAlreadyAdded):
		return errors.NewAlreadyExistsError(fmt.Sprintf("city %s is already in the profile", city))
	case stderrors.Is(err, ErrCityNotInProfile):
		return errors.NewNotFoundError(fmt.Sprintf("city %s is not in the profile", city))
	case stderrors.Is(err, ErrLastCity):
		return errors.NewValidationError("cannot remove the last city")
	default:
		return err
	}
}

func (uc *UseCase) convertToPortsProfile(profile *Profile) *ports.ProfileData {
	cities := make([]string, len(profile.CustomCities))
	copy(cities, profile.CustomCities)

	return &ports.ProfileData{
		ID:             profile.ID,
		Username:       profile.Username,
		Email:          profile.Email,
		CustomCities:   cities,
		SelectedCity:   profile.SelectedCity,
		LoginTimestamp: profile.LoginTimestamp,
		CreatedAt:      profile.CreatedAt,
		UpdatedAt:      profile.UpdatedAt,
	}
}

func (uc *UseCase) convertFromPortsProfile(data *ports.ProfileData) *Profile {
	cities := make([]string, len(data.CustomCities))
	copy(cities, data.CustomCities)

	return &Profile{
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
