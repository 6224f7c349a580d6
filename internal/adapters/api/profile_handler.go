package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"rainydays.app/internal/core/profile"
	"rainydays.app/pkg/errors"
)

// LoginRequest represents the body of POST /api/session
type LoginRequest struct {
	Username string `json:"username" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// CityRequest names a single city in profile mutations
type CityRequest struct {
	City string `json:"city" binding:"required,notblank"`
}

// SuccessResponse represents a success message structure for API responses
type SuccessResponse struct {
	Message string `json:"message"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// login handles POST /api/session
func (s *HTTPServerAdapter) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Invalid login request", "error", err)
		s.handleError(c, errors.NewValidationError("username and password are required"))
		return
	}

	session, err := s.profileUseCase.Login(c.Request.Context(), profile.LoginParams{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		slog.Error("Login failed", "error", err, "username", req.Username)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// logout handles DELETE /api/session
func (s *HTTPServerAdapter) logout(c *gin.Context) {
	if err := s.profileUseCase.Logout(c.Request.Context(), sessionToken(c)); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Logged out"})
}

// getProfile handles GET /api/profile
func (s *HTTPServerAdapter) getProfile(c *gin.Context) {
	current, err := s.profileUseCase.CurrentProfile(c.Request.Context(), sessionToken(c))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, current)
}

// addCity handles POST /api/profile/cities
func (s *HTTPServerAdapter) addCity(c *gin.Context) {
	var req CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, errors.NewValidationError("city is required"))
		return
	}

	updated, err := s.profileUseCase.AddCity(c.Request.Context(), sessionToken(c), req.City)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// removeCity handles DELETE /api/profile/cities/:city
func (s *HTTPServerAdapter) removeCity(c *gin.Context) {
	updated, err := s.profileUseCase.RemoveCity(c.Request.Context(), sessionToken(c), c.Param("city"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// selectCity handles PUT /api/profile/selected-city
func (s *HTTPServerAdapter) selectCity(c *gin.Context) {
	var req CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, errors.NewValidationError("city is required"))
		return
	}

	updated, err := s.profileUseCase.SelectCity(c.Request.Context(), sessionToken(c), req.City)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// suggestCities handles GET /api/profile/suggestions?q=
func (s *HTTPServerAdapter) suggestCities(c *gin.Context) {
	suggestions, err := s.profileUseCase.SuggestCities(c.Request.Context(), sessionToken(c), c.Query("q"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}
