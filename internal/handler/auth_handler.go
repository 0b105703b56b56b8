package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "carevo/internal/errors"
	"carevo/internal/model"
	"carevo/internal/service"
)

// AuthHandler handles signup and login endpoints.
type AuthHandler struct {
	accounts service.AccountService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(accounts service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// SignupRequest represents a student registration request. Field
// requirements, password presence included, are checked by the account
// service and profile validator, which report every offending field at
// once; no binding-level rules apply on top.
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Institute   string `json:"institute"`
	DOB         string `json:"dob"`
	StudentType string `json:"studentType"`
	Class       string `json:"class"`
	Degree      string `json:"degree"`
	Major       string `json:"major"`
	Year        string `json:"year"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup godoc
// @Summary Register a new student account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.accounts.Signup(c.Request().Context(), service.SignupInput{
		Profile: service.ProfileInput{
			Email:       req.Email,
			Name:        req.Name,
			Institute:   req.Institute,
			DOB:         req.DOB,
			StudentType: model.StudentType(req.StudentType),
			Class:       req.Class,
			Degree:      req.Degree,
			Major:       req.Major,
			Year:        req.Year,
		},
		Password: req.Password,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "account created successfully",
		"user":    user,
	})
}

// Login godoc
// @Summary Authenticate a student
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "login successful",
		"user":    user,
	})
}

// toHTTPError translates a domain error into an echo HTTP error.
func toHTTPError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
