package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "carevo/internal/errors"
	"carevo/internal/model"
	"carevo/internal/service"
)

// UserHandler handles profile fetch and update endpoints.
type UserHandler struct {
	accounts service.AccountService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(accounts service.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// UpdateProfileRequest is a partial profile change. Absent keys leave the
// field unchanged. Unknown keys (including password or created_at) are
// rejected, so neither can be set through this endpoint.
type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	Institute   *string `json:"institute"`
	DOB         *string `json:"dob"`
	StudentType *string `json:"studentType"`
	Class       *string `json:"class"`
	Degree      *string `json:"degree"`
	Major       *string `json:"major"`
	Year        *string `json:"year"`
}

// GetProfile godoc
// @Summary Get a student profile
// @Tags user
// @Produce json
// @Param email query string true "Account email"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email query parameter is required")
	}

	user, err := h.accounts.GetProfile(c.Request().Context(), email)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update a student profile
// @Tags user
// @Accept json
// @Produce json
// @Param email query string true "Account email"
// @Param request body UpdateProfileRequest true "Partial profile fields"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email query parameter is required")
	}

	var req UpdateProfileRequest
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body: " + err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}

	patch := service.ProfileUpdate{
		Name:      req.Name,
		Institute: req.Institute,
		DOB:       req.DOB,
		Class:     req.Class,
		Degree:    req.Degree,
		Major:     req.Major,
		Year:      req.Year,
	}
	if req.StudentType != nil {
		st := model.StudentType(*req.StudentType)
		patch.StudentType = &st
	}

	user, err := h.accounts.UpdateProfile(c.Request().Context(), email, patch)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}
