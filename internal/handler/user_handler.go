package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "hoaxify/internal/errors"
	"hoaxify/internal/model"
	"hoaxify/internal/repository"
	"hoaxify/internal/service"
)

// UserHandler serves registration, the user directory and profile updates.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// RegisterRequest is a candidate user. Pointer fields tell a missing value
// apart from an empty one.
type RegisterRequest struct {
	Username    *string `json:"username" validate:"required,min=4,max=255"`
	DisplayName *string `json:"displayName" validate:"required,min=4,max=255"`
	Password    *string `json:"password" validate:"required,min=8,max=255,password"`
}

// UpdateUserRequest changes the caller's own profile. Image is base64 encoded.
type UpdateUserRequest struct {
	DisplayName *string `json:"displayName" validate:"required,min=4,max=255"`
	Image       string  `json:"image" validate:"image"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Candidate user"
// @Success 200 {object} GenericResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return fail(apperrors.NewValidationError(map[string]string{"body": "malformed JSON"}))
	}
	if err := c.Validate(&req); err != nil {
		return fail(err)
	}

	if _, err := h.svc.Register(c.Request().Context(), *req.Username, *req.DisplayName, *req.Password); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, GenericResponse{Message: "User saved"})
}

// List godoc
// @Summary List users except the caller
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, starting at 0"
// @Param size query int false "Page size (1-100)"
// @Param sort query string false "Sort, e.g. username,desc"
// @Success 200 {object} model.Page[model.UserView]
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	var excludeID *uint64
	if caller, ok := Caller(c); ok {
		excludeID = &caller.UserID
	}

	page, err := h.svc.List(c.Request().Context(), excludeID, pageRequest(c, repository.UserSortColumns))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, model.MapPage(page, model.NewUserView))
}

// GetByUsername godoc
// @Summary Get a user by username
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} model.UserView
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /users/{username} [get]
func (h *UserHandler) GetByUsername(c echo.Context) error {
	user, err := h.svc.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, model.NewUserView(user))
}

// Update godoc
// @Summary Update the caller's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Profile changes"
// @Success 200 {object} model.UserView
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	caller, ok := Caller(c)
	if !ok {
		return fail(apperrors.ErrUnauthorized)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return fail(err)
	}
	if caller.UserID != id {
		return fail(apperrors.ErrForbidden)
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return fail(apperrors.NewValidationError(map[string]string{"body": "malformed JSON"}))
	}
	if err := c.Validate(&req); err != nil {
		return fail(err)
	}

	patch := model.UserPatch{DisplayName: req.DisplayName}
	if req.Image != "" {
		patch.Image = &req.Image
	}
	user, err := h.svc.Update(c.Request().Context(), caller.UserID, id, patch)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, model.NewUserView(user))
}
