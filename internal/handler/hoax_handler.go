package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "hoaxify/internal/errors"
	"hoaxify/internal/model"
	"hoaxify/internal/repository"
	"hoaxify/internal/service"
)

// HoaxHandler serves hoax creation and the timeline.
type HoaxHandler struct {
	svc service.HoaxService
}

// NewHoaxHandler creates a hoax handler.
func NewHoaxHandler(svc service.HoaxService) *HoaxHandler {
	return &HoaxHandler{svc: svc}
}

// CreateHoaxRequest is the body of a new hoax.
type CreateHoaxRequest struct {
	Content *string `json:"content" validate:"required,min=10,max=5000"`
}

// CountResponse holds the number of newer hoaxes.
type CountResponse struct {
	Count int64 `json:"count"`
}

// Create godoc
// @Summary Post a hoax as the caller
// @Tags hoaxes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateHoaxRequest true "Hoax content"
// @Success 200 {object} model.HoaxView
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /hoaxes [post]
func (h *HoaxHandler) Create(c echo.Context) error {
	caller, ok := Caller(c)
	if !ok {
		return fail(apperrors.ErrUnauthorized)
	}

	var req CreateHoaxRequest
	if err := c.Bind(&req); err != nil {
		return fail(apperrors.NewValidationError(map[string]string{"body": "malformed JSON"}))
	}
	if err := c.Validate(&req); err != nil {
		return fail(err)
	}

	hoax, err := h.svc.Create(c.Request().Context(), caller.UserID, *req.Content)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, model.NewHoaxView(hoax))
}

// ListAll godoc
// @Summary List all hoaxes
// @Tags hoaxes
// @Produce json
// @Param page query int false "Page number, starting at 0"
// @Param size query int false "Page size (1-100)"
// @Param sort query string false "Sort, e.g. id,desc"
// @Success 200 {object} model.Page[model.HoaxView]
// @Router /hoaxes [get]
func (h *HoaxHandler) ListAll(c echo.Context) error {
	page, err := h.svc.ListAll(c.Request().Context(), pageRequest(c, repository.HoaxSortColumns))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, model.MapPage(page, model.NewHoaxView))
}

// ListForUser godoc
// @Summary List the hoaxes of one user
// @Tags hoaxes
// @Produce json
// @Param username path string true "Username"
// @Param page query int false "Page number, starting at 0"
// @Param size query int false "Page size (1-100)"
// @Param sort query string false "Sort, e.g. id,desc"
// @Success 200 {object} model.Page[model.HoaxView]
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /users/{username}/hoaxes [get]
func (h *HoaxHandler) ListForUser(c echo.Context) error {
	page, err := h.svc.ListForUser(c.Request().Context(), c.Param("username"), pageRequest(c, repository.HoaxSortColumns))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, model.MapPage(page, model.NewHoaxView))
}

// Relative godoc
// @Summary Hoaxes relative to a reference id
// @Description direction=after (default) returns every newer hoax as a list, or {count} with count=true.
// @Description Any other direction returns a page of older hoaxes, newest first.
// @Tags hoaxes
// @Produce json
// @Param id path int true "Reference hoax ID"
// @Param username path string false "Restrict to this user's hoaxes"
// @Param direction query string false "after or before" default(after)
// @Param count query bool false "Return only the number of newer hoaxes"
// @Param page query int false "Page number for direction=before"
// @Param size query int false "Page size for direction=before"
// @Success 200 {array} model.HoaxView
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /hoaxes/{id} [get]
// @Router /users/{username}/hoaxes/{id} [get]
func (h *HoaxHandler) Relative(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return fail(apperrors.ErrNotFound)
	}
	ctx := c.Request().Context()
	username := c.Param("username")

	direction := c.QueryParam("direction")
	if direction == "" {
		direction = "after"
	}
	if !strings.EqualFold(direction, "after") {
		page, err := h.svc.ListOlderThan(ctx, id, username, pageRequest(c, repository.HoaxSortColumns))
		if err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusOK, model.MapPage(page, model.NewHoaxView))
	}

	if count, _ := strconv.ParseBool(c.QueryParam("count")); count {
		n, err := h.svc.CountNewerThan(ctx, id, username)
		if err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusOK, CountResponse{Count: n})
	}

	newer, err := h.svc.ListNewerThan(ctx, id, username)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, model.NewHoaxViews(newer))
}
