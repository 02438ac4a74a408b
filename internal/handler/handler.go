package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"hoaxify/internal/auth"
	apperrors "hoaxify/internal/errors"
	"hoaxify/internal/model"
)

// CallerKey is the echo context key holding the authenticated *auth.Claims.
const CallerKey = "caller"

// GenericResponse carries a plain confirmation message.
type GenericResponse struct {
	Message string `json:"message"`
}

// Caller returns the claims of the authenticated user, if any.
func Caller(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(CallerKey).(*auth.Claims)
	return claims, ok && claims != nil
}

// fail maps a domain error to an echo error whose message is the shaped
// *apperrors.HTTPError; the router's error handler renders it.
func fail(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr).SetInternal(err)
}

// pageRequest reads page, size and sort from the query string.
func pageRequest(c echo.Context, sortable map[string]string) model.PageRequest {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	return model.NewPageRequest(page, size).WithSort(c.QueryParam("sort"), sortable)
}

func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError(map[string]string{name: "must be a positive number"})
	}
	return id, nil
}
