package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "hoaxify/internal/errors"
	"hoaxify/internal/logger"
)

// ErrorHandler renders every error as an ApiError body carrying the request path.
func ErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := errorResponse(err, c.Request().URL.Path)
		if resp.Status >= http.StatusInternalServerError {
			log.Errorw("request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(resp.Status)
		} else {
			writeErr = c.JSON(resp.Status, resp)
		}
		if writeErr != nil {
			log.Warnw("write error response", "error", writeErr)
		}
	}
}

func errorResponse(err error, path string) apperrors.ErrorResponse {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return apperrors.MapErrorToHTTP(err).ToErrorResponse(path)
	}
	if shaped, ok := he.Message.(*apperrors.HTTPError); ok {
		return shaped.ToErrorResponse(path)
	}

	message := http.StatusText(he.Code)
	if s, ok := he.Message.(string); ok && s != "" {
		message = s
	} else if he.Message != nil {
		message = fmt.Sprint(he.Message)
	}
	if he.Code >= http.StatusInternalServerError {
		message = "internal server error"
	}
	return apperrors.NewHTTPError(he.Code, message, "").ToErrorResponse(path)
}
