package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "hoaxify/internal/errors"
	"hoaxify/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest is the JSON alternative to HTTP Basic credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken *string `json:"refreshToken" validate:"required"`
}

// LoginResponse is the logged in user together with its tokens.
type LoginResponse struct {
	ID           uint64 `json:"id"`
	Username     string `json:"username"`
	DisplayName  string `json:"displayName"`
	Image        string `json:"image,omitempty"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// TokenResponse carries a fresh access token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary Log in with Basic credentials or a JSON body
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest false "Credentials when no Basic header is sent"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	username, password, ok := c.Request().BasicAuth()
	if !ok {
		var req LoginRequest
		if err := c.Bind(&req); err != nil || req.Username == "" {
			return fail(apperrors.ErrUnauthorized)
		}
		username, password = req.Username, req.Password
	}

	session, err := h.authService.Login(c.Request().Context(), username, password)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		ID:           session.User.ID,
		Username:     session.User.Username,
		DisplayName:  session.User.DisplayName,
		Image:        session.User.Image,
		Token:        session.AccessToken,
		RefreshToken: session.RefreshToken,
	})
}

// Refresh godoc
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return fail(apperrors.NewValidationError(map[string]string{"body": "malformed JSON"}))
	}
	if err := c.Validate(&req); err != nil {
		return fail(err)
	}

	accessToken, err := h.authService.RefreshToken(c.Request().Context(), *req.RefreshToken)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, TokenResponse{Token: accessToken})
}

// Logout godoc
// @Summary Log out and revoke the current tokens
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} GenericResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	caller, ok := Caller(c)
	if !ok {
		return fail(apperrors.ErrUnauthorized)
	}

	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return fail(apperrors.NewValidationError(map[string]string{"body": "malformed JSON"}))
	}
	if err := c.Validate(&req); err != nil {
		return fail(err)
	}

	if err := h.authService.Logout(c.Request().Context(), *req.RefreshToken, caller); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, GenericResponse{Message: "logged out successfully"})
}
