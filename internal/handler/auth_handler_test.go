package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hoaxify/internal/auth"
	apperrors "hoaxify/internal/errors"
	"hoaxify/internal/model"
	"hoaxify/internal/service"
)

func session() *service.Session {
	return &service.Session{
		User:         &model.User{ID: 1, Username: "user1", DisplayName: "display1", Image: "profile.png"},
		AccessToken:  "access",
		RefreshToken: "refresh",
	}
}

func TestAuthHandler_Login_Basic(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "user1", "P4ssword").Return(session(), nil)

	c, rec := newContext(newEcho(), http.MethodPost, "/api/1.0/login", "")
	c.Request().SetBasicAuth("user1", "P4ssword")

	require.NoError(t, NewAuthHandler(svc).Login(c))
	assert.JSONEq(t, `{
		"id": 1,
		"username": "user1",
		"displayName": "display1",
		"image": "profile.png",
		"token": "access",
		"refreshToken": "refresh"
	}`, rec.Body.String())
}

func TestAuthHandler_Login_JSON(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "user1", "P4ssword").Return(session(), nil)

	c, rec := newContext(newEcho(), http.MethodPost, "/api/1.0/login", `{"username":"user1","password":"P4ssword"}`)

	require.NoError(t, NewAuthHandler(svc).Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Login_Rejected(t *testing.T) {
	t.Run("no credentials", func(t *testing.T) {
		svc := new(MockAuthService)
		c, _ := newContext(newEcho(), http.MethodPost, "/api/1.0/login", "")

		body := shaped(t, NewAuthHandler(svc).Login(c))
		assert.Equal(t, http.StatusUnauthorized, body.StatusCode)
		svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "user1", "wrong").Return(nil, service.ErrInvalidCredentials)
		c, _ := newContext(newEcho(), http.MethodPost, "/api/1.0/login", "")
		c.Request().SetBasicAuth("user1", "wrong")

		body := shaped(t, NewAuthHandler(svc).Login(c))
		assert.Equal(t, http.StatusUnauthorized, body.StatusCode)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("RefreshToken", mock.Anything, "refresh").Return("new-access", nil)

	c, rec := newContext(newEcho(), http.MethodPost, "/api/1.0/auth/refresh", `{"refreshToken":"refresh"}`)

	require.NoError(t, NewAuthHandler(svc).Refresh(c))
	assert.JSONEq(t, `{"token":"new-access"}`, rec.Body.String())
}

func TestAuthHandler_Refresh_Missing(t *testing.T) {
	c, _ := newContext(newEcho(), http.MethodPost, "/api/1.0/auth/refresh", `{}`)

	body := shaped(t, NewAuthHandler(new(MockAuthService)).Refresh(c))
	assert.Equal(t, http.StatusBadRequest, body.StatusCode)
	assert.Contains(t, body.ValidationErrors, "refreshToken")
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Logout", mock.Anything, "refresh", mock.MatchedBy(func(c *auth.Claims) bool {
		return c.UserID == 1
	})).Return(nil)

	c, rec := newContext(newEcho(), http.MethodPost, "/api/1.0/auth/logout", `{"refreshToken":"refresh"}`)
	withCaller(c, 1, "user1")

	require.NoError(t, NewAuthHandler(svc).Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestAuthHandler_Logout_OtherUsersToken(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Logout", mock.Anything, "refresh", mock.Anything).Return(apperrors.ErrForbidden)

	c, _ := newContext(newEcho(), http.MethodPost, "/api/1.0/auth/logout", `{"refreshToken":"refresh"}`)
	withCaller(c, 1, "user1")

	body := shaped(t, NewAuthHandler(svc).Logout(c))
	assert.Equal(t, http.StatusForbidden, body.StatusCode)
}
