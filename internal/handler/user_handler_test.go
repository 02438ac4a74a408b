package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "hoaxify/internal/errors"
	"hoaxify/internal/model"
	"hoaxify/internal/validation"
)

func TestUserHandler_Register(t *testing.T) {
	svc := new(MockUserService)
	svc.On("Register", mock.Anything, "user1", "display1", "P4ssword").Return(&model.User{ID: 1}, nil)

	c, rec := newContext(newEcho(), http.MethodPost, "/api/1.0/users",
		`{"username":"user1","displayName":"display1","password":"P4ssword"}`)

	require.NoError(t, NewUserHandler(svc).Register(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User saved"}`, rec.Body.String())
}

func TestUserHandler_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields map[string]string
	}{
		{
			name: "null fields",
			body: `{}`,
			fields: map[string]string{
				"username":    validation.MsgRequired,
				"displayName": validation.MsgRequired,
				"password":    validation.MsgRequired,
			},
		},
		{
			name: "short username",
			body: `{"username":"abc","displayName":"display1","password":"P4ssword"}`,
			fields: map[string]string{
				"username": "It must have minimum 4 and maximum 255 characters",
			},
		},
		{
			name: "long display name",
			body: `{"username":"user1","displayName":"` + strings.Repeat("a", 256) + `","password":"P4ssword"}`,
			fields: map[string]string{
				"displayName": "It must have minimum 4 and maximum 255 characters",
			},
		},
		{
			name: "all lowercase password",
			body: `{"username":"user1","displayName":"display1","password":"alllowercase"}`,
			fields: map[string]string{
				"password": validation.MsgPasswordPattern,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUserService)
			c, _ := newContext(newEcho(), http.MethodPost, "/api/1.0/users", tt.body)

			body := shaped(t, NewUserHandler(svc).Register(c))

			assert.Equal(t, http.StatusBadRequest, body.StatusCode)
			assert.Equal(t, tt.fields, body.ValidationErrors)
			svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUserHandler_Register_Duplicate(t *testing.T) {
	svc := new(MockUserService)
	svc.On("Register", mock.Anything, "user1", "display1", "P4ssword").Return(nil, apperrors.ErrDuplicateUsername)

	c, _ := newContext(newEcho(), http.MethodPost, "/api/1.0/users",
		`{"username":"user1","displayName":"display1","password":"P4ssword"}`)

	body := shaped(t, NewUserHandler(svc).Register(c))

	assert.Equal(t, http.StatusBadRequest, body.StatusCode)
	assert.Equal(t, "This name is in use", body.ValidationErrors["username"])
}

func TestUserHandler_List_ExcludesCaller(t *testing.T) {
	tests := []struct {
		name      string
		caller    bool
		excludeID *uint64
	}{
		{name: "anonymous"},
		{name: "logged in", caller: true, excludeID: func() *uint64 { id := uint64(3); return &id }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUserService)
			page := model.NewPageRequest(1, 2)
			users := []model.User{{ID: 4, Username: "user4", DisplayName: "display4", PasswordHash: "secret"}}
			svc.On("List", mock.Anything, tt.excludeID, page).Return(model.NewPage(users, page, 3), nil)

			c, rec := newContext(newEcho(), http.MethodGet, "/api/1.0/users?page=1&size=2", "")
			if tt.caller {
				withCaller(c, 3, "user3")
			}

			require.NoError(t, NewUserHandler(svc).List(c))

			var got map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, float64(3), got["totalElements"])
			assert.NotContains(t, rec.Body.String(), "secret")
			assert.NotContains(t, rec.Body.String(), "password")
			svc.AssertExpectations(t)
		})
	}
}

func TestUserHandler_GetByUsername_NotFound(t *testing.T) {
	svc := new(MockUserService)
	svc.On("GetByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)

	c, _ := newContext(newEcho(), http.MethodGet, "/api/1.0/users/ghost", "")
	c.SetParamNames("username")
	c.SetParamValues("ghost")

	body := shaped(t, NewUserHandler(svc).GetByUsername(c))
	assert.Equal(t, http.StatusNotFound, body.StatusCode)
}

func TestUserHandler_Update(t *testing.T) {
	tests := []struct {
		name       string
		callerID   uint64
		pathID     string
		body       string
		wantStatus int
	}{
		{name: "other user", callerID: 1, pathID: "2", body: `{"displayName":"new-name"}`, wantStatus: http.StatusForbidden},
		{name: "short display name", callerID: 1, pathID: "1", body: `{"displayName":"abc"}`, wantStatus: http.StatusBadRequest},
		{name: "text image", callerID: 1, pathID: "1", body: `{"displayName":"new-name","image":"aGVsbG8gd29ybGQ="}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUserService)
			c, _ := newContext(newEcho(), http.MethodPut, "/api/1.0/users/"+tt.pathID, tt.body)
			c.SetParamNames("id")
			c.SetParamValues(tt.pathID)
			withCaller(c, tt.callerID, "user1")

			body := shaped(t, NewUserHandler(svc).Update(c))

			assert.Equal(t, tt.wantStatus, body.StatusCode)
			svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUserHandler_Update_DisplayName(t *testing.T) {
	svc := new(MockUserService)
	name := "new-name"
	svc.On("Update", mock.Anything, uint64(1), uint64(1), model.UserPatch{DisplayName: &name}).
		Return(&model.User{ID: 1, Username: "user1", DisplayName: name}, nil)

	c, rec := newContext(newEcho(), http.MethodPut, "/api/1.0/users/1", `{"displayName":"new-name"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	withCaller(c, 1, "user1")

	require.NoError(t, NewUserHandler(svc).Update(c))
	assert.JSONEq(t, `{"id":1,"username":"user1","displayName":"new-name"}`, rec.Body.String())
}

func TestUserHandler_Update_Anonymous(t *testing.T) {
	c, _ := newContext(newEcho(), http.MethodPut, "/api/1.0/users/1", `{"displayName":"new-name"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	body := shaped(t, NewUserHandler(new(MockUserService)).Update(c))
	assert.Equal(t, http.StatusUnauthorized, body.StatusCode)
}
