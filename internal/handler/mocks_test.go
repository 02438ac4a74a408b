package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hoaxify/internal/auth"
	"hoaxify/internal/model"
	"hoaxify/internal/service"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username, displayName, password string) (*model.User, error) {
	args := m.Called(ctx, username, displayName, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, excludeID *uint64, page model.PageRequest) (model.Page[model.User], error) {
	args := m.Called(ctx, excludeID, page)
	return args.Get(0).(model.Page[model.User]), args.Error(1)
}

func (m *MockUserService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, callerID, id uint64, patch model.UserPatch) (*model.User, error) {
	args := m.Called(ctx, callerID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockHoaxService struct {
	mock.Mock
}

func (m *MockHoaxService) Create(ctx context.Context, callerID uint64, content string) (*model.Hoax, error) {
	args := m.Called(ctx, callerID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hoax), args.Error(1)
}

func (m *MockHoaxService) ListAll(ctx context.Context, page model.PageRequest) (model.Page[model.Hoax], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(model.Page[model.Hoax]), args.Error(1)
}

func (m *MockHoaxService) ListForUser(ctx context.Context, username string, page model.PageRequest) (model.Page[model.Hoax], error) {
	args := m.Called(ctx, username, page)
	return args.Get(0).(model.Page[model.Hoax]), args.Error(1)
}

func (m *MockHoaxService) ListOlderThan(ctx context.Context, id uint64, username string, page model.PageRequest) (model.Page[model.Hoax], error) {
	args := m.Called(ctx, id, username, page)
	return args.Get(0).(model.Page[model.Hoax]), args.Error(1)
}

func (m *MockHoaxService) ListNewerThan(ctx context.Context, id uint64, username string) ([]model.Hoax, error) {
	args := m.Called(ctx, id, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hoax), args.Error(1)
}

func (m *MockHoaxService) CountNewerThan(ctx context.Context, id uint64, username string) (int64, error) {
	args := m.Called(ctx, id, username)
	return args.Get(0).(int64), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*service.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Session), args.Error(1)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string, access *auth.Claims) error {
	args := m.Called(ctx, refreshToken, access)
	return args.Error(0)
}

func (m *MockAuthService) VerifyAccessToken(ctx context.Context, token string) (*auth.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}
