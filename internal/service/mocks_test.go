package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"hoaxify/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == 0 {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, excludeID *uint64, page model.PageRequest) (model.Page[model.User], error) {
	args := m.Called(ctx, excludeID, page)
	return args.Get(0).(model.Page[model.User]), args.Error(1)
}

// MockHoaxRepository is a mock implementation of HoaxRepository.
type MockHoaxRepository struct {
	mock.Mock
}

func (m *MockHoaxRepository) Create(ctx context.Context, hoax *model.Hoax) error {
	args := m.Called(ctx, hoax)
	return args.Error(0)
}

func (m *MockHoaxRepository) FindAll(ctx context.Context, page model.PageRequest) (model.Page[model.Hoax], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(model.Page[model.Hoax]), args.Error(1)
}

func (m *MockHoaxRepository) FindByUser(ctx context.Context, userID uint64, page model.PageRequest) (model.Page[model.Hoax], error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).(model.Page[model.Hoax]), args.Error(1)
}

func (m *MockHoaxRepository) FindOlderThan(ctx context.Context, id uint64, userID *uint64, page model.PageRequest) (model.Page[model.Hoax], error) {
	args := m.Called(ctx, id, userID, page)
	return args.Get(0).(model.Page[model.Hoax]), args.Error(1)
}

func (m *MockHoaxRepository) FindNewerThan(ctx context.Context, id uint64, userID *uint64) ([]model.Hoax, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hoax), args.Error(1)
}

func (m *MockHoaxRepository) CountNewerThan(ctx context.Context, id uint64, userID *uint64) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockStorage is a mock implementation of storage.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Save(ctx context.Context, name string, data []byte) error {
	args := m.Called(ctx, name, data)
	return args.Error(0)
}

func (m *MockStorage) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint64, username string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, username, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint64, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint64), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
