package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "hoaxify/internal/errors"
	"hoaxify/internal/model"
)

// UserSortColumns maps accepted sort fields to user columns.
var UserSortColumns = map[string]string{
	"id":          "id",
	"username":    "username",
	"displayName": "display_name",
}

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context, excludeID *uint64, page model.PageRequest) (model.Page[model.User], error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts user. A unique-key violation on username yields ErrDuplicateUsername.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicateUsername
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Model(user).
		Select("display_name", "image").
		Updates(user).Error
	if err != nil {
		return fmt.Errorf("failed to update user id %d: %w", user.ID, err)
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err, fmt.Sprintf("user %d", id))
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err, "user "+username)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, excludeID *uint64, page model.PageRequest) (model.Page[model.User], error) {
	query := r.db.WithContext(ctx).Model(&model.User{})
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	return paginate[model.User](query, page)
}

// notFound converts gorm.ErrRecordNotFound into ErrNotFound naming what was missing.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, apperrors.ErrNotFound)
	}
	return fmt.Errorf("failed to find %s: %w", what, err)
}

// paginate counts the filtered rows, then fetches the requested window.
func paginate[T any](query *gorm.DB, page model.PageRequest, preload ...string) (model.Page[T], error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return model.Page[T]{}, fmt.Errorf("failed to count rows: %w", err)
	}

	var items []T
	if total > int64(page.Offset()) {
		fetch := query.Session(&gorm.Session{})
		for _, association := range preload {
			fetch = fetch.Preload(association)
		}
		err := fetch.Order(page.OrderBy()).
			Limit(page.Size).
			Offset(page.Offset()).
			Find(&items).Error
		if err != nil {
			return model.Page[T]{}, fmt.Errorf("failed to fetch page: %w", err)
		}
	}
	return model.NewPage(items, page, total), nil
}
