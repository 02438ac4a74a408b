package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hoaxify/internal/model"
)

// HoaxSortColumns maps accepted sort fields to hoax columns.
var HoaxSortColumns = map[string]string{
	"id":        "id",
	"timestamp": "timestamp",
}

// HoaxRepository defines hoax persistence and timeline queries. A nil userID
// leaves a query unscoped.
type HoaxRepository interface {
	Create(ctx context.Context, hoax *model.Hoax) error
	FindAll(ctx context.Context, page model.PageRequest) (model.Page[model.Hoax], error)
	FindByUser(ctx context.Context, userID uint64, page model.PageRequest) (model.Page[model.Hoax], error)
	FindOlderThan(ctx context.Context, id uint64, userID *uint64, page model.PageRequest) (model.Page[model.Hoax], error)
	FindNewerThan(ctx context.Context, id uint64, userID *uint64) ([]model.Hoax, error)
	CountNewerThan(ctx context.Context, id uint64, userID *uint64) (int64, error)
}

type hoaxRepository struct {
	db *gorm.DB
}

// NewHoaxRepository builds a GORM-backed hoax repository.
func NewHoaxRepository(db *gorm.DB) HoaxRepository {
	return &hoaxRepository{db: db}
}

func (r *hoaxRepository) Create(ctx context.Context, hoax *model.Hoax) error {
	if err := r.db.WithContext(ctx).Omit("User").Create(hoax).Error; err != nil {
		return fmt.Errorf("failed to create hoax: %w", err)
	}
	return nil
}

func (r *hoaxRepository) FindAll(ctx context.Context, page model.PageRequest) (model.Page[model.Hoax], error) {
	return paginate[model.Hoax](r.db.WithContext(ctx).Model(&model.Hoax{}), page, "User")
}

func (r *hoaxRepository) FindByUser(ctx context.Context, userID uint64, page model.PageRequest) (model.Page[model.Hoax], error) {
	query := r.db.WithContext(ctx).Model(&model.Hoax{}).Where("user_id = ?", userID)
	return paginate[model.Hoax](query, page, "User")
}

// FindOlderThan pages through hoaxes with id < id, newest first.
func (r *hoaxRepository) FindOlderThan(ctx context.Context, id uint64, userID *uint64, page model.PageRequest) (model.Page[model.Hoax], error) {
	page.Sort, page.Desc = "id", true
	query := scoped(r.db.WithContext(ctx).Model(&model.Hoax{}).Where("id < ?", id), userID)
	return paginate[model.Hoax](query, page, "User")
}

// FindNewerThan returns every hoax with id > id, newest first.
func (r *hoaxRepository) FindNewerThan(ctx context.Context, id uint64, userID *uint64) ([]model.Hoax, error) {
	hoaxes := []model.Hoax{}
	err := scoped(r.db.WithContext(ctx).Where("id > ?", id), userID).
		Preload("User").
		Order("id desc").
		Find(&hoaxes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find hoaxes newer than %d: %w", id, err)
	}
	return hoaxes, nil
}

func (r *hoaxRepository) CountNewerThan(ctx context.Context, id uint64, userID *uint64) (int64, error) {
	var count int64
	err := scoped(r.db.WithContext(ctx).Model(&model.Hoax{}).Where("id > ?", id), userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count hoaxes newer than %d: %w", id, err)
	}
	return count, nil
}

func scoped(query *gorm.DB, userID *uint64) *gorm.DB {
	if userID == nil {
		return query
	}
	return query.Where("user_id = ?", *userID)
}
