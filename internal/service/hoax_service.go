package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "hoaxify/internal/errors"
	"hoaxify/internal/model"
	"hoaxify/internal/repository"
)

// HoaxService creates hoaxes and answers timeline queries. An empty username
// leaves a query unscoped; an unknown one fails with ErrNotFound before any
// hoax is read.
type HoaxService interface {
	Create(ctx context.Context, callerID uint64, content string) (*model.Hoax, error)
	ListAll(ctx context.Context, page model.PageRequest) (model.Page[model.Hoax], error)
	ListForUser(ctx context.Context, username string, page model.PageRequest) (model.Page[model.Hoax], error)
	ListOlderThan(ctx context.Context, id uint64, username string, page model.PageRequest) (model.Page[model.Hoax], error)
	ListNewerThan(ctx context.Context, id uint64, username string) ([]model.Hoax, error)
	CountNewerThan(ctx context.Context, id uint64, username string) (int64, error)
}

type hoaxService struct {
	hoaxes repository.HoaxRepository
	users  repository.UserRepository
	now    func() time.Time
}

// NewHoaxService creates a new hoax service.
func NewHoaxService(hoaxes repository.HoaxRepository, users repository.UserRepository) HoaxService {
	return &hoaxService{hoaxes: hoaxes, users: users, now: time.Now}
}

// Create stores content owned by the caller and stamped with the current time.
func (s *hoaxService) Create(ctx context.Context, callerID uint64, content string) (*model.Hoax, error) {
	owner, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	hoax := &model.Hoax{
		Content:   content,
		Timestamp: s.now(),
		UserID:    owner.ID,
	}
	if err := s.hoaxes.Create(ctx, hoax); err != nil {
		return nil, fmt.Errorf("create hoax: %w", err)
	}
	hoax.User = owner
	return hoax, nil
}

func (s *hoaxService) ListAll(ctx context.Context, page model.PageRequest) (model.Page[model.Hoax], error) {
	return s.hoaxes.FindAll(ctx, page)
}

func (s *hoaxService) ListForUser(ctx context.Context, username string, page model.PageRequest) (model.Page[model.Hoax], error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return model.Page[model.Hoax]{}, err
	}
	return s.hoaxes.FindByUser(ctx, user.ID, page)
}

func (s *hoaxService) ListOlderThan(ctx context.Context, id uint64, username string, page model.PageRequest) (model.Page[model.Hoax], error) {
	userID, err := s.scope(ctx, username)
	if err != nil {
		return model.Page[model.Hoax]{}, err
	}
	return s.hoaxes.FindOlderThan(ctx, id, userID, page)
}

func (s *hoaxService) ListNewerThan(ctx context.Context, id uint64, username string) ([]model.Hoax, error) {
	userID, err := s.scope(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.hoaxes.FindNewerThan(ctx, id, userID)
}

func (s *hoaxService) CountNewerThan(ctx context.Context, id uint64, username string) (int64, error) {
	userID, err := s.scope(ctx, username)
	if err != nil {
		return 0, err
	}
	return s.hoaxes.CountNewerThan(ctx, id, userID)
}

// scope resolves username to a user id; "" means no scope.
func (s *hoaxService) scope(ctx context.Context, username string) (*uint64, error) {
	if username == "" {
		return nil, nil
	}
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return &user.ID, nil
}
