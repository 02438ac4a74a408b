package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hoaxify/internal/auth"
	"hoaxify/internal/cache"
	apperrors "hoaxify/internal/errors"
	"hoaxify/internal/logger"
	"hoaxify/internal/model"
	"hoaxify/internal/repository"
	"hoaxify/internal/storage"
	"hoaxify/internal/validation"
)

const userCacheTTL = 5 * time.Minute

// UserService covers registration, the user directory and profile updates.
type UserService interface {
	Register(ctx context.Context, username, displayName, password string) (*model.User, error)
	List(ctx context.Context, excludeID *uint64, page model.PageRequest) (model.Page[model.User], error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Update(ctx context.Context, callerID, id uint64, patch model.UserPatch) (*model.User, error)
}

type userService struct {
	repo   repository.UserRepository
	images storage.Storage
	cache  *cache.Client
	log    *logger.Logger
}

// NewUserService builds a UserService with repository, image storage and cache.
func NewUserService(repo repository.UserRepository, images storage.Storage, cache *cache.Client, log *logger.Logger) UserService {
	return &userService{repo: repo, images: images, cache: cache, log: log}
}

func (s *userService) cacheKey(username string) string {
	return fmt.Sprintf("user:%s", username)
}

// Register stores a new user with a salted password hash. The lookup only
// gives an early answer; the unique index on username decides concurrent races.
func (s *userService) Register(ctx context.Context, username, displayName, password string) (*model.User, error) {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateUsername
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: hashed,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.log.Infow("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *userService) List(ctx context.Context, excludeID *uint64, page model.PageRequest) (model.Page[model.User], error) {
	return s.repo.List(ctx, excludeID, page)
}

// GetByUsername returns the user or an error wrapping ErrNotFound. Found users
// are cached without their password hash.
func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(username), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, s.cacheKey(username), user, userCacheTTL)
	return user, nil
}

// Update applies patch to the caller's own profile. A new image is stored under
// a generated name and replaces the previous file.
func (s *userService) Update(ctx context.Context, callerID, id uint64, patch model.UserPatch) (*model.User, error) {
	if callerID != id {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.DisplayName != nil {
		user.DisplayName = *patch.DisplayName
	}

	previousImage, newImage := user.Image, ""
	if patch.Image != nil && *patch.Image != "" {
		data, ext, err := storage.DecodeImage(*patch.Image)
		if err != nil {
			return nil, apperrors.NewValidationError(map[string]string{"image": validation.MsgImage})
		}
		newImage = storage.NewFileName(ext)
		if err := s.images.Save(ctx, newImage, data); err != nil {
			return nil, fmt.Errorf("save profile image: %w", err)
		}
		user.Image = newImage
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if newImage != "" {
			s.removeImage(ctx, newImage)
		}
		return nil, err
	}
	if newImage != "" && previousImage != "" {
		s.removeImage(ctx, previousImage)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(user.Username))
	return user, nil
}

func (s *userService) removeImage(ctx context.Context, name string) {
	if err := s.images.Delete(ctx, name); err != nil {
		s.log.Warnw("failed to remove profile image", "image", name, "err", err)
	}
}
