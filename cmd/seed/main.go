package main

import (
	"context"
	"errors"
	"fmt"

	"hoaxify/internal/config"
	"hoaxify/internal/db"
	apperrors "hoaxify/internal/errors"
	"hoaxify/internal/logger"
	"hoaxify/internal/repository"
	"hoaxify/internal/service"
)

const seedPassword = "P4ssword"

func main() {
	cfg := config.Load()
	log := logger.Get(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	log.Info("Starting seed script...")

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalw("Failed to connect to database", "error", err)
	}
	if err := db.Migrate(gormDB, false); err != nil {
		log.Fatalw("Failed to run migrations", "error", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	users := service.NewUserService(userRepo, nil, nil, log)
	hoaxes := service.NewHoaxService(repository.NewHoaxRepository(gormDB), userRepo)

	created, skipped, posted, err := seed(context.Background(), users, hoaxes, cfg.SeedUsers, cfg.SeedHoaxes)
	if err != nil {
		log.Fatalw("Failed to seed", "error", err)
	}

	log.Infow("Seed completed successfully",
		"users_created", created,
		"users_skipped", skipped,
		"hoaxes_created", posted,
	)
}

// seed registers user1..userN with display names display1..displayN and posts
// hoaxesPerUser hoaxes for each new user. Existing usernames are left alone.
func seed(ctx context.Context, users service.UserService, hoaxes service.HoaxService, userCount, hoaxesPerUser int) (created, skipped, posted int, err error) {
	for i := 1; i <= userCount; i++ {
		username := fmt.Sprintf("user%d", i)
		user, err := users.Register(ctx, username, fmt.Sprintf("display%d", i), seedPassword)
		if errors.Is(err, apperrors.ErrDuplicateUsername) {
			skipped++
			continue
		}
		if err != nil {
			return created, skipped, posted, fmt.Errorf("register %s: %w", username, err)
		}
		created++

		for j := 1; j <= hoaxesPerUser; j++ {
			content := fmt.Sprintf("hoax %d from %s", j, username)
			if _, err := hoaxes.Create(ctx, user.ID, content); err != nil {
				return created, skipped, posted, fmt.Errorf("post hoax for %s: %w", username, err)
			}
			posted++
		}
	}
	return created, skipped, posted, nil
}
