package services

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nigelkyalo/mamacare-backend/internal/config"
	"github.com/nigelkyalo/mamacare-backend/internal/identity"
	"github.com/nigelkyalo/mamacare-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDefaultUser inserts the configured default account if it does
// not exist yet. Runs once at startup; checks by normalized email
// first, so repeated starts are idempotent.
func SeedDefaultUser(db *gorm.DB, cfg *config.Config) error {
	if cfg.SeedEmail == "" || cfg.SeedPassword == "" {
		return nil
	}

	email := identity.NormalizeEmail(cfg.SeedEmail)

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		slog.Info("default user already exists", "email", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	user := models.User{
		ID:           uuid.New(),
		FirstName:    cfg.SeedFirstName,
		LastName:     cfg.SeedLastName,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create default user: %w", err)
	}

	slog.Info("default user created", "email", email)
	return nil
}
