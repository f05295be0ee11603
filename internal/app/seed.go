package app

import (
	"errors"

	"gorm.io/gorm"

	"hostreel_backend/internal/auth"
	"hostreel_backend/internal/config"
	"hostreel_backend/internal/logger"
	"hostreel_backend/internal/models"
)

// seedFirstAdmin creates the bootstrap admin account from environment
// configuration. No-op when unset or when the account already exists.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	var existing models.User
	err := db.First(&existing, "email = ?", cfg.FirstAdminEmail).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("Seeded first admin user", "email", cfg.FirstAdminEmail)
	return nil
}
