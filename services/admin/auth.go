package admin

import (
	"fmt"
	"time"

	"salonbook/config"
	adminRepo "salonbook/database/repository/admin"
	"salonbook/models"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenValidity matches the original one-day login window.
const tokenValidity = 24 * time.Hour

// DefaultAuthService implements AuthService over the admin repository.
type DefaultAuthService struct {
	Repo adminRepo.AdminRepository
}

// Authenticate verifies the username and password and issues a JWT bound to
// the admin's ID.
func (s *DefaultAuthService) Authenticate(username, password string) (string, error) {
	rec, err := s.Repo.GetByUsername(username)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch admin", zap.Error(err))
		return "", fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(rec.ID, tokenValidity)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// EnsureSeedAdmin creates the configured admin account if it does not exist
// yet. Admin accounts are only ever created this way.
func (s *DefaultAuthService) EnsureSeedAdmin() error {
	username := config.AppConfig.AdminUsername
	password := config.AppConfig.AdminPassword
	if username == "" || password == "" {
		utils.GetLogger().Warn("admin seed skipped: ADMIN_USERNAME/ADMIN_PASSWORD not configured")
		return nil
	}

	existing, err := s.Repo.GetByUsername(username)
	if err != nil {
		return fmt.Errorf("failed to check for seed admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	rec := &models.Admin{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(rec); err != nil {
		return fmt.Errorf("failed to create seed admin: %w", err)
	}

	utils.GetLogger().Info("seed admin created", zap.String("username", username))
	return nil
}
