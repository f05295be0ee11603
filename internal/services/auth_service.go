package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"gorm.io/gorm"

	"hostreel_backend/internal/auth"
	"hostreel_backend/internal/config"
	"hostreel_backend/internal/models"
	"hostreel_backend/internal/repositories"
	"hostreel_backend/internal/services/dto"
	"hostreel_backend/pkg/apperrors"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest, userAgent, ip string) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest, userAgent, ip string) (*dto.AuthResponse, error)
	Refresh(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error)
	Logout(db *gorm.DB, refreshToken string, everywhere bool) error
	GetCurrentUser(db *gorm.DB, userID string) (*dto.UserInfo, error)
}

type authService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
}

func NewAuthService(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository) AuthService {
	return &authService{userRepo: userRepo, sessionRepo: sessionRepo}
}

func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest, userAgent, ip string) (*dto.AuthResponse, error) {
	exists, err := s.userRepo.EmailExists(db, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.EmailAlreadyRegistered()
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         models.UserRoleOwner,
		Status:       models.UserStatusActive,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(db, user, userAgent, ip)
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest, userAgent, ip string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, apperrors.InvalidCredentials()
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.InvalidCredentials()
	}
	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.NewForbiddenError("Account is suspended")
	}

	return s.issueTokens(db, user, userAgent, ip)
}

// Refresh exchanges a live refresh session for a fresh access token and
// slides the session expiry forward. Expired sessions are removed on
// contact.
func (s *authService) Refresh(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error) {
	session, err := s.sessionRepo.FindByToken(db, refreshToken)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, apperrors.SessionExpired()
		}
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	if session.Expired(now) {
		_ = s.sessionRepo.DeleteByToken(db, refreshToken)
		return nil, apperrors.SessionExpired()
	}

	user, err := s.userRepo.FindByID(db, session.UserID)
	if err != nil {
		return nil, apperrors.SessionExpired()
	}

	cfg := config.GetConfig()
	slid := now.Add(time.Duration(cfg.Session.SlidingHours) * time.Hour)
	if slid.After(session.ExpiresAt) {
		session.ExpiresAt = slid
	}
	session.LastUsedAt = now
	if err := s.sessionRepo.Touch(db, session); err != nil {
		return nil, apperrors.InternalError(err)
	}

	accessToken, expiresAt, err := s.accessToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: session.Token,
		ExpiresAt:    expiresAt,
		User:         dto.UserToInfo(user),
	}, nil
}

func (s *authService) Logout(db *gorm.DB, refreshToken string, everywhere bool) error {
	session, err := s.sessionRepo.FindByToken(db, refreshToken)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil // already logged out
		}
		return apperrors.InternalError(err)
	}

	if everywhere {
		err = s.sessionRepo.DeleteByUser(db, session.UserID)
	} else {
		err = s.sessionRepo.DeleteByToken(db, refreshToken)
	}
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) GetCurrentUser(db *gorm.DB, userID string) (*dto.UserInfo, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, apperrors.UserNotFound()
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.UserToInfo(user), nil
}

func (s *authService) issueTokens(db *gorm.DB, user *models.User, userAgent, ip string) (*dto.AuthResponse, error) {
	cfg := config.GetConfig()
	now := time.Now()

	session := &models.Session{
		UserID:     user.ID,
		Token:      newSessionToken(),
		ExpiresAt:  now.Add(time.Duration(cfg.Session.TTLHours) * time.Hour),
		LastUsedAt: now,
		UserAgent:  userAgent,
		IP:         ip,
	}
	if err := s.sessionRepo.Create(db, session); err != nil {
		return nil, apperrors.InternalError(err)
	}

	accessToken, expiresAt, err := s.accessToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: session.Token,
		ExpiresAt:    expiresAt,
		User:         dto.UserToInfo(user),
	}, nil
}

func (s *authService) accessToken(user *models.User) (string, time.Time, error) {
	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", time.Time{}, err
	}
	ttl := time.Duration(config.GetConfig().JWT.TTL) * time.Minute
	return token, time.Now().Add(ttl), nil
}

func newSessionToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
