package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kickstartvisuals/studio-backend/internal/config"
	"github.com/kickstartvisuals/studio-backend/internal/dto"
	"github.com/kickstartvisuals/studio-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRefresh     = errors.New("invalid or expired refresh token")
	ErrUserNotFound       = errors.New("user not found")
	ErrValidation         = errors.New("invalid request payload")
)

// AuthService covers signup, login, profile reads/updates and refresh token
// rotation.
type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	tokens *TokenService
}

func NewAuthService(db *gorm.DB, cfg *config.Config, tokens *TokenService) *AuthService {
	return &AuthService{db: db, cfg: cfg, tokens: tokens}
}

func (s *AuthService) Signup(req *dto.SignupRequest) (*dto.SignupResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	// Exact-match lookup; the unique index on email backs this up.
	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Phone:    req.Phone,
		IsAdmin:  false,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	refresh, err := s.issueRefreshToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.SignupResponse{
		Token:        token,
		RefreshToken: refresh,
		User:         PublicUser(&user),
	}, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// Unknown email and bad password collapse into the same error so the
	// response does not leak which check failed.
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if !VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	refresh, err := s.issueRefreshToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  token,
		RefreshToken: refresh,
		TokenType:    "bearer",
		User:         PublicUser(&user),
	}, nil
}

func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.LoginResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, ErrInvalidRefresh
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, ErrInvalidRefresh
	}

	// Single use: every refresh rotates the token.
	s.db.Model(&stored).Update("revoked", true)

	var user models.User
	if err := s.db.First(&user, "id = ?", stored.UserID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	token, err := s.tokens.Issue(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	refresh, err := s.issueRefreshToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  token,
		RefreshToken: refresh,
		TokenType:    "bearer",
		User:         PublicUser(&user),
	}, nil
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

// UpdateProfile applies only the supplied fields. Email and the admin flag
// are not mutable through this path.
func (s *AuthService) UpdateProfile(userID uuid.UUID, req *dto.ProfileUpdateRequest) (*dto.UserResponse, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	resp := PublicUser(&user)
	return &resp, nil
}

// IsBootstrapAdmin reports whether the email is in the ADMIN_EMAILS list,
// letting the first admin exist before any row has IsAdmin set.
func (s *AuthService) IsBootstrapAdmin(email string) bool {
	for _, e := range strings.Split(s.cfg.AdminEmails, ",") {
		if trimmed := strings.TrimSpace(e); trimmed != "" && trimmed == email {
			return true
		}
	}
	return false
}

// PublicUser projects a user for wire responses, excluding the hash.
func PublicUser(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:      u.ID.String(),
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		IsAdmin: u.IsAdmin,
	}
}

func (s *AuthService) issueRefreshToken(user *models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
