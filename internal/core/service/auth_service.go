package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
	"github.com/spoonstory/podcast-platform/internal/core/ports"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	htmlTags     = regexp.MustCompile(`<[^>]*>`)
	hasUpper     = regexp.MustCompile(`[A-Z]`)
	hasLower     = regexp.MustCompile(`[a-z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
)

// AuthService implements registration and login.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	email := NormalizeEmail(input.Email)
	if email == "" || input.Password == "" || strings.TrimSpace(input.Name) == "" {
		return nil, "", fmt.Errorf("%w: missing required fields: email, password, name", domain.ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return nil, "", fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if msg := validatePassword(input.Password); msg != "" {
		return nil, "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleListener
	}
	if !domain.ValidRole(role) {
		return nil, "", fmt.Errorf("%w: role must be one of: LISTENER, CREATOR", domain.ErrInvalidInput)
	}

	// Pre-check gives the clean error; the unique index on email remains
	// the actual guarantee against concurrent duplicates.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Name:         sanitize(input.Name),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: missing required fields: email, password", domain.ErrInvalidInput)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the caller.
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// NormalizeEmail lower-cases and trims an address; emails are stored and
// looked up in this form only.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validatePassword enforces the account password policy. It returns an
// empty string when the password is acceptable.
func validatePassword(password string) string {
	switch {
	case len(password) < 8:
		return "Password must be at least 8 characters long"
	case !hasUpper.MatchString(password):
		return "Password must contain at least one uppercase letter"
	case !hasLower.MatchString(password):
		return "Password must contain at least one lowercase letter"
	case !hasDigit.MatchString(password):
		return "Password must contain at least one number"
	}
	return ""
}

// sanitize trims the value and strips HTML tags.
func sanitize(s string) string {
	return htmlTags.ReplaceAllString(strings.TrimSpace(s), "")
}
