package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/example/citizenprep/internal/config"
	"github.com/example/citizenprep/internal/database"
	"github.com/example/citizenprep/pkg/models"
	"github.com/example/citizenprep/pkg/validator"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Signup is a new account request
type Signup struct {
	Name     string
	Email    string
	Password string
}

// Claims is the JWT payload issued on login
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

type AuthS struct {
	repo   UserRI
	secret []byte
	ttl    time.Duration
	cost   int
	log    *zap.Logger
	now    func() time.Time
}

func NewAuthService(cfg config.AuthConfig, repo UserRI, log *zap.Logger) *AuthS {
	return &AuthS{
		repo:   repo,
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
		cost:   cfg.BcryptCost,
		log:    log,
		now:    time.Now,
	}
}

// Signup creates an account and returns its ID
func (s *AuthS) Signup(ctx context.Context, in Signup) (int64, error) {
	email := normalizeEmail(in.Email)
	name := SanitizeInput(in.Name)

	if email == "" || in.Password == "" {
		return 0, invalidInput("Email and password are required")
	}
	if !validator.ValidateEmail(email) {
		return 0, invalidInput("Invalid email address")
	}
	if err := checkPassword(in.Password); err != nil {
		return 0, err
	}
	if name != "" {
		if n := utf8.RuneCountInString(name); n < 2 || n > 50 {
			return 0, invalidInput("Name must be between 2 and 50 characters")
		}
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		s.log.Warn("failed to check existing user", zap.Error(err))
		return 0, err
	}
	if exists {
		return 0, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if name != "" {
		user.Name = &name
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent signup for the same email
		if errors.Is(err, database.ErrDuplicate) {
			return 0, ErrUserExists
		}
		s.log.Warn("failed to create user", zap.Error(err))
		return 0, err
	}

	s.log.Info("user signed up", zap.Int64("user_id", user.ID))
	return user.ID, nil
}

// Login checks credentials and returns a signed token for the user
func (s *AuthS) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, invalidInput("Email and password are required")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		s.log.Warn("failed to fetch user for login", zap.Error(err))
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// IssueToken signs an HS256 token for user
func (s *AuthS) IssueToken(user *models.User) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	if user.Name != nil {
		claims.Name = *user.Name
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates a token and returns its claims
func (s *AuthS) ParseToken(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrUnauthorized
	}
	if claims.UserID == 0 {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func checkPassword(password string) error {
	if len(password) < 8 {
		return invalidInput("Password must be at least 8 characters")
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return invalidInput("Password must contain at least one uppercase letter, one lowercase letter, and one number")
	}
	return nil
}
