package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
	repo "github.com/MdSponx/cifan-2025-film-festival/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const tokenTTL = 72 * time.Hour

type AuthService struct {
	profiles *repo.ProfileRepository
	secret   []byte
	log      *zap.Logger
}

func NewAuthService(profiles *repo.ProfileRepository, jwtSecret string, log *zap.Logger) *AuthService {
	return &AuthService{profiles: profiles, secret: []byte(jwtSecret), log: log}
}

func (s *AuthService) Register(ctx context.Context, email, password, fullNameEN string) (*models.UserProfile, error) {
	existing, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &models.UserProfile{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FullNameEN:   fullNameEN,
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.profiles.Insert(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.String("uid", p.UID))
	return p, nil
}

// Login checks the password and mints an HS256 token. The uid claim is what
// the request middleware trusts; sub mirrors it for standard tooling.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserProfile, error) {
	p, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if p == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"uid":            p.UID,
		"sub":            p.UID,
		"email_verified": p.EmailVerified,
		"exp":            time.Now().Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	return token, p, nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, uid string) error {
	return s.profiles.SetEmailVerified(ctx, uid, true)
}
