package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sales-manager-app/sales-manager-api/apperrors"
	"github.com/sales-manager-app/sales-manager-api/config"
	"github.com/sales-manager-app/sales-manager-api/dto"
	"github.com/sales-manager-app/sales-manager-api/repository"
	"github.com/sales-manager-app/sales-manager-api/validation"
)

const tokenLifetime = 20 * time.Minute

// AuthService authenticates users and issues access tokens signed with the
// configuration-supplied secret.
type AuthService struct {
	users  repository.Users
	secret string
}

// NewAuthService builds an AuthService over its persistence collaborator.
func NewAuthService(users repository.Users, cfg *config.Config) *AuthService {
	return &AuthService{users: users, secret: cfg.JWTSecret}
}

// Login validates the credentials and returns a signed HS256 token carrying
// the user's email and role. Unknown emails and wrong passwords produce the
// same error so the response does not reveal which one was wrong.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validation.ValidateLogin(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewBusinessError("access denied: invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.NewBusinessError("access denied: invalid credentials")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Email,
		"role": user.Role.String(),
		"nbf":  now.Unix(),
		"exp":  now.Add(tokenLifetime).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role.String(),
		AccessToken: token,
	}, nil
}

// HashPassword returns the bcrypt hash stored for a user's password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
