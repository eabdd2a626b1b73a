package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"corpportal/internal/config"
	"corpportal/internal/models"
	"corpportal/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, req repository.CreateProfileRequest) (*models.Profile, error)
	Login(ctx context.Context, email, password string) (*models.Profile, string, string, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.Profile, string, string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
}

type authService struct {
	profileRepo repository.ProfileRepository
	cfg         *config.Config
}

func NewAuthService(profileRepo repository.ProfileRepository, cfg *config.Config) AuthService {
	return &authService{
		profileRepo: profileRepo,
		cfg:         cfg,
	}
}

func (s *authService) Register(ctx context.Context, req repository.CreateProfileRequest) (*models.Profile, error) {
	existingProfile, err := s.profileRepo.GetByEmail(ctx, req.Email)
	if err == nil && existingProfile != nil {
		return nil, fmt.Errorf("пользователь с email %s уже существует", req.Email)
	}

	refreshToken, refreshTokenExpiry, err := s.generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации refresh token: %w", err)
	}

	// роль при регистрации всегда user, повышает только админ
	profile := &models.Profile{
		Name:                   req.Name,
		Email:                  req.Email,
		Role:                   models.RoleUser,
		RefreshToken:           refreshToken,
		RefreshTokenExpiryTime: refreshTokenExpiry,
	}

	err = s.profileRepo.CreateProfile(ctx, profile, req.Password)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании профиля: %w", err)
	}

	return profile, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Profile, string, string, error) {
	profile, err := s.profileRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка аутентификации: %w", err)
	}

	accessToken, err := s.generateAccessToken(profile)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	refreshToken, refreshTokenExpiry, err := s.generateRefreshToken()
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка генерации refresh token: %w", err)
	}

	err = s.profileRepo.UpdateRefreshToken(ctx, profile.UserID, refreshToken, refreshTokenExpiry)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка сохранения refresh token: %w", err)
	}

	return profile, accessToken, refreshToken, nil
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*models.Profile, string, string, error) {
	profile, err := s.profileRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, "", "", fmt.Errorf("недействительный refresh token: %w", err)
	}

	if time.Now().After(profile.RefreshTokenExpiryTime) {
		return nil, "", "", fmt.Errorf("refresh token истек")
	}

	accessToken, err := s.generateAccessToken(profile)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	newRefreshToken, refreshTokenExpiry, err := s.generateRefreshToken()
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка генерации refresh token: %w", err)
	}

	err = s.profileRepo.UpdateRefreshToken(ctx, profile.UserID, newRefreshToken, refreshTokenExpiry)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка обновления refresh token: %w", err)
	}

	return profile, accessToken, newRefreshToken, nil
}

func (s *authService) generateAccessToken(profile *models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"user_id": profile.UserID,
		"email":   profile.Email,
		"role":    profile.Role,
		"name":    profile.Name,
		"exp":     time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *authService) generateRefreshToken() (string, time.Time, error) {
	refreshToken := uuid.New().String()

	expiryTime := time.Now().Add(s.cfg.RefreshTokenDuration)

	return refreshToken, expiryTime, nil
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("недействительный токен")
	}

	return token, nil
}
