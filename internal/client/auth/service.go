// Package auth управляет учетной записью клиента: регистрация, логин,
// хранение сессии между запусками CLI.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ivolkov/syncpad/internal/client/storage"
	"github.com/ivolkov/syncpad/internal/validation"
	pkgapi "github.com/ivolkov/syncpad/pkg/api"
)

//go:generate moq -out authapi_mock.go . AuthAPI

// ErrSessionExpired возвращается, когда сохраненный access token истек
var ErrSessionExpired = errors.New("session expired, login again")

// AuthAPI is the slice of the HTTP client the auth service needs
type AuthAPI interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error)
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
}

// Service предоставляет функции авторизации
type Service struct {
	apiClient AuthAPI
	authStore storage.AuthStorage
	logger    *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(apiClient AuthAPI, authStore storage.AuthStorage, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		authStore: authStore,
		logger:    logger,
	}
}

// Register регистрирует нового пользователя.
// Сессию не открывает: после регистрации нужен явный Login.
func (s *Service) Register(ctx context.Context, username, password string) (*pkgapi.RegisterResponse, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("user registered", "username", username, "user_id", resp.UserID)
	return resp, nil
}

// Login выполняет аутентификацию и сохраняет сессию в локальном хранилище
func (s *Service) Login(ctx context.Context, username, password string) (*storage.AuthData, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	authData := &storage.AuthData{
		Username:    username,
		AccessToken: resp.AccessToken,
		ExpiresAt:   time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
	}

	if err := s.authStore.SaveAuth(ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("user logged in", "username", username)
	return authData, nil
}

// Logout удаляет локальную сессию.
// Токен stateless (JWT), серверу сообщать нечего.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.authStore.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CurrentSession возвращает сохраненную сессию.
// Возвращает ErrSessionExpired, если access token уже истек.
func (s *Service) CurrentSession(ctx context.Context) (*storage.AuthData, error) {
	authData, err := s.authStore.GetAuth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if authData.ExpiresAt > 0 && time.Now().Unix() >= authData.ExpiresAt {
		return nil, ErrSessionExpired
	}

	return authData, nil
}

// IsAuthenticated проверяет наличие действующей сессии
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	_, err := s.CurrentSession(ctx)
	return err == nil
}
