package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"recipe-app/domain"
	"recipe-app/entities"
	"recipe-app/internal/utils/kvstore"
	"recipe-app/internal/utils/mailing"
	"recipe-app/pkg/jwt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	ResetTokenDuration = 15 * time.Minute

	resetPurpose = "password_reset"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Logout(ctx context.Context, token string) error
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		store          kvstore.Store
		mailer         mailing.Mailer
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, store kvstore.Store, mailer mailing.Mailer) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		store:          store,
		mailer:         mailer,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	exists, err := s.userRepository.CheckEmailExists(ctx, email)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if exists {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, domain.ErrHashPasswordFailed
	}

	user := entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.userRepository.RegisterUser(ctx, &user); err != nil {
		return domain.AuthResponse{}, err
	}

	return s.authResponse(user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	return s.authResponse(*user)
}

// Logout revokes token until it would have expired anyway.
func (s *userService) Logout(ctx context.Context, token string) error {
	session, err := s.jwtService.GetSessionByToken(token)
	if err != nil {
		return err
	}
	return s.revoke(ctx, session.TokenID, time.Until(session.ExpiresAt))
}

// ForgotPassword mails a reset link. Unknown emails succeed silently.
func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			slog.InfoContext(ctx, "password reset requested for unknown email")
			return nil
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(map[string]any{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"purpose": resetPurpose,
		"jti":     uuid.NewString(),
	}, ResetTokenDuration)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.mailer.AppURL(), token)
	if err := s.mailer.SendMail(user.Email, "Reset your password", mailing.PasswordResetBody(link)); err != nil {
		slog.ErrorContext(ctx, "failed to send reset email", "user_id", user.ID, "error", err)
		return err
	}
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(req.Token)
	if err != nil {
		return err
	}
	if purpose, _ := claims["purpose"].(string); purpose != resetPurpose {
		return domain.ErrResetTokenNotAllowed
	}
	userID, _ := claims["user_id"].(string)
	tokenID, _ := claims["jti"].(string)
	if userID == "" || tokenID == "" {
		return domain.ErrTokenInvalid
	}

	// reset links are single use
	if _, err := s.store.Get(ctx, jwt.RevocationKey(tokenID)); err == nil {
		return domain.ErrTokenRevoked
	} else if !errors.Is(err, kvstore.ErrKeyNotFound) {
		return domain.Remote(err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrHashPasswordFailed
	}
	if err := s.userRepository.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		return err
	}

	return s.revoke(ctx, tokenID, ResetTokenDuration)
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	if userID == "" {
		return domain.UserResponse{}, domain.ErrNotAuthenticated
	}
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return domain.UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *userService) authResponse(user entities.User) (domain.AuthResponse, error) {
	token, err := s.jwtService.GenerateTokenUser(user.ID.String())
	if err != nil {
		return domain.AuthResponse{}, err
	}
	return domain.AuthResponse{
		UserID: user.ID.String(),
		Email:  user.Email,
		Token:  token,
	}, nil
}

func (s *userService) revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" {
		return domain.ErrTokenInvalid
	}
	if ttl <= 0 {
		return nil
	}
	if err := s.store.Set(ctx, jwt.RevocationKey(tokenID), "1", ttl); err != nil {
		return domain.Remote(err)
	}
	return nil
}
