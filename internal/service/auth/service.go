package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/study-factory/attend-backend-go/internal/domain/auth"
	"github.com/study-factory/attend-backend-go/internal/domain/user"
	"github.com/study-factory/attend-backend-go/internal/pkg/jwt"
	"github.com/study-factory/attend-backend-go/internal/pkg/oauth"
	"github.com/study-factory/attend-backend-go/internal/repository/postgresql"
)

// loginTimeout bounds the whole login flow. This is the only deadline in the
// system; every other operation runs under the plain request context.
const loginTimeout = 10 * time.Second

type AuthServiceImpl struct {
	userRepo      user.UserRepository
	refreshRepo   postgresql.RefreshTokenRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(
	userRepo user.UserRepository,
	refreshRepo postgresql.RefreshTokenRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		refreshRepo:   refreshRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.RefreshResult, error) {
	if err := req.Validate(); err != nil {
		return auth.RefreshResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, loginTimeout)
	defer cancel()

	account, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return auth.RefreshResult{}, auth.ErrLoginTimeout
		}
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.RefreshResult{}, auth.ErrInvalidCredentials
		}
		return auth.RefreshResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.RefreshResult{}, auth.ErrInvalidCredentials
	}

	result, err := s.issueTokens(ctx, account)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return auth.RefreshResult{}, auth.ErrLoginTimeout
	}
	return result, err
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResult, error) {
	userID, err := s.validateRefreshToken(ctx, refreshToken)
	if err != nil {
		return auth.RefreshResult{}, err
	}

	account, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.RefreshResult{}, err
	}

	// Rotate: revoke the presented token before issuing the next one.
	if err := s.refreshRepo.Revoke(ctx, refreshToken); err != nil {
		return auth.RefreshResult{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(ctx, account)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return s.refreshRepo.Revoke(ctx, refreshToken)
}

// GoogleLoginURL implements auth.AuthService.
func (s *AuthServiceImpl) GoogleLoginURL(state string) string {
	return s.googleService.RedirectURL(state)
}

// LoginWithGoogle implements auth.AuthService. Only users that already exist
// locally can sign in; there is no self-provisioning.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.RefreshResult, error) {
	token, err := s.googleService.Exchange(ctx, code)
	if err != nil {
		return auth.RefreshResult{}, auth.ErrInvalidCredentials
	}

	info, err := s.googleService.FetchUser(ctx, token)
	if err != nil {
		return auth.RefreshResult{}, fmt.Errorf("failed to fetch google user: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.RefreshResult{}, auth.ErrInvalidCredentials
	}

	account, err := s.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		return auth.RefreshResult{}, err
	}

	return s.issueTokens(ctx, account)
}

func (s *AuthServiceImpl) validateRefreshToken(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", auth.ErrInvalidToken
	}
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return "", auth.ErrRefreshTokenRevoked
	}

	revoked, err := s.refreshRepo.IsRevoked(ctx, refreshToken)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	if revoked {
		return "", auth.ErrRefreshTokenRevoked
	}

	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	claims, err := token.AsMap(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return "", auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}

	return userID, nil
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, account user.User) (auth.RefreshResult, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(account)
	if err != nil {
		return auth.RefreshResult{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.RefreshResult{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.refreshRepo.Create(ctx, account.ID, refreshToken, refreshExpiresAt); err != nil {
		return auth.RefreshResult{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.RefreshResult{
		Response: auth.LoginResponse{
			AccessToken: accessToken,
			ExpiresAt:   accessExpiresAt,
			User:        account.Profile(),
		},
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}
