package auth

import "context"

// AuthService - business logic for sessions
type AuthService interface {
	// Login verifies credentials under the login deadline and issues a token
	// pair.
	Login(ctx context.Context, req LoginRequest) (RefreshResult, error)
	// Refresh rotates a refresh token.
	Refresh(ctx context.Context, refreshToken string) (RefreshResult, error)
	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error
	// GoogleLoginURL returns the OAuth2 consent URL for the given state.
	GoogleLoginURL(state string) string
	// LoginWithGoogle exchanges an OAuth2 code for a session of the matching
	// local user.
	LoginWithGoogle(ctx context.Context, code string) (RefreshResult, error)
}
