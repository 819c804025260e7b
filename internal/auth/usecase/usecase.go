package usecase

import (
	authdomain "letteron-backend/internal/auth/domain"
	authdto "letteron-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a new account and returns a signed token.
	Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error)

	// Login verifies credentials and returns a signed token.
	Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error)

	// Me returns the user a previously validated token belongs to.
	Me(userID string) (*authdomain.User, error)

	// ValidateToken verifies signature and expiry and returns the claims'
	// user id.
	ValidateToken(tokenString string) (string, error)
}
