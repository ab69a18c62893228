package ports

import (
	"context"

	"github.com/projethub/projethub/internal/core/domain"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Pseudo          string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

// LoginResult bundles the signed session token with the authenticated user.
type LoginResult struct {
	Token string
	User  *domain.User
}

// AuthService covers account creation and session establishment.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
