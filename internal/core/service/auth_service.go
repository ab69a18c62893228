package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/projethub/projethub/internal/core/domain"
	"github.com/projethub/projethub/internal/core/ports"
	"github.com/projethub/projethub/internal/core/token"
)

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	tokens *token.Service
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *token.Service, audit ports.AuditRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, audit: audit, log: log}
}

// Register creates a new account. Every invalid field is reported in one
// ValidationError, and the password confirmation must match before any hash
// is computed. The role defaults to "user" when absent.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	verr := domain.NewValidationError()
	if strings.TrimSpace(in.Pseudo) == "" {
		verr.Add("pseudo", "pseudo is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		verr.Add("email", "email is required")
	}
	if in.Password == "" {
		verr.Add("password", "password is required")
	} else if in.Password != in.ConfirmPassword {
		verr.Add("confirmPassword", "password must match confirm password")
	}

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		verr.Add("role", "role must be user or admin")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Pseudo:       strings.TrimSpace(in.Pseudo),
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("pseudo", created.Pseudo).Msg("user registered")
	s.audit.Record(domain.AuditEntry{
		Action:   "user.register",
		ActorID:  created.ID,
		Entity:   "user",
		EntityID: created.ID,
		At:       now,
	})
	return created, nil
}

// Login checks the credentials and signs a fresh session token. A wrong
// password and an unknown email are reported distinctly, matching the HTTP
// contract (401 vs 404).
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(domain.Identity{ID: user.ID, Role: user.Role})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	s.audit.Record(domain.AuditEntry{
		Action:   "user.login",
		ActorID:  user.ID,
		Entity:   "user",
		EntityID: user.ID,
		At:       time.Now().UTC(),
	})
	return &ports.LoginResult{Token: signed, User: user}, nil
}
