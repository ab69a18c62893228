package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/projethub/projethub/internal/core/domain"
	"github.com/projethub/projethub/internal/core/ports"
	"github.com/projethub/projethub/internal/core/token"
)

func newAuthService(users *memUserRepo, audit *recordingAudit) (*AuthService, *token.Service) {
	tokens := token.NewService("test-secret", time.Hour)
	return NewAuthService(users, tokens, audit, zerolog.Nop()), tokens
}

func TestRegister_HashesPassword(t *testing.T) {
	users := newMemUserRepo()
	audit := &recordingAudit{}
	svc, _ := newAuthService(users, audit)

	created, err := svc.Register(context.Background(), ports.RegisterInput{
		Pseudo:          "alice",
		Email:           "alice@example.com",
		Password:        "s3cret-pass",
		ConfirmPassword: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an id on the created user")
	}
	if created.Role != domain.RoleUser {
		t.Fatalf("role = %q, want %q", created.Role, domain.RoleUser)
	}
	if created.PasswordHash == "s3cret-pass" {
		t.Fatal("password stored in clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret-pass")) != nil {
		t.Fatal("stored hash does not match the password")
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != "user.register" {
		t.Fatalf("audit entries = %+v, want one user.register", audit.entries)
	}
}

func TestRegister_CollectsAllFieldErrors(t *testing.T) {
	svc, _ := newAuthService(newMemUserRepo(), &recordingAudit{})

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Pseudo:          "",
		Email:           "",
		Password:        "one",
		ConfirmPassword: "other",
		Role:            "superuser",
	})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	for _, field := range []string{"pseudo", "email", "confirmPassword", "role"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("missing validation message for %q in %v", field, verr.Fields)
		}
	}
}

func TestRegister_DuplicatePseudo(t *testing.T) {
	users := newMemUserRepo()
	svc, _ := newAuthService(users, &recordingAudit{})

	first := ports.RegisterInput{
		Pseudo:          "alice",
		Email:           "alice@example.com",
		Password:        "s3cret-pass",
		ConfirmPassword: "s3cret-pass",
	}
	if _, err := svc.Register(context.Background(), first); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	second := first
	second.Email = "other@example.com"
	_, err := svc.Register(context.Background(), second)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if _, ok := verr.Fields["pseudo"]; !ok {
		t.Fatalf("fields = %v, want pseudo error", verr.Fields)
	}
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	users := newMemUserRepo()
	audit := &recordingAudit{}
	svc, tokens := newAuthService(users, audit)

	created, err := svc.Register(context.Background(), ports.RegisterInput{
		Pseudo:          "bob",
		Email:           "bob@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
		Role:            "admin",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	result, err := svc.Login(context.Background(), "bob@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.User.ID != created.ID {
		t.Fatalf("user id = %q, want %q", result.User.ID, created.ID)
	}

	identity, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if identity.ID != created.ID {
		t.Fatalf("token id = %q, want %q", identity.ID, created.ID)
	}
	if identity.Role != domain.RoleAdmin {
		t.Fatalf("token role = %q, want %q", identity.Role, domain.RoleAdmin)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	users := newMemUserRepo()
	svc, _ := newAuthService(users, &recordingAudit{})

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Pseudo:          "carol",
		Email:           "carol@example.com",
		Password:        "correct",
		ConfirmPassword: "correct",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Login(context.Background(), "carol@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newAuthService(newMemUserRepo(), &recordingAudit{})

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("error = %v, want ErrUserNotFound", err)
	}
}
