package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/projethub/projethub/internal/core/domain"
)

func TestUserDelete_RegularAccount(t *testing.T) {
	users := newMemUserRepo()
	audit := &recordingAudit{}
	svc := NewUserService(users, audit, zerolog.Nop())

	admin, _ := users.Create(context.Background(), &domain.User{Pseudo: "admin", Email: "admin@example.com", Role: domain.RoleAdmin})
	target, _ := users.Create(context.Background(), &domain.User{Pseudo: "alice", Email: "alice@example.com", Role: domain.RoleUser})

	if err := svc.Delete(context.Background(), identityOf(admin), target.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := users.FindByID(context.Background(), target.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("lookup after delete = %v, want ErrUserNotFound", err)
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != "user.delete" {
		t.Fatalf("audit entries = %+v, want one user.delete", audit.entries)
	}
}

func TestUserDelete_AdminAccountProtected(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, &recordingAudit{}, zerolog.Nop())

	first, _ := users.Create(context.Background(), &domain.User{Pseudo: "root", Email: "root@example.com", Role: domain.RoleAdmin})
	second, _ := users.Create(context.Background(), &domain.User{Pseudo: "other", Email: "other@example.com", Role: domain.RoleAdmin})

	// Not even another admin can remove an admin account.
	if err := svc.Delete(context.Background(), identityOf(first), second.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("error = %v, want ErrForbidden", err)
	}
	if _, err := users.FindByID(context.Background(), second.ID); err != nil {
		t.Fatalf("admin account must survive, got %v", err)
	}
}

func TestUserDelete_UnknownID(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, &recordingAudit{}, zerolog.Nop())

	admin, _ := users.Create(context.Background(), &domain.User{Pseudo: "admin", Email: "admin@example.com", Role: domain.RoleAdmin})

	if err := svc.Delete(context.Background(), identityOf(admin), "missing-id"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("error = %v, want ErrUserNotFound", err)
	}
}

func TestUserList_ReturnsAllAccounts(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, &recordingAudit{}, zerolog.Nop())

	users.Create(context.Background(), &domain.User{Pseudo: "alice", Email: "alice@example.com", Role: domain.RoleUser})
	users.Create(context.Background(), &domain.User{Pseudo: "bob", Email: "bob@example.com", Role: domain.RoleUser})

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("users = %d, want 2", len(all))
	}
}
