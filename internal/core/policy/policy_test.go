package policy

import (
	"testing"

	"github.com/projethub/projethub/internal/core/domain"
)

func TestCanModify(t *testing.T) {
	tests := []struct {
		name     string
		identity domain.Identity
		authorID string
		want     bool
	}{
		{"author", domain.Identity{ID: "u1", Role: domain.RoleUser}, "u1", true},
		{"other user", domain.Identity{ID: "u2", Role: domain.RoleUser}, "u1", false},
		{"admin is not owner", domain.Identity{ID: "a1", Role: domain.RoleAdmin}, "u1", false},
		{"empty identity", domain.Identity{}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanModify(tt.identity, tt.authorID); got != tt.want {
				t.Fatalf("CanModify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanDeleteProjet(t *testing.T) {
	projet := &domain.Projet{ID: "p1", AuthorID: "u1"}

	tests := []struct {
		name     string
		identity domain.Identity
		projet   *domain.Projet
		want     bool
	}{
		{"author", domain.Identity{ID: "u1", Role: domain.RoleUser}, projet, true},
		{"admin", domain.Identity{ID: "a1", Role: domain.RoleAdmin}, projet, true},
		{"other user", domain.Identity{ID: "u2", Role: domain.RoleUser}, projet, false},
		{"nil projet", domain.Identity{ID: "a1", Role: domain.RoleAdmin}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanDeleteProjet(tt.identity, tt.projet); got != tt.want {
				t.Fatalf("CanDeleteProjet = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	if !IsAdmin(domain.Identity{ID: "a1", Role: domain.RoleAdmin}) {
		t.Fatalf("expected admin identity to pass")
	}
	if IsAdmin(domain.Identity{ID: "u1", Role: domain.RoleUser}) {
		t.Fatalf("expected user identity to fail")
	}
	if IsAdmin(domain.Identity{}) {
		t.Fatalf("expected empty identity to fail")
	}
}

func TestCanDeleteUser(t *testing.T) {
	if CanDeleteUser(&domain.User{ID: "a1", Role: domain.RoleAdmin}) {
		t.Fatalf("admin accounts must never be deletable")
	}
	if !CanDeleteUser(&domain.User{ID: "u1", Role: domain.RoleUser}) {
		t.Fatalf("regular accounts must be deletable")
	}
	if CanDeleteUser(nil) {
		t.Fatalf("nil user must not be deletable")
	}
}
