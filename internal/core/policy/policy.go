// Package policy holds the pure authorization decision functions. Callers
// fetch the resource first (so a missing resource yields NotFound, never
// Forbidden) and then consult the policy with the already-resolved identity.
// Ids are compared as canonical hex strings; repositories guarantee that
// representation at the boundary.
package policy

import "github.com/projethub/projethub/internal/core/domain"

// CanModify reports whether id may update or delete a resource owned by
// authorID. Ownership is strict: admins get no override here.
func CanModify(id domain.Identity, authorID string) bool {
	return id.ID != "" && id.ID == authorID
}

// CanDeleteProjet reports whether id may delete the projet: its author, or
// any admin.
func CanDeleteProjet(id domain.Identity, projet *domain.Projet) bool {
	if projet == nil {
		return false
	}
	return CanModify(id, projet.AuthorID) || IsAdmin(id)
}

// IsAdmin reports whether id holds the admin role.
func IsAdmin(id domain.Identity) bool {
	return id.Role == domain.RoleAdmin
}

// CanDeleteUser reports whether target may be deleted at all. Admin accounts
// are never deletable through this path, regardless of the caller.
func CanDeleteUser(target *domain.User) bool {
	if target == nil {
		return false
	}
	return target.Role != domain.RoleAdmin
}
