// Package policy holds the pure access-control decisions. No I/O, no state:
// callers pass in the identities and roles they already verified.
package policy

import (
	"github.com/google/uuid"

	"github.com/jaydhumal23/backend-assignment/internal/models"
)

// CanViewAll reports whether the caller may read every task in the store,
// including tasks owned by other users.
func CanViewAll(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanMutate reports whether the caller may update or delete a resource owned
// by ownerID. Admins may mutate anything; everyone else only their own.
func CanMutate(role models.Role, ownerID, callerID uuid.UUID) bool {
	return role == models.RoleAdmin || ownerID == callerID
}
