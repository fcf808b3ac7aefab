// Package authorization centralizes role gating for operations. Use cases
// call these checks at the top of Execute instead of relying on transport
// middleware, so every legality rule lives in one place.
package authorization

import (
	"unibot/internal/domain/user"
	"unibot/internal/shared/errors"
)

// RequireStaff returns a forbidden error unless the role is moderator or admin.
func RequireStaff(role user.Role) error {
	if !role.IsStaff() {
		return errors.NewForbiddenError("staff role required")
	}
	return nil
}

// RequireAdmin returns a forbidden error unless the role is admin.
func RequireAdmin(role user.Role) error {
	if !role.IsAdmin() {
		return errors.NewForbiddenError("admin role required")
	}
	return nil
}

// CanViewTicket reports whether a user may view a ticket thread: the owner
// and staff only. Anonymous tickets hide the owner's identity in rendering,
// not here.
func CanViewTicket(userID uint, role user.Role, ownerID uint) bool {
	if role.IsStaff() {
		return true
	}
	return userID == ownerID
}
