package user

import "fmt"

type Role string

const (
	RoleStudent   Role = "student"
	RoleTeacher   Role = "teacher"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
	RoleAnonymous Role = "anonymous"
)

var validRoles = map[Role]bool{
	RoleStudent:   true,
	RoleTeacher:   true,
	RoleModerator: true,
	RoleAdmin:     true,
	RoleAnonymous: true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

// IsStaff reports whether the role may act on tickets and FAQ content.
func (r Role) IsStaff() bool {
	return r == RoleModerator || r == RoleAdmin
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

// AllRoles returns every valid role, used by statistics grouping.
func AllRoles() []Role {
	return []Role{RoleStudent, RoleTeacher, RoleModerator, RoleAdmin, RoleAnonymous}
}
