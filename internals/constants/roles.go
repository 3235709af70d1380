package constants

import "fmt"

const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleEditor     = "editor"
)

const ErrRoleNotAllowed = "Only %s may access %s"

func RoleError(feature string, roles []string) string {
	return fmt.Sprintf(ErrRoleNotAllowed, joinRoles(roles), feature)
}

func joinRoles(roles []string) string {
	out := ""
	for i, r := range roles {
		switch {
		case i == 0:
		case i == len(roles)-1:
			out += " or "
		default:
			out += ", "
		}
		out += r
	}
	return out
}

var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleAdmin,
		RoleEditor,
	}

	// may create other admins
	AdminAndAbove = []string{
		RoleSuperAdmin,
		RoleAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
