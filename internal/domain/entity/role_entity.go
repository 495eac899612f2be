package entity

import "errors"

// ErrUnknownRole is returned when a stored or typed role name does not map to
// a known Role.
var ErrUnknownRole = errors.New("unknown role")

// Role is the closed set of capability tiers. Its zero value is not a valid
// role.
type Role int

const (
	RoleUser Role = iota + 1
	RoleAdministrator
)

// Persisted role names, as seeded into the roles table.
const (
	RoleNameUser          = "Usuario"
	RoleNameAdministrator = "Administrador"
)

// Roles lists every role in menu order.
func Roles() []Role {
	return []Role{RoleAdministrator, RoleUser}
}

// Valid checks if the role is a valid value
func (r Role) Valid() bool {
	return r == RoleAdministrator || r == RoleUser
}

// String returns the persisted name of the role.
func (r Role) String() string {
	switch r {
	case RoleAdministrator:
		return RoleNameAdministrator
	case RoleUser:
		return RoleNameUser
	default:
		return ""
	}
}

// ParseRole maps a persisted role name back to its Role. Matching is exact.
func ParseRole(name string) (Role, error) {
	switch name {
	case RoleNameAdministrator:
		return RoleAdministrator, nil
	case RoleNameUser:
		return RoleUser, nil
	default:
		return 0, ErrUnknownRole
	}
}
