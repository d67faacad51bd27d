// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser is assigned to every account at signup.
	RoleUser Role = "user"
	// RoleAdmin may curate the food catalog.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a whitelist of roles. An empty whitelist admits every role.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Admits reports whether role passes the whitelist.
func (rs Roles) Admits(role Role) bool {
	return len(rs) == 0 || rs.Contains(role)
}
