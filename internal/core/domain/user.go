package domain

import "time"

// Role classifies what an actor is allowed to do. The effective permissions
// for a role come from the runtime Policy, not from the role itself.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleProductOwner Role = "product_owner"
	RoleScrumMaster  Role = "scrum_master"
	RoleDeveloper    Role = "developer"
	RoleViewer       Role = "viewer"
)

// Roles lists every role in display order.
var Roles = []Role{RoleAdmin, RoleProductOwner, RoleScrumMaster, RoleDeveloper, RoleViewer}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User models an actor in the system. Immutable after creation except for
// the password hash, which only the auth layer touches.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
