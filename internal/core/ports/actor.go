package ports

import "github.com/sprintdesk/taskboard/internal/core/domain"

// Actor identifies who is performing a mutation. The role drives every
// permission check; the id is used for defaults such as the initial
// member list of a new project.
type Actor struct {
	ID   string
	Role domain.Role
}

// PolicyView is the read side of the runtime permission policy. Services
// consult it before every gated mutation; only the policy service writes.
type PolicyView interface {
	// Allow reports whether role currently holds permission.
	Allow(role domain.Role, permission domain.Permission) bool
	// Policy returns a defensive copy of the full policy table.
	Policy() domain.Policy
}
