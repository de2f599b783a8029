package ports

import "github.com/sprintdesk/taskboard/internal/core/domain"

// PolicyService owns the runtime permission policy. SetPermission is the
// single writer path; the rest of the system reads through PolicyView.
// Access control for this operation is a layering concern: the transport
// restricts it to admins, the service itself only guards the Admin
// invariant below.
type PolicyService interface {
	PolicyView
	// SetPermission grants or revokes a permission for a role. Revoking
	// anything from the Admin role is rejected: Admin always holds every
	// enumerated permission.
	SetPermission(role domain.Role, permission domain.Permission, allowed bool) error
}
