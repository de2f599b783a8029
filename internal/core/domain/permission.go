package domain

// Permission is a single grantable capability.
type Permission string

const (
	PermManageSettings Permission = "manage_settings"
	PermManageUsers    Permission = "manage_users"
	PermCreateProject  Permission = "create_project"
	PermEditProject    Permission = "edit_project"
	PermDeleteProject  Permission = "delete_project"
	PermCreateTask     Permission = "create_task"
	PermEditTask       Permission = "edit_task"
	PermDeleteTask     Permission = "delete_task"
	PermViewReports    Permission = "view_reports"
)

// Permissions lists every permission in display order.
var Permissions = []Permission{
	PermManageSettings,
	PermManageUsers,
	PermCreateProject,
	PermEditProject,
	PermDeleteProject,
	PermCreateTask,
	PermEditTask,
	PermDeleteTask,
	PermViewReports,
}

// Valid reports whether p is one of the enumerated permissions.
func (p Permission) Valid() bool {
	for _, known := range Permissions {
		if p == known {
			return true
		}
	}
	return false
}

// Policy maps each role to the permissions it currently holds. The policy is
// runtime-mutable through a single writer path (PolicyService.SetPermission);
// everything else receives it read-only.
type Policy map[Role][]Permission

// DefaultPolicy returns the stock role grants.
func DefaultPolicy() Policy {
	return Policy{
		RoleAdmin: append([]Permission(nil), Permissions...),
		RoleProductOwner: {
			PermCreateProject, PermEditProject,
			PermCreateTask, PermEditTask, PermDeleteTask,
			PermViewReports,
		},
		RoleScrumMaster: {PermCreateTask, PermEditTask, PermViewReports, PermManageUsers},
		RoleDeveloper:   {PermEditTask},
		RoleViewer:      {},
	}
}

// HasPermission reports whether role holds permission under policy.
// A role absent from the policy simply has no grants; never an error.
func HasPermission(role Role, permission Permission, policy Policy) bool {
	for _, p := range policy[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the policy so callers cannot alias the
// grant slices held by the policy owner.
func (p Policy) Clone() Policy {
	out := make(Policy, len(p))
	for role, perms := range p {
		out[role] = append([]Permission(nil), perms...)
	}
	return out
}
