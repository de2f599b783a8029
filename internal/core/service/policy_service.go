package service

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sprintdesk/taskboard/internal/core/domain"
)

// PolicyService holds the runtime-mutable permission policy behind a single
// writer path. It is injected wherever a permission check is needed instead
// of living as ambient global state.
type PolicyService struct {
	mu     sync.RWMutex
	policy domain.Policy
	log    zerolog.Logger
}

func NewPolicyService(initial domain.Policy, log zerolog.Logger) *PolicyService {
	if initial == nil {
		initial = domain.DefaultPolicy()
	}
	return &PolicyService{policy: initial.Clone(), log: log}
}

// Allow reports whether role currently holds permission.
func (s *PolicyService) Allow(role domain.Role, permission domain.Permission) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.HasPermission(role, permission, s.policy)
}

// Policy returns a defensive copy of the current policy table.
func (s *PolicyService) Policy() domain.Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy.Clone()
}

// SetPermission grants or revokes a permission for a role. The Admin role is
// protected: revocation attempts against it fail so Admin always keeps the
// full permission set, regardless of what the stored table could express.
func (s *PolicyService) SetPermission(role domain.Role, permission domain.Permission, allowed bool) error {
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	if !permission.Valid() {
		return fmt.Errorf("%w: unknown permission %q", domain.ErrValidation, permission)
	}
	if role == domain.RoleAdmin && !allowed {
		return fmt.Errorf("%w: admin permissions cannot be revoked", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.policy[role]
	has := false
	for _, p := range current {
		if p == permission {
			has = true
			break
		}
	}

	switch {
	case allowed && !has:
		s.policy[role] = append(current, permission)
	case !allowed && has:
		kept := make([]domain.Permission, 0, len(current)-1)
		for _, p := range current {
			if p != permission {
				kept = append(kept, p)
			}
		}
		s.policy[role] = kept
	default:
		return nil // already in the requested state
	}

	s.log.Info().
		Str("role", string(role)).
		Str("permission", string(permission)).
		Bool("allowed", allowed).
		Msg("policy updated")
	return nil
}
