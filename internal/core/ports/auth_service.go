package ports

import (
	"context"

	"github.com/sprintdesk/taskboard/internal/core/domain"
)

// AuthService authenticates users and issues access tokens.
type AuthService interface {
	Register(ctx context.Context, name, password string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, name, password string) (string, *domain.User, error)
}
