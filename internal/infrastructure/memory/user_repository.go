package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/sprintdesk/taskboard/internal/core/domain"
)

// UserRepository is the in-memory ports.UserRepository.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create assigns an id when the user has none and appends the record.
// Names are unique: a clash returns domain.ErrUserExists.
func (r *UserRepository) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Name == u.Name {
			return nil, domain.ErrUserExists
		}
	}

	clone := *u
	if clone.ID == "" {
		clone.ID = uuid.NewString()
	}
	r.store.users = append(r.store.users, &clone)
	r.store.usersByID[clone.ID] = &clone

	out := clone
	return &out, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.usersByID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *UserRepository) FindByName(_ context.Context, name string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Name == name {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}
