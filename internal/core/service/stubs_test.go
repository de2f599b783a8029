package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sprintdesk/taskboard/internal/core/domain"
	"github.com/sprintdesk/taskboard/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Policy stub
// ---------------------------------------------------------------------------

// stubPolicy grants exactly the configured permissions to every role.
type stubPolicy struct {
	granted map[domain.Permission]bool
}

func allowAll() *stubPolicy {
	p := &stubPolicy{granted: make(map[domain.Permission]bool)}
	for _, perm := range domain.Permissions {
		p.granted[perm] = true
	}
	return p
}

func allowOnly(perms ...domain.Permission) *stubPolicy {
	p := &stubPolicy{granted: make(map[domain.Permission]bool)}
	for _, perm := range perms {
		p.granted[perm] = true
	}
	return p
}

func (p *stubPolicy) Allow(_ domain.Role, permission domain.Permission) bool {
	return p.granted[permission]
}

func (p *stubPolicy) Policy() domain.Policy {
	return domain.Policy{}
}

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users []*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	clone := *u
	r.users = append(r.users, &clone)
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByName(_ context.Context, name string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Name == name {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

type stubProjectRepo struct {
	projects []*domain.Project
	// tasks, when set, receives the cascade on Delete (mirrors the real
	// store where both collections live behind one lock).
	tasks *stubTaskRepo
}

func (r *stubProjectRepo) Insert(_ context.Context, p *domain.Project) error {
	clone := *p
	r.projects = append(r.projects, &clone)
	return nil
}

func (r *stubProjectRepo) Replace(_ context.Context, p *domain.Project) error {
	for i, existing := range r.projects {
		if existing.ID == p.ID {
			clone := *p
			r.projects[i] = &clone
			return nil
		}
	}
	return domain.ErrProjectNotFound
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) (int, error) {
	found := false
	kept := r.projects[:0]
	for _, p := range r.projects {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	r.projects = kept
	if !found {
		return 0, domain.ErrProjectNotFound
	}

	removed := 0
	if r.tasks != nil {
		keptTasks := r.tasks.tasks[:0]
		for _, t := range r.tasks.tasks {
			if t.ProjectID == id {
				removed++
				continue
			}
			keptTasks = append(keptTasks, t)
		}
		r.tasks.tasks = keptTasks
	}
	return removed, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) List(_ context.Context) ([]*domain.Project, error) {
	out := make([]*domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

type stubTaskRepo struct {
	tasks      []*domain.Task
	insertErr  error
	replaceErr error
}

func (r *stubTaskRepo) Insert(_ context.Context, t *domain.Task) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *t
	r.tasks = append(r.tasks, &clone)
	return nil
}

func (r *stubTaskRepo) Replace(_ context.Context, t *domain.Task) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	for i, existing := range r.tasks {
		if existing.ID == t.ID {
			clone := *t
			r.tasks[i] = &clone
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

func (r *stubTaskRepo) Delete(_ context.Context, id string) error {
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (r *stubTaskRepo) List(_ context.Context, f ports.TaskFilter) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range r.tasks {
		switch f.ProjectID {
		case "":
		case ports.GeneralProject:
			if t.ProjectID != "" {
				continue
			}
		default:
			if t.ProjectID != f.ProjectID {
				continue
			}
		}
		if f.Assignee != "" && t.Assignee != f.Assignee {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}
