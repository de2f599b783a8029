package ports

import (
	"context"

	"github.com/sprintdesk/taskboard/internal/core/domain"
)

// CreateProjectInput carries all data needed to create a project.
type CreateProjectInput struct {
	Name        string
	Description string
	ManagerID   string
	StartDate   string // ISO date; defaults to today when empty
	EndDate     string // optional, empty = open-ended
	Members     []string
}

// UpdateProjectInput fully replaces a stored project. Fields the caller
// omits are stored as supplied; there is no server-side field merge.
type UpdateProjectInput struct {
	ID          string
	Name        string
	Description string
	ManagerID   string
	StartDate   string
	EndDate     string
	Members     []string
	Attachments []domain.Attachment
}

// DeleteProjectResult reports what a cascade delete removed.
type DeleteProjectResult struct {
	TasksRemoved int
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput, actor Actor) (*domain.Project, error)
	Update(ctx context.Context, input UpdateProjectInput, actor Actor) (*domain.Project, error)
	// Delete removes the project and cascades to its tasks.
	Delete(ctx context.Context, id string, actor Actor) (*DeleteProjectResult, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	// AttachFile appends upload-collaborator metadata to the project.
	AttachFile(ctx context.Context, projectID string, upload UploadInput, actor Actor) (*domain.Attachment, error)
}

// UploadInput is what the upload collaborator receives: a file descriptor,
// not file content. The core never stores bytes.
type UploadInput struct {
	Name      string
	Type      string
	SizeBytes int64
}
