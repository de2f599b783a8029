package ports

import (
	"context"

	"github.com/sprintdesk/taskboard/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a task.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus // defaults to todo when empty
	Priority    domain.Priority   // defaults to medium when empty
	Points      int
	Assignee    string
	ProjectID   string // empty = general task
	StartDate   string
	DueDate     string
	Color       string
	Subtasks    []domain.Subtask
}

// UpdateTaskInput fully replaces a stored task. The submitted status may be
// overridden by the subtask auto-completion cascade at save time.
type UpdateTaskInput struct {
	ID          string
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.Priority
	Points      int
	Assignee    string
	ProjectID   string
	StartDate   string
	DueDate     string
	Color       string
	Subtasks    []domain.Subtask
	Attachments []domain.Attachment
}

// TaskService defines use-case operations for tasks.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput, actor Actor) (*domain.Task, error)
	Update(ctx context.Context, input UpdateTaskInput, actor Actor) (*domain.Task, error)
	Delete(ctx context.Context, id string, actor Actor) error
	// SetStatus overwrites the task status directly (board drag-and-drop).
	// It never re-evaluates the subtask cascade.
	SetStatus(ctx context.Context, id string, status domain.TaskStatus, actor Actor) (*domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)
	// AttachFile appends upload-collaborator metadata to the task.
	AttachFile(ctx context.Context, taskID string, upload UploadInput, actor Actor) (*domain.Attachment, error)
}
