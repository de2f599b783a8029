package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sprintdesk/taskboard/internal/core/domain"
	"github.com/sprintdesk/taskboard/internal/core/ports"
)

// TaskService implements the task lifecycle: permission-gated CRUD, the
// subtask auto-completion cascade on edit saves, and the plain status
// overwrite used by board drag-and-drop.
type TaskService struct {
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
	policy   ports.PolicyView
	logger   zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, projects ports.ProjectRepository, policy ports.PolicyView, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, projects: projects, policy: policy, logger: logger}
}

// Create validates and stores a new task.
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput, actor ports.Actor) (*domain.Task, error) {
	if !s.policy.Allow(actor.Role, domain.PermCreateTask) {
		return nil, fmt.Errorf("create task: %w", domain.ErrPermissionDenied)
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: task title is required", domain.ErrValidation)
	}
	if err := validateDates(input.StartDate, input.DueDate); err != nil {
		return nil, err
	}
	if input.Points < 0 {
		return nil, fmt.Errorf("%w: points must be non-negative", domain.ErrValidation)
	}
	if input.ProjectID != "" {
		if _, err := s.projects.FindByID(ctx, input.ProjectID); err != nil {
			return nil, fmt.Errorf("%w: project %q does not exist", domain.ErrValidation, input.ProjectID)
		}
	}

	status := input.Status
	if status == "" {
		status = domain.StatusTodo
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrValidation, priority)
	}

	task := &domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		Points:      input.Points,
		Assignee:    input.Assignee,
		ProjectID:   input.ProjectID,
		StartDate:   input.StartDate,
		DueDate:     input.DueDate,
		Color:       input.Color,
		Attachments: []domain.Attachment{},
		Subtasks:    input.Subtasks,
		CreatedAt:   time.Now().UTC(),
	}
	if task.Subtasks == nil {
		task.Subtasks = []domain.Subtask{}
	}

	if err := s.tasks.Insert(ctx, task); err != nil {
		s.logger.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", task.ID).Str("actor", actor.ID).Msg("task created")
	return task, nil
}

// Update fully replaces the stored task, then applies the auto-completion
// cascade: a task whose subtasks are all completed is forced to done as part
// of the same save, even when the request asked for another status. A task
// with no subtasks keeps the submitted status verbatim.
func (s *TaskService) Update(ctx context.Context, input ports.UpdateTaskInput, actor ports.Actor) (*domain.Task, error) {
	if !s.policy.Allow(actor.Role, domain.PermEditTask) {
		return nil, fmt.Errorf("update task: %w", domain.ErrPermissionDenied)
	}
	if input.ID == "" {
		return nil, fmt.Errorf("%w: task id is required", domain.ErrValidation)
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: task title is required", domain.ErrValidation)
	}
	if err := validateDates(input.StartDate, input.DueDate); err != nil {
		return nil, err
	}
	if input.Points < 0 {
		return nil, fmt.Errorf("%w: points must be non-negative", domain.ErrValidation)
	}
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, input.Status)
	}
	if !input.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrValidation, input.Priority)
	}
	if input.ProjectID != "" {
		if _, err := s.projects.FindByID(ctx, input.ProjectID); err != nil {
			return nil, fmt.Errorf("%w: project %q does not exist", domain.ErrValidation, input.ProjectID)
		}
	}

	existing, err := s.tasks.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	updated := &domain.Task{
		ID:          existing.ID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		Points:      input.Points,
		Assignee:    input.Assignee,
		ProjectID:   input.ProjectID,
		StartDate:   input.StartDate,
		DueDate:     input.DueDate,
		Color:       input.Color,
		Attachments: input.Attachments,
		Subtasks:    input.Subtasks,
		CreatedAt:   existing.CreatedAt,
	}
	if updated.Subtasks == nil {
		updated.Subtasks = []domain.Subtask{}
	}
	if updated.Attachments == nil {
		updated.Attachments = existing.Attachments
	}

	if updated.AllSubtasksCompleted() && updated.Status != domain.StatusDone {
		updated.Status = domain.StatusDone
		s.logger.Info().Str("task_id", updated.ID).Msg("all subtasks completed, task forced to done")
	}

	if err := s.tasks.Replace(ctx, updated); err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", updated.ID).Str("actor", actor.ID).Msg("task updated")
	return updated, nil
}

// Delete removes the task and its embedded subtasks and attachments.
func (s *TaskService) Delete(ctx context.Context, id string, actor ports.Actor) error {
	if !s.policy.Allow(actor.Role, domain.PermDeleteTask) {
		return fmt.Errorf("delete task: %w", domain.ErrPermissionDenied)
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("task_id", id).Str("actor", actor.ID).Msg("task deleted")
	return nil
}

// SetStatus overwrites the task status directly. This is the drag-and-drop
// path: it never re-evaluates the subtask cascade, so a fully-checked task
// can be dragged back out of done.
func (s *TaskService) SetStatus(ctx context.Context, id string, status domain.TaskStatus, actor ports.Actor) (*domain.Task, error) {
	if !s.policy.Allow(actor.Role, domain.PermEditTask) {
		return nil, fmt.Errorf("set task status: %w", domain.ErrPermissionDenied)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Status = status
	if err := s.tasks.Replace(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", id).Str("status", string(status)).Str("actor", actor.ID).Msg("task status set")
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

func (s *TaskService) List(ctx context.Context, filter ports.TaskFilter) ([]*domain.Task, error) {
	return s.tasks.List(ctx, filter)
}

// AttachFile appends the upload collaborator's metadata record to the task.
// Gated by EditTask since it mutates the task record.
func (s *TaskService) AttachFile(ctx context.Context, taskID string, upload ports.UploadInput, actor ports.Actor) (*domain.Attachment, error) {
	if !s.policy.Allow(actor.Role, domain.PermEditTask) {
		return nil, fmt.Errorf("attach file: %w", domain.ErrPermissionDenied)
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	att := newAttachment(upload)
	task.Attachments = append(task.Attachments, att)
	if err := s.tasks.Replace(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", taskID).Str("attachment", att.Name).Msg("task attachment stored")
	return &att, nil
}
