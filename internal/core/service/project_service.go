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

const isoDate = "2006-01-02"

// ProjectService implements project CRUD with permission gating and the
// cascade delete into the task collection.
type ProjectService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	policy   ports.PolicyView
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, users ports.UserRepository, policy ports.PolicyView, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, users: users, policy: policy, logger: logger}
}

// Create validates and stores a new project. The acting user becomes the
// default member list when none is supplied.
func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput, actor ports.Actor) (*domain.Project, error) {
	if !s.policy.Allow(actor.Role, domain.PermCreateProject) {
		return nil, fmt.Errorf("create project: %w", domain.ErrPermissionDenied)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: project name is required", domain.ErrValidation)
	}
	if input.ManagerID == "" {
		return nil, fmt.Errorf("%w: manager is required", domain.ErrValidation)
	}
	if _, err := s.users.FindByID(ctx, input.ManagerID); err != nil {
		return nil, fmt.Errorf("%w: manager %q does not exist", domain.ErrValidation, input.ManagerID)
	}
	if err := validateDates(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	startDate := input.StartDate
	if startDate == "" {
		startDate = now.Format(isoDate)
	}
	members := input.Members
	if len(members) == 0 {
		members = []string{actor.ID}
	}

	project := &domain.Project{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		ManagerID:   input.ManagerID,
		StartDate:   startDate,
		EndDate:     input.EndDate,
		Members:     members,
		Attachments: []domain.Attachment{},
		CreatedAt:   now,
	}

	if err := s.projects.Insert(ctx, project); err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", project.ID).Str("actor", actor.ID).Msg("project created")
	return project, nil
}

// Update fully replaces the stored project. Unknown ids surface as
// ErrProjectNotFound; callers treating that as a no-op is a policy choice
// made at the edge.
func (s *ProjectService) Update(ctx context.Context, input ports.UpdateProjectInput, actor ports.Actor) (*domain.Project, error) {
	if !s.policy.Allow(actor.Role, domain.PermEditProject) {
		return nil, fmt.Errorf("update project: %w", domain.ErrPermissionDenied)
	}
	if input.ID == "" {
		return nil, fmt.Errorf("%w: project id is required", domain.ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: project name is required", domain.ErrValidation)
	}
	if input.ManagerID == "" {
		return nil, fmt.Errorf("%w: manager is required", domain.ErrValidation)
	}
	if _, err := s.users.FindByID(ctx, input.ManagerID); err != nil {
		return nil, fmt.Errorf("%w: manager %q does not exist", domain.ErrValidation, input.ManagerID)
	}
	if err := validateDates(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	existing, err := s.projects.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	updated := &domain.Project{
		ID:          existing.ID,
		Name:        input.Name,
		Description: input.Description,
		ManagerID:   input.ManagerID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Members:     input.Members,
		Attachments: input.Attachments,
		CreatedAt:   existing.CreatedAt,
	}
	if updated.StartDate == "" {
		updated.StartDate = existing.StartDate
	}
	if updated.Members == nil {
		updated.Members = []string{}
	}
	if updated.Attachments == nil {
		updated.Attachments = existing.Attachments
	}

	if err := s.projects.Replace(ctx, updated); err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", updated.ID).Str("actor", actor.ID).Msg("project updated")
	return updated, nil
}

// Delete removes the project and cascades to its tasks. The repository
// performs both collection updates atomically.
func (s *ProjectService) Delete(ctx context.Context, id string, actor ports.Actor) (*ports.DeleteProjectResult, error) {
	if !s.policy.Allow(actor.Role, domain.PermDeleteProject) {
		return nil, fmt.Errorf("delete project: %w", domain.ErrPermissionDenied)
	}

	removed, err := s.projects.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("project_id", id).
		Str("actor", actor.ID).
		Int("tasks_removed", removed).
		Msg("project deleted")
	return &ports.DeleteProjectResult{TasksRemoved: removed}, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.FindByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

// AttachFile appends the upload collaborator's metadata record to the
// project. Gated by EditProject since it mutates the project record.
func (s *ProjectService) AttachFile(ctx context.Context, projectID string, upload ports.UploadInput, actor ports.Actor) (*domain.Attachment, error) {
	if !s.policy.Allow(actor.Role, domain.PermEditProject) {
		return nil, fmt.Errorf("attach file: %w", domain.ErrPermissionDenied)
	}

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	att := newAttachment(upload)
	project.Attachments = append(project.Attachments, att)
	if err := s.projects.Replace(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", projectID).Str("attachment", att.Name).Msg("project attachment stored")
	return &att, nil
}

// newAttachment builds the metadata record for an uploaded file. There is no
// real storage behind it: the url is a placeholder and the size a display
// string in KB.
func newAttachment(upload ports.UploadInput) domain.Attachment {
	return domain.Attachment{
		ID:         uuid.NewString(),
		Name:       upload.Name,
		URL:        "#",
		Type:       upload.Type,
		Size:       fmt.Sprintf("%.2f KB", float64(upload.SizeBytes)/1024),
		UploadDate: time.Now().UTC(),
	}
}

// validateDates checks optional ISO dates for well-formedness.
func validateDates(dates ...string) error {
	for _, d := range dates {
		if d == "" {
			continue
		}
		if _, err := time.Parse(isoDate, d); err != nil {
			return fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD", domain.ErrValidation, d)
		}
	}
	return nil
}
