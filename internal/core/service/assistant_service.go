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

// AssistantService turns a free-text prompt into stored tasks through the
// external task-generation collaborator, then asks the same collaborator for
// a risk summary. The collaborator call happens before any store mutation,
// so a failed call leaves the store untouched.
type AssistantService struct {
	generator ports.TaskGenerator
	tasks     ports.TaskRepository
	projects  ports.ProjectRepository
	policy    ports.PolicyView
	logger    zerolog.Logger
}

func NewAssistantService(generator ports.TaskGenerator, tasks ports.TaskRepository, projects ports.ProjectRepository, policy ports.PolicyView, logger zerolog.Logger) *AssistantService {
	return &AssistantService{generator: generator, tasks: tasks, projects: projects, policy: policy, logger: logger}
}

// Generate wraps each draft returned by the collaborator into a full task:
// generated id, status todo, no assignee, the board's project, empty
// subtasks and attachments.
func (s *AssistantService) Generate(ctx context.Context, prompt, projectFilter string, actor ports.Actor) (*ports.GenerateResult, error) {
	if !s.policy.Allow(actor.Role, domain.PermCreateTask) {
		return nil, fmt.Errorf("generate tasks: %w", domain.ErrPermissionDenied)
	}
	if prompt == "" {
		return nil, fmt.Errorf("%w: prompt is required", domain.ErrValidation)
	}

	projectID := ""
	if projectFilter != "" && projectFilter != ports.GeneralProject {
		project, err := s.projects.FindByID(ctx, projectFilter)
		if err != nil {
			return nil, err
		}
		projectID = project.ID
	}

	drafts, err := s.generator.GenerateTasks(ctx, prompt)
	if err != nil {
		s.logger.Error().Err(err).Msg("task generation failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrCollaborator, err)
	}

	now := time.Now().UTC()
	result := &ports.GenerateResult{Tasks: make([]*domain.Task, 0, len(drafts))}
	for _, d := range drafts {
		priority := d.Priority
		if !priority.Valid() {
			priority = domain.PriorityMedium
		}
		points := d.Points
		if points < 0 {
			points = 0
		}
		task := &domain.Task{
			ID:          uuid.NewString(),
			Title:       d.Title,
			Description: d.Description,
			Status:      domain.StatusTodo,
			Priority:    priority,
			Points:      points,
			ProjectID:   projectID,
			Attachments: []domain.Attachment{},
			Subtasks:    []domain.Subtask{},
			CreatedAt:   now,
		}
		if err := s.tasks.Insert(ctx, task); err != nil {
			return nil, err
		}
		result.Tasks = append(result.Tasks, task)
	}

	s.logger.Info().Int("count", len(result.Tasks)).Str("actor", actor.ID).Msg("tasks generated")

	// Risk analysis is best effort: the tasks are already stored, a failed
	// summary only costs the caller the text.
	summary, err := s.generator.AnalyzeRisks(ctx, prompt, len(result.Tasks))
	if err != nil {
		s.logger.Warn().Err(err).Msg("risk analysis failed")
		return result, nil
	}
	result.RiskAnalysis = summary

	return result, nil
}
