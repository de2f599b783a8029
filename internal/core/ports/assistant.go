package ports

import (
	"context"

	"github.com/sprintdesk/taskboard/internal/core/domain"
)

// DraftTask is the shape the task-generation collaborator returns. The core
// wraps each draft into a full task before anything touches the store.
type DraftTask struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    domain.Priority `json:"priority"`
	Points      int             `json:"points"`
}

// TaskGenerator is the external AI collaborator. Both calls are opaque
// remote requests that may fail; failures surface as domain.ErrCollaborator
// and never corrupt core state.
type TaskGenerator interface {
	GenerateTasks(ctx context.Context, prompt string) ([]DraftTask, error)
	// AnalyzeRisks returns a free-text summary. Displayed verbatim,
	// stored nowhere.
	AnalyzeRisks(ctx context.Context, prompt string, taskCount int) (string, error)
}

// GenerateResult is what the assistant hands back to the caller.
type GenerateResult struct {
	Tasks        []*domain.Task `json:"tasks"`
	RiskAnalysis string         `json:"risk_analysis,omitempty"`
}

// AssistantService turns a free-text prompt into stored tasks plus a
// risk summary.
type AssistantService interface {
	// Generate requires the CreateTask permission. Generated tasks land in
	// projectFilter's project (GeneralProject = no project), status todo,
	// unassigned, with empty subtasks and attachments.
	Generate(ctx context.Context, prompt, projectFilter string, actor Actor) (*GenerateResult, error)
}
