package ports

import (
	"context"

	"github.com/sprintdesk/taskboard/internal/core/domain"
)

// StatusCount is one slice of the status breakdown.
type StatusCount struct {
	Status domain.TaskStatus `json:"status"`
	Count  int               `json:"count"`
}

// PriorityCount is one bar of the priority breakdown.
type PriorityCount struct {
	Priority domain.Priority `json:"priority"`
	Count    int             `json:"count"`
}

// ProjectProgress is the completion rollup for one project.
type ProjectProgress struct {
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`
	TotalTasks  int    `json:"total_tasks"`
	DoneTasks   int    `json:"done_tasks"`
	Progress    int    `json:"progress"` // rounded percent, 0 when the project has no tasks
}

// UserPerformance is the completed-vs-active rollup for one user.
type UserPerformance struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Completed int    `json:"completed"`
	Active    int    `json:"active"`
}

// Overview bundles every report aggregation. All fields are zero-safe:
// an empty store yields counts of zero and 0%, never a division error.
type Overview struct {
	TotalTasks      int               `json:"total_tasks"`
	CompletionPct   int               `json:"completion_pct"`
	ByStatus        []StatusCount     `json:"by_status"`
	ByPriority      []PriorityCount   `json:"by_priority"`
	Projects        []ProjectProgress `json:"projects"`
	Users           []UserPerformance `json:"users"` // unbounded; display capping is the caller's concern
	TotalPoints     int               `json:"total_points"`
	CompletedPoints int               `json:"completed_points"`
}

// ReportService derives read-only aggregations over the current store.
type ReportService interface {
	// Overview requires the ViewReports permission.
	Overview(ctx context.Context, actor Actor) (*Overview, error)
}
