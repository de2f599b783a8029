package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sprintdesk/taskboard/internal/core/domain"
	"github.com/sprintdesk/taskboard/internal/core/ports"
)

// ReportService derives read-only aggregations over the current collections.
// Every ratio treats an empty denominator as zero.
type ReportService struct {
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
	users    ports.UserRepository
	policy   ports.PolicyView
	logger   zerolog.Logger
}

func NewReportService(tasks ports.TaskRepository, projects ports.ProjectRepository, users ports.UserRepository, policy ports.PolicyView, logger zerolog.Logger) *ReportService {
	return &ReportService{tasks: tasks, projects: projects, users: users, policy: policy, logger: logger}
}

// Overview computes the full report bundle. The user rollup is unbounded;
// display caps (first 10 users) belong to the presentation layer.
func (s *ReportService) Overview(ctx context.Context, actor ports.Actor) (*ports.Overview, error) {
	if !s.policy.Allow(actor.Role, domain.PermViewReports) {
		return nil, fmt.Errorf("reports overview: %w", domain.ErrPermissionDenied)
	}

	tasks, err := s.tasks.List(ctx, ports.TaskFilter{})
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	ov := &ports.Overview{TotalTasks: len(tasks)}

	statusCounts := make(map[domain.TaskStatus]int)
	priorityCounts := make(map[domain.Priority]int)
	done := 0
	for _, t := range tasks {
		statusCounts[t.Status]++
		priorityCounts[t.Priority]++
		ov.TotalPoints += t.Points
		if t.Status == domain.StatusDone {
			done++
			ov.CompletedPoints += t.Points
		}
	}
	ov.CompletionPct = roundPct(done, len(tasks))

	for _, status := range domain.TaskStatuses {
		ov.ByStatus = append(ov.ByStatus, ports.StatusCount{Status: status, Count: statusCounts[status]})
	}
	for _, priority := range domain.Priorities {
		ov.ByPriority = append(ov.ByPriority, ports.PriorityCount{Priority: priority, Count: priorityCounts[priority]})
	}

	ov.Projects = make([]ports.ProjectProgress, 0, len(projects))
	for _, p := range projects {
		total, pDone := 0, 0
		for _, t := range tasks {
			if t.ProjectID != p.ID {
				continue
			}
			total++
			if t.Status == domain.StatusDone {
				pDone++
			}
		}
		ov.Projects = append(ov.Projects, ports.ProjectProgress{
			ProjectID:   p.ID,
			ProjectName: p.Name,
			TotalTasks:  total,
			DoneTasks:   pDone,
			Progress:    roundPct(pDone, total),
		})
	}

	ov.Users = make([]ports.UserPerformance, 0, len(users))
	for _, u := range users {
		completed, active := 0, 0
		for _, t := range tasks {
			if t.Assignee != u.ID {
				continue
			}
			if t.Status == domain.StatusDone {
				completed++
			} else {
				active++
			}
		}
		ov.Users = append(ov.Users, ports.UserPerformance{
			UserID:    u.ID,
			UserName:  u.Name,
			Completed: completed,
			Active:    active,
		})
	}

	return ov, nil
}

// roundPct returns part/total as a rounded percentage, 0 when total is 0.
func roundPct(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(part)/float64(total)*100 + 0.5)
}
