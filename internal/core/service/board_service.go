package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sprintdesk/taskboard/internal/core/domain"
	"github.com/sprintdesk/taskboard/internal/core/ports"
)

const (
	// The timeline axis spans a fixed window around today.
	axisDaysBefore = 15
	axisDaysAfter  = 45
)

// BoardService derives the kanban board and the date timeline from the task
// store. Both are pure projections: reads only, no permission gating.
type BoardService struct {
	tasks  ports.TaskRepository
	logger zerolog.Logger
	// now is swapped out in tests to pin the axis.
	now func() time.Time
}

func NewBoardService(tasks ports.TaskRepository, logger zerolog.Logger) *BoardService {
	return &BoardService{tasks: tasks, logger: logger, now: time.Now}
}

// Board groups the filtered tasks into the four status columns. Column order
// follows the status enumeration; tasks within a column keep store insertion
// order.
func (s *BoardService) Board(ctx context.Context, projectFilter string) ([]ports.BoardColumn, error) {
	tasks, err := s.tasks.List(ctx, ports.TaskFilter{ProjectID: projectFilter})
	if err != nil {
		return nil, err
	}

	byStatus := make(map[domain.TaskStatus][]*domain.Task, len(domain.TaskStatuses))
	for _, t := range tasks {
		byStatus[t.Status] = append(byStatus[t.Status], t)
	}

	columns := make([]ports.BoardColumn, 0, len(domain.TaskStatuses))
	for _, status := range domain.TaskStatuses {
		col := ports.BoardColumn{Status: status, Tasks: byStatus[status]}
		if col.Tasks == nil {
			col.Tasks = []*domain.Task{}
		}
		columns = append(columns, col)
	}
	return columns, nil
}

// Timeline maps the filtered tasks onto the fixed axis [today-15d, today+45d].
// A task's bar starts at its start date (falling back to today) and runs to
// its due date (falling back to one day after the start), never shorter than
// one day. Tasks with neither date are excluded rather than plotted at the
// axis origin.
func (s *BoardService) Timeline(ctx context.Context, projectFilter string) (*ports.Timeline, error) {
	tasks, err := s.tasks.List(ctx, ports.TaskFilter{ProjectID: projectFilter})
	if err != nil {
		return nil, err
	}

	today := truncateToDay(s.now().UTC())
	axisStart := today.AddDate(0, 0, -axisDaysBefore)
	axisEnd := today.AddDate(0, 0, axisDaysAfter)

	tl := &ports.Timeline{
		AxisStart: axisStart,
		AxisEnd:   axisEnd,
		Days:      axisDaysBefore + axisDaysAfter + 1,
		Items:     []ports.TimelineItem{},
	}

	for _, t := range tasks {
		if t.StartDate == "" && t.DueDate == "" {
			continue
		}

		start := today
		if t.StartDate != "" {
			parsed, err := time.Parse(isoDate, t.StartDate)
			if err != nil {
				s.logger.Warn().Str("task_id", t.ID).Str("start_date", t.StartDate).Msg("unparseable start date, skipping task")
				continue
			}
			start = parsed
		}
		end := start.AddDate(0, 0, 1)
		if t.DueDate != "" {
			parsed, err := time.Parse(isoDate, t.DueDate)
			if err != nil {
				s.logger.Warn().Str("task_id", t.ID).Str("due_date", t.DueDate).Msg("unparseable due date, skipping task")
				continue
			}
			end = parsed
		}

		offsetDays := start.Sub(axisStart).Hours() / 24
		durationDays := end.Sub(start).Hours() / 24
		if durationDays < 1 {
			durationDays = 1
		}

		tl.Items = append(tl.Items, ports.TimelineItem{
			Task:         t,
			OffsetDays:   offsetDays,
			DurationDays: durationDays,
		})
	}

	return tl, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
