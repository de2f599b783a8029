package ports

import (
	"context"
	"time"

	"github.com/sprintdesk/taskboard/internal/core/domain"
)

// BoardColumn is one kanban column: a status and its tasks in store order.
type BoardColumn struct {
	Status domain.TaskStatus
	Tasks  []*domain.Task
}

// TimelineItem places one task on the date axis, in day units.
type TimelineItem struct {
	Task         *domain.Task
	OffsetDays   float64 // days from the axis start to the bar's left edge
	DurationDays float64 // bar length, never below 1
}

// Timeline is the date-axis view of a board's dated tasks.
type Timeline struct {
	AxisStart time.Time
	AxisEnd   time.Time
	Days      int // inclusive day count of the axis
	Items     []TimelineItem
}

// BoardService derives the kanban and timeline views from the task store.
type BoardService interface {
	// Board groups tasks into the four status columns, in enum order.
	// projectFilter: GeneralProject selects tasks without a project,
	// any other value selects tasks of that project.
	Board(ctx context.Context, projectFilter string) ([]BoardColumn, error)
	// Timeline maps the board's dated tasks onto the fixed axis
	// [today-15d, today+45d]. Tasks with neither start nor due date are
	// left out entirely.
	Timeline(ctx context.Context, projectFilter string) (*Timeline, error)
}
