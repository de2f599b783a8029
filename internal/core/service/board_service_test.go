package service

import (
	"context"
	"testing"
	"time"

	"github.com/sprintdesk/taskboard/internal/core/domain"
	"github.com/sprintdesk/taskboard/internal/core/ports"
)

func newBoardFixture() (*BoardService, *stubTaskRepo) {
	repo := &stubTaskRepo{}
	svc := NewBoardService(repo, discardLogger)
	return svc, repo
}

func TestBoardService_Board_ColumnOrderAndGrouping(t *testing.T) {
	svc, repo := newBoardFixture()
	seedTask(repo, domain.Task{ID: "t1", Title: "a", Status: domain.StatusDone})
	seedTask(repo, domain.Task{ID: "t2", Title: "b", Status: domain.StatusTodo})
	seedTask(repo, domain.Task{ID: "t3", Title: "c", Status: domain.StatusTodo})

	columns, err := svc.Board(context.Background(), "")
	if err != nil {
		t.Fatalf("board: %v", err)
	}

	if len(columns) != len(domain.TaskStatuses) {
		t.Fatalf("got %d columns, want %d", len(columns), len(domain.TaskStatuses))
	}
	for i, status := range domain.TaskStatuses {
		if columns[i].Status != status {
			t.Errorf("column %d status = %s, want %s", i, columns[i].Status, status)
		}
		if columns[i].Tasks == nil {
			t.Errorf("column %s tasks must be an empty slice, not nil", status)
		}
	}

	todo := columns[0]
	if len(todo.Tasks) != 2 || todo.Tasks[0].ID != "t2" || todo.Tasks[1].ID != "t3" {
		t.Errorf("todo column order wrong: %+v", todo.Tasks)
	}
	if len(columns[3].Tasks) != 1 || columns[3].Tasks[0].ID != "t1" {
		t.Errorf("done column wrong: %+v", columns[3].Tasks)
	}
	if len(columns[1].Tasks) != 0 || len(columns[2].Tasks) != 0 {
		t.Error("empty columns must stay empty")
	}
}

func TestBoardService_Board_GeneralFilter(t *testing.T) {
	svc, repo := newBoardFixture()
	seedTask(repo, domain.Task{ID: "t1", Title: "a", Status: domain.StatusTodo, ProjectID: "p1"})
	seedTask(repo, domain.Task{ID: "t2", Title: "b", Status: domain.StatusTodo})

	columns, err := svc.Board(context.Background(), ports.GeneralProject)
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	if len(columns[0].Tasks) != 1 || columns[0].Tasks[0].ID != "t2" {
		t.Errorf("general filter must keep only unassigned tasks, got %+v", columns[0].Tasks)
	}
}

func TestBoardService_Timeline_Axis(t *testing.T) {
	svc, repo := newBoardFixture()
	svc.now = func() time.Time { return time.Date(2024, 3, 20, 14, 30, 0, 0, time.UTC) }
	seedTask(repo, domain.Task{ID: "t1", Title: "a", Status: domain.StatusTodo, StartDate: "2024-03-20"})

	tl, err := svc.Timeline(context.Background(), "")
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}

	if got := tl.AxisStart.Format(isoDate); got != "2024-03-05" {
		t.Errorf("axis start = %s, want 2024-03-05", got)
	}
	if got := tl.AxisEnd.Format(isoDate); got != "2024-05-04" {
		t.Errorf("axis end = %s, want 2024-05-04", got)
	}
	if tl.Days != 61 {
		t.Errorf("axis days = %d, want 61", tl.Days)
	}
}

func TestBoardService_Timeline_OffsetAndDuration(t *testing.T) {
	svc, repo := newBoardFixture()
	svc.now = func() time.Time { return time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC) }
	// Starts exactly at the axis origin, due four days later.
	seedTask(repo, domain.Task{
		ID: "t1", Title: "a", Status: domain.StatusTodo,
		StartDate: "2024-03-05", DueDate: "2024-03-09",
	})

	tl, err := svc.Timeline(context.Background(), "")
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(tl.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(tl.Items))
	}
	item := tl.Items[0]
	if item.OffsetDays != 0 {
		t.Errorf("offset = %v, want 0", item.OffsetDays)
	}
	if item.DurationDays != 4 {
		t.Errorf("duration = %v, want 4", item.DurationDays)
	}
}

func TestBoardService_Timeline_Fallbacks(t *testing.T) {
	svc, repo := newBoardFixture()
	svc.now = func() time.Time { return time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC) }
	// Only a due date: the bar starts today.
	seedTask(repo, domain.Task{ID: "t1", Title: "a", Status: domain.StatusTodo, DueDate: "2024-03-25"})
	// Only a start date: the bar runs one day.
	seedTask(repo, domain.Task{ID: "t2", Title: "b", Status: domain.StatusTodo, StartDate: "2024-03-22"})
	// Due before start: duration clamps to one day.
	seedTask(repo, domain.Task{
		ID: "t3", Title: "c", Status: domain.StatusTodo,
		StartDate: "2024-03-22", DueDate: "2024-03-21",
	})
	// Neither date: excluded entirely.
	seedTask(repo, domain.Task{ID: "t4", Title: "d", Status: domain.StatusTodo})

	tl, err := svc.Timeline(context.Background(), "")
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(tl.Items) != 3 {
		t.Fatalf("got %d items, want 3 (undated task must be excluded)", len(tl.Items))
	}

	if tl.Items[0].OffsetDays != 15 || tl.Items[0].DurationDays != 5 {
		t.Errorf("due-only item: offset=%v duration=%v, want 15 and 5", tl.Items[0].OffsetDays, tl.Items[0].DurationDays)
	}
	if tl.Items[1].OffsetDays != 17 || tl.Items[1].DurationDays != 1 {
		t.Errorf("start-only item: offset=%v duration=%v, want 17 and 1", tl.Items[1].OffsetDays, tl.Items[1].DurationDays)
	}
	if tl.Items[2].DurationDays != 1 {
		t.Errorf("inverted dates: duration=%v, want clamp to 1", tl.Items[2].DurationDays)
	}
}

func TestBoardService_Timeline_SkipsUnparseableDates(t *testing.T) {
	svc, repo := newBoardFixture()
	svc.now = func() time.Time { return time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC) }
	seedTask(repo, domain.Task{ID: "t1", Title: "a", Status: domain.StatusTodo, StartDate: "20/03/2024"})
	seedTask(repo, domain.Task{ID: "t2", Title: "b", Status: domain.StatusTodo, StartDate: "2024-03-21"})

	tl, err := svc.Timeline(context.Background(), "")
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(tl.Items) != 1 || tl.Items[0].Task.ID != "t2" {
		t.Fatalf("unparseable dates must be skipped, got %+v", tl.Items)
	}
}
