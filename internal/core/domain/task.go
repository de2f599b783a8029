package domain

import "time"

// TaskStatus is the board column a task sits in.
//
// There is deliberately no transition table: any status may follow any other,
// whether through an edit or a drag between columns. Do not add transition
// validation here without a product decision backing it.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
)

// TaskStatuses lists the statuses in board column order.
var TaskStatuses = []TaskStatus{StatusTodo, StatusInProgress, StatusReview, StatusDone}

// Valid reports whether s is one of the enumerated statuses.
func (s TaskStatus) Valid() bool {
	for _, known := range TaskStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Priority ranks task urgency.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Priorities lists the priorities from least to most urgent.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Valid reports whether p is one of the enumerated priorities.
func (p Priority) Valid() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

// Subtask is a checklist item embedded in a task. It has no identity outside
// its parent: deleting the task deletes its subtasks.
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Attachment is file metadata produced by the upload collaborator. The core
// only stores and lists it; there is no real blob behind URL.
type Attachment struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Type       string    `json:"type"`
	Size       string    `json:"size"`
	UploadDate time.Time `json:"upload_date"`
}

// Task is a unit of work, optionally tied to a project and an assignee.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    Priority     `json:"priority"`
	Points      int          `json:"points"`
	Assignee    string       `json:"assignee,omitempty"`   // user id, empty = unassigned
	ProjectID   string       `json:"project_id,omitempty"` // empty = general task
	StartDate   string       `json:"start_date,omitempty"` // ISO date YYYY-MM-DD
	DueDate     string       `json:"due_date,omitempty"`   // ISO date YYYY-MM-DD
	Color       string       `json:"color,omitempty"`      // display tag only
	Attachments []Attachment `json:"attachments"`
	Subtasks    []Subtask    `json:"subtasks"`
	CreatedAt   time.Time    `json:"created_at"`
}

// AllSubtasksCompleted reports whether the task has at least one subtask and
// every one of them is completed. Tasks without subtasks never auto-complete.
func (t *Task) AllSubtasksCompleted() bool {
	if len(t.Subtasks) == 0 {
		return false
	}
	for _, s := range t.Subtasks {
		if !s.Completed {
			return false
		}
	}
	return true
}

// SubtaskProgress returns the completed percentage of the task's checklist,
// rounded to the nearest integer. 0 when there are no subtasks.
func (t *Task) SubtaskProgress() int {
	if len(t.Subtasks) == 0 {
		return 0
	}
	completed := 0
	for _, s := range t.Subtasks {
		if s.Completed {
			completed++
		}
	}
	return int(float64(completed)/float64(len(t.Subtasks))*100 + 0.5)
}
