package domain

import "testing"

func TestAllSubtasksCompleted(t *testing.T) {
	cases := []struct {
		name     string
		subtasks []Subtask
		want     bool
	}{
		{"no subtasks", nil, false},
		{"all complete", []Subtask{{Completed: true}, {Completed: true}}, true},
		{"one incomplete", []Subtask{{Completed: true}, {Completed: false}}, false},
		{"single complete", []Subtask{{Completed: true}}, true},
	}

	for _, tc := range cases {
		task := Task{Subtasks: tc.subtasks}
		if got := task.AllSubtasksCompleted(); got != tc.want {
			t.Errorf("%s: AllSubtasksCompleted() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSubtaskProgress(t *testing.T) {
	cases := []struct {
		name     string
		subtasks []Subtask
		want     int
	}{
		{"no subtasks", nil, 0},
		{"half", []Subtask{{Completed: true}, {Completed: false}}, 50},
		{"one of three rounds", []Subtask{{Completed: true}, {}, {}}, 33},
		{"two of three rounds", []Subtask{{Completed: true}, {Completed: true}, {}}, 67},
		{"all", []Subtask{{Completed: true}}, 100},
	}

	for _, tc := range cases {
		task := Task{Subtasks: tc.subtasks}
		if got := task.SubtaskProgress(); got != tc.want {
			t.Errorf("%s: SubtaskProgress() = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestEnumValidity(t *testing.T) {
	if !StatusReview.Valid() || TaskStatus("archived").Valid() {
		t.Error("status validity check wrong")
	}
	if !PriorityCritical.Valid() || Priority("urgent").Valid() {
		t.Error("priority validity check wrong")
	}
	if !RoleScrumMaster.Valid() || Role("intern").Valid() {
		t.Error("role validity check wrong")
	}
}
