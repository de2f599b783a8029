// Package metrics defines and registers all custom Prometheus metrics for
// the taskboard API. It is the single source of truth for metric names,
// labels, and help strings; registration happens through promauto at import
// time and the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskboard"

// TasksCreatedTotal counts created tasks.
// Labels:
//   - priority: low, medium, high, critical
//   - origin: "manual" or "assistant"
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by priority and origin.",
	},
	[]string{"priority", "origin"},
)

// PermissionDenialsTotal counts requests rejected by the policy, by route.
// Label:
//   - path: the route pattern of the denied request
var PermissionDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_denials_total",
		Help:      "Total number of requests rejected for a missing permission.",
	},
	[]string{"path"},
)

// AutoCompletionsTotal counts edit saves where the subtask cascade forced a
// task to done.
var AutoCompletionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_auto_completions_total",
		Help:      "Total number of tasks forced to done by the subtask completion cascade.",
	},
)

// CascadeDeletedTasksTotal counts tasks removed by project cascade deletes.
var CascadeDeletedTasksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_deleted_tasks_total",
		Help:      "Total number of tasks removed because their project was deleted.",
	},
)

// CollaboratorFailuresTotal counts failed external collaborator calls.
// Label:
//   - operation: "generate" or "risks"
var CollaboratorFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "collaborator_failures_total",
		Help:      "Total number of failed calls to the external AI collaborator.",
	},
	[]string{"operation"},
)
