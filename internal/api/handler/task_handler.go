package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sprintdesk/taskboard/internal/api/metrics"
	"github.com/sprintdesk/taskboard/internal/core/domain"
	"github.com/sprintdesk/taskboard/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

type taskRequest struct {
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description"`
	Status      string              `json:"status" validate:"omitempty,oneof=todo in_progress review done"`
	Priority    string              `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	Points      int                 `json:"points" validate:"gte=0"`
	Assignee    string              `json:"assignee"`
	ProjectID   string              `json:"project_id"`
	StartDate   string              `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	DueDate     string              `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Color       string              `json:"color"`
	Subtasks    []domain.Subtask    `json:"subtasks"`
	Attachments []domain.Attachment `json:"attachments"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=todo in_progress review done"`
}

// List returns tasks, optionally filtered by project, assignee, or status.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        project   query     string  false  "Project id or 'general'"
// @Param        assignee  query     string  false  "Assignee user id"
// @Param        status    query     string  false  "Task status"
// @Success      200       {array}   domain.Task
// @Router       /v1/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.service.List(c.Request().Context(), ports.TaskFilter{
		ProjectID: c.QueryParam("project"),
		Assignee:  c.QueryParam("assignee"),
		Status:    domain.TaskStatus(c.QueryParam("status")),
	})
	if err != nil {
		return err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}

// Get returns a single task.
//
// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  domain.Task
// @Failure      404  {object}  map[string]string
// @Router       /v1/tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	task, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Create stores a new task.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      taskRequest  true  "Task details"
// @Success      201   {object}  domain.Task
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	task, err := h.service.Create(c.Request().Context(), ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.Priority(req.Priority),
		Points:      req.Points,
		Assignee:    req.Assignee,
		ProjectID:   req.ProjectID,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		Color:       req.Color,
		Subtasks:    req.Subtasks,
	}, actor)
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Priority), "manual").Inc()
	return c.JSON(http.StatusCreated, task)
}

// Update fully replaces a task. The stored status may differ from the
// submitted one when the subtask auto-completion cascade fires.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Task id"
// @Param        body  body      taskRequest  true  "Task details"
// @Success      200   {object}  domain.Task
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	status := domain.TaskStatus(req.Status)
	if status == "" {
		status = domain.StatusTodo
	}
	priority := domain.Priority(req.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}

	submitted := status
	task, err := h.service.Update(c.Request().Context(), ports.UpdateTaskInput{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		Points:      req.Points,
		Assignee:    req.Assignee,
		ProjectID:   req.ProjectID,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		Color:       req.Color,
		Subtasks:    req.Subtasks,
		Attachments: req.Attachments,
	}, actor)
	if err != nil {
		return err
	}

	if task.Status == domain.StatusDone && submitted != domain.StatusDone {
		metrics.AutoCompletionsTotal.Inc()
	}
	return c.JSON(http.StatusOK, task)
}

// Delete removes a task.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Task id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SetStatus overwrites a task's status (board drag-and-drop).
//
// @Summary      Set task status
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Task id"
// @Param        body  body      setStatusRequest  true  "New status"
// @Success      200   {object}  domain.Task
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/tasks/{id}/status [put]
func (h *TaskHandler) SetStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	task, err := h.service.SetStatus(c.Request().Context(), c.Param("id"), domain.TaskStatus(req.Status), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Attach stores upload metadata for a file on the task.
//
// @Summary      Attach a file to a task
// @Tags         tasks
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Task id"
// @Param        file  formData  file    true  "File"
// @Success      201   {object}  domain.Attachment
// @Failure      403   {object}  map[string]string
// @Router       /v1/tasks/{id}/attachments [post]
func (h *TaskHandler) Attach(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}

	att, err := h.service.AttachFile(c.Request().Context(), c.Param("id"), ports.UploadInput{
		Name:      file.Filename,
		Type:      file.Header.Get("Content-Type"),
		SizeBytes: file.Size,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, att)
}
