package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sprintdesk/taskboard/internal/api/metrics"
	"github.com/sprintdesk/taskboard/internal/core/domain"
	"github.com/sprintdesk/taskboard/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type projectRequest struct {
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description"`
	ManagerID   string              `json:"manager_id" validate:"required"`
	StartDate   string              `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string              `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Members     []string            `json:"members"`
	Attachments []domain.Attachment `json:"attachments"`
}

type deleteProjectResponse struct {
	TasksRemoved int `json:"tasks_removed"`
}

// List returns all projects.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Project
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Get returns a single project.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Create stores a new project.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      projectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Members:     req.Members,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, project)
}

// Update fully replaces a project.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Project id"
// @Param        body  body      projectRequest  true  "Project details"
// @Success      200   {object}  domain.Project
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	project, err := h.service.Update(c.Request().Context(), ports.UpdateProjectInput{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Members:     req.Members,
		Attachments: req.Attachments,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, project)
}

// Delete removes a project and cascades to its tasks.
//
// @Summary      Delete a project and its tasks
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  deleteProjectResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	result, err := h.service.Delete(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}

	metrics.CascadeDeletedTasksTotal.Add(float64(result.TasksRemoved))
	return c.JSON(http.StatusOK, deleteProjectResponse{TasksRemoved: result.TasksRemoved})
}

// Attach stores upload metadata for a file on the project.
//
// @Summary      Attach a file to a project
// @Tags         projects
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Project id"
// @Param        file  formData  file    true  "File"
// @Success      201   {object}  domain.Attachment
// @Failure      403   {object}  map[string]string
// @Router       /v1/projects/{id}/attachments [post]
func (h *ProjectHandler) Attach(c echo.Context) error {
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
