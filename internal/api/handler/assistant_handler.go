package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sprintdesk/taskboard/internal/api/metrics"
	"github.com/sprintdesk/taskboard/internal/core/domain"
	"github.com/sprintdesk/taskboard/internal/core/ports"
)

// AssistantHandler bridges the external task-generation collaborator.
type AssistantHandler struct {
	service ports.AssistantService
}

func NewAssistantHandler(service ports.AssistantService) *AssistantHandler {
	return &AssistantHandler{service: service}
}

type generateRequest struct {
	Prompt  string `json:"prompt" validate:"required"`
	Project string `json:"project"` // project id or 'general'
}

// Generate turns a free-text description into stored draft tasks plus a
// risk summary.
//
// @Summary      Generate tasks from a prompt
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generateRequest  true  "Prompt and target project"
// @Success      201   {object}  ports.GenerateResult
// @Failure      403   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/assistant/generate [post]
func (h *AssistantHandler) Generate(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.service.Generate(c.Request().Context(), req.Prompt, req.Project, actor)
	if err != nil {
		if errors.Is(err, domain.ErrCollaborator) {
			metrics.CollaboratorFailuresTotal.WithLabelValues("generate").Inc()
		}
		return err
	}

	for _, t := range result.Tasks {
		metrics.TasksCreatedTotal.WithLabelValues(string(t.Priority), "assistant").Inc()
	}
	return c.JSON(http.StatusCreated, result)
}
