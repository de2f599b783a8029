package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sprintdesk/taskboard/internal/core/domain"
	"github.com/sprintdesk/taskboard/internal/core/ports"
)

// PolicyHandler exposes the runtime permission policy. Routes using it are
// mounted behind the admin RBAC middleware; the handler itself does not
// re-check the actor.
type PolicyHandler struct {
	service ports.PolicyService
}

func NewPolicyHandler(service ports.PolicyService) *PolicyHandler {
	return &PolicyHandler{service: service}
}

type setPermissionRequest struct {
	Role       string `json:"role" validate:"required"`
	Permission string `json:"permission" validate:"required"`
	Allowed    bool   `json:"allowed"`
}

// Get returns the current role → permissions table.
//
// @Summary      Get the permission policy
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Policy
// @Router       /v1/settings/permissions [get]
func (h *PolicyHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Policy())
}

// Set grants or revokes one permission for one role.
//
// @Summary      Update the permission policy
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setPermissionRequest  true  "Policy change"
// @Success      200   {object}  domain.Policy
// @Failure      422   {object}  map[string]string
// @Router       /v1/settings/permissions [put]
func (h *PolicyHandler) Set(c echo.Context) error {
	var req setPermissionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.service.SetPermission(domain.Role(req.Role), domain.Permission(req.Permission), req.Allowed); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.service.Policy())
}
