package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sprintdesk/taskboard/internal/core/ports"
)

// maxUsersDisplayed caps the user rollup for display. The aggregation itself
// is unbounded; the cap belongs here, in the presentation layer.
const maxUsersDisplayed = 10

// ReportHandler serves the reporting overview.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Overview returns the full report bundle.
//
// @Summary      Reporting overview
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Overview
// @Failure      403  {object}  map[string]string
// @Router       /v1/reports/overview [get]
func (h *ReportHandler) Overview(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	ov, err := h.service.Overview(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	if len(ov.Users) > maxUsersDisplayed {
		ov.Users = ov.Users[:maxUsersDisplayed]
	}
	return c.JSON(http.StatusOK, ov)
}
