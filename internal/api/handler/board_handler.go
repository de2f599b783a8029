package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sprintdesk/taskboard/internal/core/domain"
	"github.com/sprintdesk/taskboard/internal/core/ports"
)

// BoardHandler serves the kanban board and timeline projections.
type BoardHandler struct {
	service ports.BoardService
}

func NewBoardHandler(service ports.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

type boardColumnResponse struct {
	Status domain.TaskStatus `json:"status"`
	Tasks  []*domain.Task    `json:"tasks"`
}

type timelineItemResponse struct {
	Task         *domain.Task `json:"task"`
	OffsetDays   float64      `json:"offset_days"`
	DurationDays float64      `json:"duration_days"`
}

type timelineResponse struct {
	AxisStart string                 `json:"axis_start"`
	AxisEnd   string                 `json:"axis_end"`
	Days      int                    `json:"days"`
	Items     []timelineItemResponse `json:"items"`
}

// Board returns the four status columns for the selected project.
//
// @Summary      Kanban board columns
// @Tags         board
// @Produce      json
// @Security     BearerAuth
// @Param        project  query     string  false  "Project id or 'general'"
// @Success      200      {array}   boardColumnResponse
// @Router       /v1/board [get]
func (h *BoardHandler) Board(c echo.Context) error {
	columns, err := h.service.Board(c.Request().Context(), c.QueryParam("project"))
	if err != nil {
		return err
	}

	resp := make([]boardColumnResponse, 0, len(columns))
	for _, col := range columns {
		resp = append(resp, boardColumnResponse{Status: col.Status, Tasks: col.Tasks})
	}
	return c.JSON(http.StatusOK, resp)
}

// Timeline returns the date-axis layout for the selected project.
//
// @Summary      Timeline layout
// @Tags         board
// @Produce      json
// @Security     BearerAuth
// @Param        project  query     string  false  "Project id or 'general'"
// @Success      200      {object}  timelineResponse
// @Router       /v1/board/timeline [get]
func (h *BoardHandler) Timeline(c echo.Context) error {
	tl, err := h.service.Timeline(c.Request().Context(), c.QueryParam("project"))
	if err != nil {
		return err
	}

	resp := timelineResponse{
		AxisStart: tl.AxisStart.Format(time.DateOnly),
		AxisEnd:   tl.AxisEnd.Format(time.DateOnly),
		Days:      tl.Days,
		Items:     make([]timelineItemResponse, 0, len(tl.Items)),
	}
	for _, item := range tl.Items {
		resp.Items = append(resp.Items, timelineItemResponse{
			Task:         item.Task,
			OffsetDays:   item.OffsetDays,
			DurationDays: item.DurationDays,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
