package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sprintdesk/taskboard/internal/core/domain"
	"github.com/sprintdesk/taskboard/internal/core/ports"
)

// ctxActor extracts the acting user injected by the Auth middleware and
// fast-fails before any service call: both claims must be present, and the
// role must be one the system knows, otherwise the token is structurally
// valid but operationally unusable.
func ctxActor(c echo.Context) (ports.Actor, error) {
	userID, _ := c.Get("user_id").(string)
	roleStr, _ := c.Get("role").(string)
	if userID == "" || roleStr == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role := domain.Role(roleStr)
	if !role.Valid() {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "token carries unknown role")
	}

	return ports.Actor{ID: userID, Role: role}, nil
}
