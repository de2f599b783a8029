package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/sprintdesk/taskboard/internal/api/handler"
	"github.com/sprintdesk/taskboard/internal/api/middleware"
	"github.com/sprintdesk/taskboard/internal/core/domain"
	"github.com/sprintdesk/taskboard/internal/core/ports"
	"github.com/sprintdesk/taskboard/internal/core/service"
	"github.com/sprintdesk/taskboard/internal/infrastructure/memory"
)

// Deps bundles everything the router needs.
type Deps struct {
	Store     *memory.Store
	Generator ports.TaskGenerator
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskboard"))

	// --- Dependencies ---
	users := memory.NewUserRepository(deps.Store)
	projects := memory.NewProjectRepository(deps.Store)
	tasks := memory.NewTaskRepository(deps.Store)

	policyService := service.NewPolicyService(domain.DefaultPolicy(), deps.Logger)
	authService := service.NewAuthService(users, deps.JWTSecret, 24*time.Hour)
	projectService := service.NewProjectService(projects, users, policyService, deps.Logger)
	taskService := service.NewTaskService(tasks, projects, policyService, deps.Logger)
	boardService := service.NewBoardService(tasks, deps.Logger)
	reportService := service.NewReportService(tasks, projects, users, policyService, deps.Logger)
	assistantService := service.NewAssistantService(deps.Generator, tasks, projects, policyService, deps.Logger)

	authHandler := handler.NewAuthHandler(authService, users)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	boardHandler := handler.NewBoardHandler(boardService)
	reportHandler := handler.NewReportHandler(reportService)
	policyHandler := handler.NewPolicyHandler(policyService)
	assistantHandler := handler.NewAssistantHandler(assistantService)

	authMiddleware := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RBAC(string(domain.RoleAdmin))

	// --- Public routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.GET("/health", liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/users", authHandler.ListUsers)

	v1.GET("/projects", projectHandler.List)
	v1.POST("/projects", projectHandler.Create)
	v1.GET("/projects/:id", projectHandler.Get)
	v1.PUT("/projects/:id", projectHandler.Update)
	v1.DELETE("/projects/:id", projectHandler.Delete)
	v1.POST("/projects/:id/attachments", projectHandler.Attach)

	v1.GET("/tasks", taskHandler.List)
	v1.POST("/tasks", taskHandler.Create)
	v1.GET("/tasks/:id", taskHandler.Get)
	v1.PUT("/tasks/:id", taskHandler.Update)
	v1.DELETE("/tasks/:id", taskHandler.Delete)
	v1.PUT("/tasks/:id/status", taskHandler.SetStatus)
	v1.POST("/tasks/:id/attachments", taskHandler.Attach)

	v1.GET("/board", boardHandler.Board)
	v1.GET("/board/timeline", boardHandler.Timeline)

	v1.GET("/reports/overview", reportHandler.Overview)

	v1.POST("/assistant/generate", assistantHandler.Generate)

	// Policy edits are admin-only at the transport layer; the policy
	// service itself only guards the Admin invariant.
	settings := v1.Group("/settings", adminOnly)
	settings.GET("/permissions", policyHandler.Get)
	settings.PUT("/permissions", policyHandler.Set)

	return e
}

// liveness reports that the process is alive. There are no external
// dependencies to probe: all state is in-memory.
func liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
