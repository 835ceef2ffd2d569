package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"aura/internal/middleware"
	taskHTTP "aura/internal/task/delivery/http"
	taskRepo "aura/internal/task/repository/postgre"
	taskUC "aura/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := taskRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := taskUC.New(srv.l, repo, srv.dateMath, srv.now)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: /api/v1/tasks, /api/v1/views, /api/v1/statuses, /api/v1/projects
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
