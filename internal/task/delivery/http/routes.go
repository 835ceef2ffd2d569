package http

import (
	"github.com/gin-gonic/gin"

	"aura/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route runs with the caller's Scope; capture is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Scope())

	tasks := rg.Group("/tasks")
	{
		tasks.POST("/capture", mw.RateLimit(), h.Capture)
		tasks.GET("/board", h.Board)
		tasks.POST("/:id/move", h.Move)
	}

	views := rg.Group("/views")
	{
		views.GET("/:id", h.GetView)
		views.PUT("/:id", h.SaveView)
	}

	rg.GET("/statuses", h.ListStatuses)
	rg.GET("/projects", h.ListProjects)
}
