package http

import (
	"github.com/gin-gonic/gin"

	"aura/internal/middleware"
	"aura/pkg/response"
)

// Capture godoc
// @Summary     Capture tasks from free text
// @Description Splits the text on ";" and " / ", extracts a due date from each item and stores the tasks. With dry_run nothing is stored.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     false "Acting user"
// @Param       body      body   captureReq true  "Command text"
// @Success     200 {object} captureResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Nothing to capture"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/capture [POST]
func (h *handler) Capture(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCaptureReq(c)
	if err != nil {
		h.abortWithRequestError(c, err)
		return
	}

	output, err := h.uc.Capture(ctx, middleware.GetScope(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Capture: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCaptureResp(output))
}

// Board godoc
// @Summary     Project the task board
// @Description Filters, sorts and groups tasks through a custom view (view_id) or a standard view.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID     header string false "Acting user"
// @Param       view_id       query  string false "Custom view id"
// @Param       standard_view query  string false "inbox (default), today, upcoming or all"
// @Param       search        query  string false "Case-insensitive title search"
// @Success     200 {object} boardResp
// @Failure     404 {object} response.Resp "View Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/board [GET]
func (h *handler) Board(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBoardReq(c)
	if err != nil {
		h.abortWithRequestError(c, err)
		return
	}

	output, err := h.uc.Board(ctx, middleware.GetScope(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Board: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBoardResp(output))
}

// Move godoc
// @Summary     Move a task to another bucket
// @Description Changes the status, priority or project of one task. An unknown task id is ignored (moved=false).
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  false "Acting user"
// @Param       id        path   string  true  "Task ID"
// @Param       body      body   moveReq true  "Dimension and target bucket"
// @Success     200 {object} moveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/move [POST]
func (h *handler) Move(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMoveReq(c)
	if err != nil {
		h.abortWithRequestError(c, err)
		return
	}

	output, err := h.uc.Move(ctx, middleware.GetScope(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Move: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMoveResp(output))
}

// GetView godoc
// @Summary     Get a custom view
// @Tags        Views
// @Produce     json
// @Param       X-User-ID header string false "Acting user"
// @Param       id        path   string true  "View ID"
// @Success     200 {object} viewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/views/{id} [GET]
func (h *handler) GetView(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetView(ctx, middleware.GetScope(ctx), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetView: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newViewResp(output.View))
}

// SaveView godoc
// @Summary     Create or replace a custom view
// @Description Unknown layout, group_by and sort_by values fall back to list, none and date.
// @Tags        Views
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      false "Acting user"
// @Param       id        path   string      true  "View ID"
// @Param       body      body   saveViewReq true  "View configuration"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/views/{id} [PUT]
func (h *handler) SaveView(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveViewReq(c)
	if err != nil {
		h.abortWithRequestError(c, err)
		return
	}

	output, err := h.uc.SaveView(ctx, middleware.GetScope(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SaveView: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newViewResp(output.View))
}

// ListStatuses godoc
// @Summary     List workflow statuses
// @Tags        Catalog
// @Produce     json
// @Success     200 {array}  statusResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/statuses [GET]
func (h *handler) ListStatuses(c *gin.Context) {
	ctx := c.Request.Context()

	statuses, err := h.uc.ListStatuses(ctx, middleware.GetScope(ctx))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListStatuses: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatusesResp(statuses))
}

// ListProjects godoc
// @Summary     List projects
// @Tags        Catalog
// @Produce     json
// @Success     200 {array}  projectResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects [GET]
func (h *handler) ListProjects(c *gin.Context) {
	ctx := c.Request.Context()

	projects, err := h.uc.ListProjects(ctx, middleware.GetScope(ctx))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListProjects: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProjectsResp(projects))
}
