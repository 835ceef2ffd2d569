package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	pkgErrors "aura/pkg/errors"
	"aura/pkg/response"
)

// bindError is a request that could not be bound. It keeps the binding
// failure so the response can name the offending fields.
type bindError struct {
	cause error
}

func (e bindError) Error() string { return pkgErrors.ErrBadRequest.Error() + ": " + e.cause.Error() }
func (e bindError) Unwrap() error { return pkgErrors.ErrBadRequest }

// details lists failed validation tags by field, or the decoder error.
func (e bindError) details() map[string]any {
	var verrs validator.ValidationErrors
	if !errors.As(e.cause, &verrs) {
		return map[string]any{"body": e.cause.Error()}
	}
	details := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		details[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return details
}

// abortWithRequestError reports a request error, with field details for binding failures.
func (h *handler) abortWithRequestError(c *gin.Context, err error) {
	var be bindError
	if errors.As(err, &be) {
		response.ValidationError(c, pkgErrors.ErrBadRequest, be.details())
		return
	}
	response.Error(c, err)
}

// processCaptureReq binds and validates the capture request body.
func (h *handler) processCaptureReq(c *gin.Context) (captureReq, error) {
	var req captureReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processCaptureReq: %v", err)
		return req, bindError{cause: err}
	}
	return req, req.validate()
}

// processBoardReq binds the board query parameters.
func (h *handler) processBoardReq(c *gin.Context) (boardReq, error) {
	var req boardReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processBoardReq: %v", err)
		return req, bindError{cause: err}
	}
	return req, req.validate()
}

// processMoveReq binds the move body and the task id URI param.
func (h *handler) processMoveReq(c *gin.Context) (moveReq, error) {
	var req moveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processMoveReq: %v", err)
		return req, bindError{cause: err}
	}
	req.TaskID = c.Param("id")
	return req, req.validate()
}

// processSaveViewReq binds the view body and the view id URI param.
func (h *handler) processSaveViewReq(c *gin.Context) (saveViewReq, error) {
	var req saveViewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processSaveViewReq: %v", err)
		return req, bindError{cause: err}
	}
	req.ID = c.Param("id")
	return req, req.validate()
}
