package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "aura/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends err with the status of the HTTPError it wraps. Any other error
// is reported as a generic 500 so internal details never leak.
func Error(c *gin.Context, err error) {
	httpErr, ok := pkgErrors.AsHTTPError(err)
	if !ok {
		InternalError(c, err)
		return
	}

	c.JSON(httpErr.StatusCode, Resp{
		ErrorCode: httpErr.Code,
		Message:   httpErr.Message,
	})
}

// ValidationError sends 400 with per-field details. An HTTPError contributes
// its code and message.
func ValidationError(c *gin.Context, err error, details map[string]any) {
	if details == nil {
		details = make(map[string]any)
	}

	code, message := http.StatusBadRequest, err.Error()
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		code, message = httpErr.Code, httpErr.Message
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: code,
		Message:   message,
		Errors:    details,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: pkgErrors.ErrInternalServerError.Code,
		Message:   pkgErrors.ErrInternalServerError.Message,
	})
}

// TooManyRequests sends 429 and aborts the chain.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   pkgErrors.ErrTooManyRequests.Message,
	})
}
