package http

import (
	"errors"
	"net/http"

	"aura/internal/task"
	pkgErrors "aura/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong body")

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unmapped becomes a 500 in response.Error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, task.ErrEmptyInput.Error())
	case errors.Is(err, task.ErrNoTasksParsed):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, task.ErrNoTasksParsed.Error())
	case errors.Is(err, task.ErrViewNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, task.ErrViewNotFound.Error())
	case errors.Is(err, task.ErrInvalidView):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, task.ErrInvalidView.Error())
	case errors.Is(err, task.ErrInvalidDimension):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, task.ErrInvalidDimension.Error())
	case errors.Is(err, task.ErrInvalidTarget):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, task.ErrInvalidTarget.Error())
	default:
		return err
	}
}
