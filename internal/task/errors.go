package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput       = errors.New("input text is empty")
	ErrNoTasksParsed    = errors.New("no tasks parsed from input")
	ErrViewNotFound     = errors.New("view not found")
	ErrInvalidView      = errors.New("view id is required")
	ErrInvalidDimension = errors.New("dimension must be status, priority or project")
	ErrInvalidTarget    = errors.New("target is not a known bucket of the dimension")
)
