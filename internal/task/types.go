package task

import (
	"aura/internal/model"
	"aura/internal/view"
)

// CaptureInput is the input for Capture.
type CaptureInput struct {
	RawText string // e.g. "comprar pan; pagar factura el lunes"
	DryRun  bool   // parse only, nothing is stored
}

// CaptureOutput lists the captured tasks in input order.
type CaptureOutput struct {
	Tasks     []model.Task
	TaskCount int
	Persisted bool
}

// BoardInput selects the view to project. ViewID wins over StandardView.
type BoardInput struct {
	ViewID       string
	StandardView string
	Search       string
}

// BoardOutput is a projected board.
type BoardOutput struct {
	View         model.ViewConfig // normalized config that was applied
	StandardView model.StandardView
	Today        string
	Projection   view.Projection
}

// MoveInput moves TaskID to Target within Dimension.
type MoveInput struct {
	TaskID    string
	Dimension string
	Target    string
}

// MoveOutput reports the moved task. Moved is false when the task does not exist.
type MoveOutput struct {
	Task  model.Task
	Moved bool
}

// SaveViewInput creates or replaces a custom view.
type SaveViewInput struct {
	View model.ViewConfig
}

type SaveViewOutput struct {
	View model.ViewConfig
}

type GetViewOutput struct {
	View model.ViewConfig
}
