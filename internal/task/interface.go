package task

import (
	"context"

	"aura/internal/model"
)

// UseCase defines the business logic interface for the task domain.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Capture turns a free-form command into tasks and stores them unless DryRun is set.
	Capture(ctx context.Context, sc model.Scope, input CaptureInput) (CaptureOutput, error)

	// Board projects the user's tasks through a standard or custom view.
	Board(ctx context.Context, sc model.Scope, input BoardInput) (BoardOutput, error)

	// Move reclassifies one task along a grouping dimension (board drag and drop).
	Move(ctx context.Context, sc model.Scope, input MoveInput) (MoveOutput, error)

	// Views
	SaveView(ctx context.Context, sc model.Scope, input SaveViewInput) (SaveViewOutput, error)
	GetView(ctx context.Context, sc model.Scope, id string) (GetViewOutput, error)

	// Catalog
	ListStatuses(ctx context.Context, sc model.Scope) ([]model.Status, error)
	ListProjects(ctx context.Context, sc model.Scope) ([]model.Project, error)
}
