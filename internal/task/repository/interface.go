package repository

import (
	"context"

	"aura/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	ViewRepository
	CatalogRepository
}

// TaskRepository stores tasks per user.
type TaskRepository interface {
	CreateTasks(ctx context.Context, opt CreateTasksOptions) ([]model.Task, error)
	// ListTasks returns tasks in capture order.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	// UpdateTask returns a zero-value Task (ID == "") when the task does not exist.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
}

// ViewRepository stores custom views per user.
type ViewRepository interface {
	// GetOneView returns a zero-value ViewConfig (ID == "") when not found.
	GetOneView(ctx context.Context, opt GetOneViewOptions) (model.ViewConfig, error)
	UpsertView(ctx context.Context, opt UpsertViewOptions) (model.ViewConfig, error)
}

// CatalogRepository exposes the shared statuses and projects, in display order.
type CatalogRepository interface {
	ListStatuses(ctx context.Context) ([]model.Status, error)
	ListProjects(ctx context.Context) ([]model.Project, error)
}
