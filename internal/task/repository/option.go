package repository

import "aura/internal/model"

// CreateTasksOptions holds the tasks to insert. IDs must already be set.
type CreateTasksOptions struct {
	UserID string
	Tasks  []model.Task
}

// ListTasksOptions holds the filter parameters for listing tasks.
type ListTasksOptions struct {
	UserID string
}

// UpdateTaskOptions replaces the grouping fields (status, priority, list) of Task.
type UpdateTaskOptions struct {
	UserID string
	Task   model.Task
}

// GetOneViewOptions selects a view by id.
type GetOneViewOptions struct {
	UserID string
	ID     string
}

// UpsertViewOptions creates or replaces View.
type UpsertViewOptions struct {
	UserID string
	View   model.ViewConfig
}
