package usecase

import (
	"context"
	"strings"

	"aura/internal/model"
	"aura/internal/task"
	"aura/internal/task/repository"
)

// SaveView normalizes and stores a custom view. The name defaults to the id.
func (uc *implUseCase) SaveView(ctx context.Context, sc model.Scope, input task.SaveViewInput) (task.SaveViewOutput, error) {
	cfg := input.View.Normalize()
	cfg.ID = strings.TrimSpace(cfg.ID)
	if cfg.ID == "" {
		return task.SaveViewOutput{}, task.ErrInvalidView
	}
	cfg.Name = strings.TrimSpace(cfg.Name)
	if cfg.Name == "" {
		cfg.Name = cfg.ID
	}

	saved, err := uc.repo.UpsertView(ctx, repository.UpsertViewOptions{UserID: sc.UserID, View: cfg})
	if err != nil {
		uc.l.Errorf(ctx, "SaveView: repo.UpsertView: %v", err)
		return task.SaveViewOutput{}, err
	}
	return task.SaveViewOutput{View: saved}, nil
}

// GetView returns ErrViewNotFound when the user has no view with that id.
func (uc *implUseCase) GetView(ctx context.Context, sc model.Scope, id string) (task.GetViewOutput, error) {
	v, err := uc.repo.GetOneView(ctx, repository.GetOneViewOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "GetView: repo.GetOneView: %v", err)
		return task.GetViewOutput{}, err
	}
	if v.ID == "" {
		return task.GetViewOutput{}, task.ErrViewNotFound
	}
	return task.GetViewOutput{View: v}, nil
}

func (uc *implUseCase) ListStatuses(ctx context.Context, sc model.Scope) ([]model.Status, error) {
	statuses, err := uc.repo.ListStatuses(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "ListStatuses: %v", err)
		return nil, err
	}
	return statuses, nil
}

func (uc *implUseCase) ListProjects(ctx context.Context, sc model.Scope) ([]model.Project, error) {
	projects, err := uc.repo.ListProjects(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "ListProjects: %v", err)
		return nil, err
	}
	return projects, nil
}
