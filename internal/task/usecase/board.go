package usecase

import (
	"context"

	"aura/internal/model"
	"aura/internal/task"
	"aura/internal/task/repository"
	"aura/internal/view"
	"aura/pkg/datemath"
)

// Board loads the user's tasks and projects them through the requested view.
// A custom view replaces the standard-view rules entirely.
func (uc *implUseCase) Board(ctx context.Context, sc model.Scope, input task.BoardInput) (task.BoardOutput, error) {
	standard := model.ParseStandardView(input.StandardView)
	cfg := model.ViewConfig{ID: string(standard), Name: string(standard)}
	custom := input.ViewID != ""

	if custom {
		v, err := uc.repo.GetOneView(ctx, repository.GetOneViewOptions{UserID: sc.UserID, ID: input.ViewID})
		if err != nil {
			uc.l.Errorf(ctx, "Board: repo.GetOneView: %v", err)
			return task.BoardOutput{}, err
		}
		if v.ID == "" {
			return task.BoardOutput{}, task.ErrViewNotFound
		}
		cfg = v
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "Board: repo.ListTasks: %v", err)
		return task.BoardOutput{}, err
	}

	statuses, projects, err := uc.catalog(ctx)
	if err != nil {
		return task.BoardOutput{}, err
	}

	today := datemath.FormatISO(uc.dateMath.Today(uc.now()))
	projection := view.Project(tasks, cfg, view.Params{
		StandardView: standard,
		Custom:       custom,
		Search:       input.Search,
		Today:        today,
		Statuses:     statuses,
		Projects:     projects,
	})

	uc.l.Debugf(ctx, "Board: user=%s view=%s tasks=%d groups=%d", sc.UserID, cfg.ID, len(tasks), len(projection.Groups))

	return task.BoardOutput{
		View:         cfg.Normalize(),
		StandardView: standard,
		Today:        today,
		Projection:   projection,
	}, nil
}

func (uc *implUseCase) catalog(ctx context.Context) ([]model.Status, []model.Project, error) {
	statuses, err := uc.repo.ListStatuses(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "repo.ListStatuses: %v", err)
		return nil, nil, err
	}
	projects, err := uc.repo.ListProjects(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "repo.ListProjects: %v", err)
		return nil, nil, err
	}
	return statuses, projects, nil
}
