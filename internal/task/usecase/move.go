package usecase

import (
	"context"
	"slices"

	"aura/internal/model"
	"aura/internal/task"
	"aura/internal/task/repository"
	"aura/internal/view"
)

// Move reclassifies a task into another bucket and stores the change.
// An unknown task id is not an error: Moved is false and nothing is written.
func (uc *implUseCase) Move(ctx context.Context, sc model.Scope, input task.MoveInput) (task.MoveOutput, error) {
	dimension := model.ParseGroupBy(input.Dimension)
	if dimension == model.GroupByNone {
		return task.MoveOutput{}, task.ErrInvalidDimension
	}

	if err := uc.validateTarget(ctx, dimension, input.Target); err != nil {
		return task.MoveOutput{}, err
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "Move: repo.ListTasks: %v", err)
		return task.MoveOutput{}, err
	}

	moved, changed := view.Reclassify(tasks, input.TaskID, dimension, input.Target)
	if !changed {
		uc.l.Infof(ctx, "Move: task %s not found for user=%s, ignoring", input.TaskID, sc.UserID)
		return task.MoveOutput{}, nil
	}

	i := slices.IndexFunc(moved, func(t model.Task) bool { return t.ID == input.TaskID })
	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{UserID: sc.UserID, Task: moved[i]})
	if err != nil {
		uc.l.Errorf(ctx, "Move: repo.UpdateTask: %v", err)
		return task.MoveOutput{}, err
	}
	if updated.ID == "" {
		return task.MoveOutput{}, nil
	}

	uc.l.Infof(ctx, "Move: task=%s %s=%s", updated.ID, dimension, input.Target)
	return task.MoveOutput{Task: updated, Moved: true}, nil
}

// validateTarget rejects drops onto buckets that do not exist, the fallback
// bucket included.
func (uc *implUseCase) validateTarget(ctx context.Context, dimension model.GroupBy, target string) error {
	switch dimension {
	case model.GroupByPriority:
		if !model.ParsePriority(target).IsKnown() || target == "" {
			return task.ErrInvalidTarget
		}
		return nil

	case model.GroupByStatus:
		statuses, err := uc.repo.ListStatuses(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "Move: repo.ListStatuses: %v", err)
			return err
		}
		if !slices.ContainsFunc(statuses, func(s model.Status) bool { return s.ID == target }) {
			return task.ErrInvalidTarget
		}
		return nil

	default:
		projects, err := uc.repo.ListProjects(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "Move: repo.ListProjects: %v", err)
			return err
		}
		if !slices.ContainsFunc(projects, func(p model.Project) bool { return p.ID == target }) {
			return task.ErrInvalidTarget
		}
		return nil
	}
}
