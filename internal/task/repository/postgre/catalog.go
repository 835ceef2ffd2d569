package postgre

import (
	"context"

	"aura/internal/model"
	"aura/internal/task/repository"
)

func (r *implRepository) ListStatuses(ctx context.Context) ([]model.Status, error) {
	var rows []statusRow
	if err := r.db.WithContext(ctx).Order("position ASC").Order("id ASC").Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListStatuses"), err)
		return nil, errorf(repository.ErrFailedToList, err)
	}

	statuses := make([]model.Status, len(rows))
	for i, row := range rows {
		statuses[i] = model.Status{ID: row.ID, Name: row.Name, Completed: row.Completed, Position: row.Position}
	}
	return statuses, nil
}

func (r *implRepository) ListProjects(ctx context.Context) ([]model.Project, error) {
	var rows []projectRow
	if err := r.db.WithContext(ctx).Order("position ASC").Order("id ASC").Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProjects"), err)
		return nil, errorf(repository.ErrFailedToList, err)
	}

	projects := make([]model.Project, len(rows))
	for i, row := range rows {
		projects[i] = model.Project{ID: row.ID, Name: row.Name, Color: row.Color, Position: row.Position}
	}
	return projects, nil
}
