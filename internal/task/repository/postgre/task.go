package postgre

import (
	"context"
	"time"

	"aura/internal/model"
	"aura/internal/task/repository"
)

// CreateTasks inserts all tasks in one batch. Position keeps their capture order.
func (r *implRepository) CreateTasks(ctx context.Context, opt repository.CreateTasksOptions) ([]model.Task, error) {
	if len(opt.Tasks) == 0 {
		return []model.Task{}, nil
	}

	rows := make([]taskRow, len(opt.Tasks))
	for i, t := range opt.Tasks {
		rows[i] = newTaskRow(opt.UserID, i, t)
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTasks"), err)
		return nil, errorf(repository.ErrFailedToInsert, err)
	}

	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toModel()
	}
	return tasks, nil
}

// ListTasks returns every task of the user, oldest capture first.
func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	var rows []taskRow
	err := r.db.WithContext(ctx).
		Where("user_id = ?", opt.UserID).
		Order("created_at ASC").
		Order("position ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, errorf(repository.ErrFailedToList, err)
	}

	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toModel()
	}
	return tasks, nil
}

// UpdateTask writes the grouping fields of opt.Task.
func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	res := r.db.WithContext(ctx).
		Model(&taskRow{}).
		Where("id = ? AND user_id = ?", opt.Task.ID, opt.UserID).
		Updates(map[string]any{
			"status":     opt.Task.Status,
			"priority":   string(opt.Task.Priority),
			"list_id":    opt.Task.ListID,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), res.Error)
		return model.Task{}, errorf(repository.ErrFailedToUpdate, res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Task{}, nil
	}

	var row taskRow
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", opt.Task.ID, opt.UserID).Take(&row).Error; err != nil {
		r.l.Errorf(ctx, "%s reload: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, errorf(repository.ErrFailedToGet, err)
	}
	return row.toModel(), nil
}
