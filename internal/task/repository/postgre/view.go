package postgre

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aura/internal/model"
	"aura/internal/task/repository"
)

// GetOneView retrieves a view by id. Not found is not an error.
func (r *implRepository) GetOneView(ctx context.Context, opt repository.GetOneViewOptions) (model.ViewConfig, error) {
	var row viewRow
	err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", opt.UserID, opt.ID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ViewConfig{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneView"), err)
		return model.ViewConfig{}, errorf(repository.ErrFailedToGet, err)
	}
	return row.toModel(), nil
}

// UpsertView inserts the view or replaces every column of an existing one.
func (r *implRepository) UpsertView(ctx context.Context, opt repository.UpsertViewOptions) (model.ViewConfig, error) {
	row := newViewRow(opt.UserID, opt.View)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "layout", "group_by", "sort_by", "filters", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertView"), err)
		return model.ViewConfig{}, errorf(repository.ErrFailedToInsert, err)
	}
	return row.toModel(), nil
}
