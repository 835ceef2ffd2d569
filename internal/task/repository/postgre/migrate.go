package postgre

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aura/internal/model"
	"aura/internal/task/repository"
)

// Migrate creates the task domain tables and seeds the default statuses and
// projects into empty catalogs. It is safe to run on every start.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&taskRow{}, &viewRow{}, &statusRow{}, &projectRow{}); err != nil {
		return errorf(repository.ErrFailedToMigrate, err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&statusRow{}).Count(&count).Error; err != nil {
			return errorf(repository.ErrFailedToMigrate, err)
		}
		if count == 0 {
			defaults := model.DefaultStatuses()
			rows := make([]statusRow, len(defaults))
			for i, s := range defaults {
				rows[i] = statusRow{ID: s.ID, Name: s.Name, Completed: s.Completed, Position: s.Position}
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
				return errorf(repository.ErrFailedToMigrate, err)
			}
		}

		if err := tx.Model(&projectRow{}).Count(&count).Error; err != nil {
			return errorf(repository.ErrFailedToMigrate, err)
		}
		if count == 0 {
			defaults := model.DefaultProjects()
			rows := make([]projectRow, len(defaults))
			for i, p := range defaults {
				rows[i] = projectRow{ID: p.ID, Name: p.Name, Color: p.Color, Position: p.Position}
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
				return errorf(repository.ErrFailedToMigrate, err)
			}
		}
		return nil
	})
}
