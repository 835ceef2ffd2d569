package postgre

import (
	"fmt"

	"gorm.io/gorm"

	"aura/internal/task/repository"
	"aura/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for the task domain. Any gorm dialect
// works; see config/postgre for the supported drivers.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
