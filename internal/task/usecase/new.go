package usecase

import (
	"time"

	"aura/internal/capture"
	"aura/internal/task"
	"aura/internal/task/repository"
	"aura/pkg/datemath"
	pkgLog "aura/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	capture  capture.Service
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new task UseCase instance. A nil now uses time.Now.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dateMath *datemath.Parser,
	now func() time.Time,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		capture:  capture.New(dateMath),
		dateMath: dateMath,
		now:      now,
	}
}

var _ task.UseCase = (*implUseCase)(nil)
