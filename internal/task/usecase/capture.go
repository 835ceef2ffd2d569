package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"aura/internal/model"
	"aura/internal/task"
	"aura/internal/task/repository"
)

// Capture parses raw text into tasks and stores them.
func (uc *implUseCase) Capture(ctx context.Context, sc model.Scope, input task.CaptureInput) (task.CaptureOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return task.CaptureOutput{}, task.ErrEmptyInput
	}

	uc.l.Infof(ctx, "Capture: user=%s input_length=%d dry_run=%t", sc.UserID, len(input.RawText), input.DryRun)

	now := uc.now()
	drafts := make([]model.Task, 0)
	for draft := range uc.capture.ParseCommand(input.RawText, now) {
		drafts = append(drafts, draft)
	}
	if len(drafts) == 0 {
		return task.CaptureOutput{}, task.ErrNoTasksParsed
	}

	if input.DryRun {
		return task.CaptureOutput{Tasks: drafts, TaskCount: len(drafts)}, nil
	}

	for i := range drafts {
		drafts[i].ID = uuid.NewString()
		drafts[i].CreatedAt = now
		drafts[i].UpdatedAt = now
	}

	created, err := uc.repo.CreateTasks(ctx, repository.CreateTasksOptions{
		UserID: sc.UserID,
		Tasks:  drafts,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Capture: repo.CreateTasks: %v", err)
		return task.CaptureOutput{}, err
	}

	uc.l.Infof(ctx, "Capture: created %d tasks", len(created))

	return task.CaptureOutput{
		Tasks:     created,
		TaskCount: len(created),
		Persisted: true,
	}, nil
}
