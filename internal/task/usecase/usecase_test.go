package usecase_test

import (
	"context"
	"errors"
	"slices"
	"time"

	"aura/internal/model"
	"aura/internal/task/repository"
	"aura/pkg/datemath"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var errDB = errors.New("db error")

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	tasks    map[string][]model.Task
	views    map[string]model.ViewConfig
	statuses []model.Status
	projects []model.Project

	fail    bool
	created int
	updates []repository.UpdateTaskOptions
}

func newMemRepo() *memRepo {
	return &memRepo{
		tasks:    map[string][]model.Task{},
		views:    map[string]model.ViewConfig{},
		statuses: model.DefaultStatuses(),
		projects: append(model.DefaultProjects(), model.Project{ID: "casa", Name: "Casa", Position: 1}),
	}
}

func (m *memRepo) CreateTasks(ctx context.Context, opt repository.CreateTasksOptions) ([]model.Task, error) {
	if m.fail {
		return nil, errDB
	}
	m.created += len(opt.Tasks)
	m.tasks[opt.UserID] = append(m.tasks[opt.UserID], opt.Tasks...)
	return slices.Clone(opt.Tasks), nil
}

func (m *memRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if m.fail {
		return nil, errDB
	}
	return slices.Clone(m.tasks[opt.UserID]), nil
}

func (m *memRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	if m.fail {
		return model.Task{}, errDB
	}
	m.updates = append(m.updates, opt)
	tasks := m.tasks[opt.UserID]
	for i := range tasks {
		if tasks[i].ID == opt.Task.ID {
			tasks[i].Status = opt.Task.Status
			tasks[i].Priority = opt.Task.Priority
			tasks[i].ListID = opt.Task.ListID
			return tasks[i], nil
		}
	}
	return model.Task{}, nil
}

func (m *memRepo) GetOneView(ctx context.Context, opt repository.GetOneViewOptions) (model.ViewConfig, error) {
	if m.fail {
		return model.ViewConfig{}, errDB
	}
	return m.views[opt.UserID+"/"+opt.ID], nil
}

func (m *memRepo) UpsertView(ctx context.Context, opt repository.UpsertViewOptions) (model.ViewConfig, error) {
	if m.fail {
		return model.ViewConfig{}, errDB
	}
	m.views[opt.UserID+"/"+opt.View.ID] = opt.View
	return opt.View, nil
}

func (m *memRepo) ListStatuses(ctx context.Context) ([]model.Status, error) {
	if m.fail {
		return nil, errDB
	}
	return m.statuses, nil
}

func (m *memRepo) ListProjects(ctx context.Context) ([]model.Project, error) {
	if m.fail {
		return nil, errDB
	}
	return m.projects, nil
}

// Monday, Jan 8, 2024 10:00 UTC
func fixedNow() time.Time {
	return time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
}

func utcParser() *datemath.Parser {
	p, _ := datemath.NewParser("UTC")
	return p
}
