package postgre

import (
	"time"

	"aura/internal/model"
)

type taskRow struct {
	ID        string   `gorm:"primaryKey;size:36"`
	UserID    string   `gorm:"size:64;index:idx_tasks_user_order,priority:1"`
	Title     string   `gorm:"size:512"`
	Date      string   `gorm:"size:10"`
	EventDate string   `gorm:"size:10"`
	Status    string   `gorm:"size:64"`
	Priority  string   `gorm:"size:16"`
	Type      string   `gorm:"size:16"`
	ListID    string   `gorm:"size:64"`
	Tags      []string `gorm:"serializer:json"`
	Recurring bool
	Position  int       `gorm:"index:idx_tasks_user_order,priority:3"`
	CreatedAt time.Time `gorm:"index:idx_tasks_user_order,priority:2"`
	UpdatedAt time.Time
}

func (taskRow) TableName() string { return "tasks" }

func newTaskRow(userID string, position int, t model.Task) taskRow {
	return taskRow{
		ID:        t.ID,
		UserID:    userID,
		Title:     t.Title,
		Date:      t.Date,
		EventDate: t.EventDate,
		Status:    t.Status,
		Priority:  string(t.Priority),
		Type:      string(t.Type),
		ListID:    t.ListID,
		Tags:      t.Tags,
		Recurring: t.Recurring,
		Position:  position,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (r taskRow) toModel() model.Task {
	return model.Task{
		ID:        r.ID,
		Title:     r.Title,
		Date:      r.Date,
		EventDate: r.EventDate,
		Status:    r.Status,
		Priority:  model.ParsePriority(r.Priority),
		Type:      model.ParseTaskType(r.Type),
		ListID:    r.ListID,
		Tags:      r.Tags,
		Recurring: r.Recurring,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type viewFilters struct {
	ProjectIDs []string `json:"project_ids,omitempty"`
	Priorities []string `json:"priorities,omitempty"`
	Statuses   []string `json:"statuses,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

type viewRow struct {
	UserID    string      `gorm:"primaryKey;size:64"`
	ID        string      `gorm:"primaryKey;size:64"`
	Name      string      `gorm:"size:255"`
	Layout    string      `gorm:"size:16"`
	GroupBy   string      `gorm:"size:16"`
	SortBy    string      `gorm:"size:16"`
	Filters   viewFilters `gorm:"serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (viewRow) TableName() string { return "views" }

func newViewRow(userID string, v model.ViewConfig) viewRow {
	priorities := make([]string, len(v.Filters.Priorities))
	for i, p := range v.Filters.Priorities {
		priorities[i] = string(p)
	}
	return viewRow{
		UserID:  userID,
		ID:      v.ID,
		Name:    v.Name,
		Layout:  string(v.Layout),
		GroupBy: string(v.GroupBy),
		SortBy:  string(v.SortBy),
		Filters: viewFilters{
			ProjectIDs: v.Filters.ProjectIDs,
			Priorities: priorities,
			Statuses:   v.Filters.Statuses,
			Tags:       v.Filters.Tags,
		},
	}
}

func (r viewRow) toModel() model.ViewConfig {
	var priorities []model.Priority
	for _, p := range r.Filters.Priorities {
		priorities = append(priorities, model.ParsePriority(p))
	}
	return model.ViewConfig{
		ID:      r.ID,
		Name:    r.Name,
		Layout:  model.ParseLayout(r.Layout),
		GroupBy: model.ParseGroupBy(r.GroupBy),
		SortBy:  model.ParseSortBy(r.SortBy),
		Filters: model.ViewFilters{
			ProjectIDs: r.Filters.ProjectIDs,
			Priorities: priorities,
			Statuses:   r.Filters.Statuses,
			Tags:       r.Filters.Tags,
		},
	}
}

type statusRow struct {
	ID        string `gorm:"primaryKey;size:64"`
	Name      string `gorm:"size:255"`
	Completed bool
	Position  int
}

func (statusRow) TableName() string { return "statuses" }

type projectRow struct {
	ID       string `gorm:"primaryKey;size:64"`
	Name     string `gorm:"size:255"`
	Color    string `gorm:"size:16"`
	Position int
}

func (projectRow) TableName() string { return "projects" }
