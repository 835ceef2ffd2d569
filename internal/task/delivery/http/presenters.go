package http

import (
	"strings"

	"aura/internal/model"
	"aura/internal/task"
	"aura/internal/view"
	"aura/pkg/response"
)

// --- Request DTOs ---

type captureReq struct {
	Text   string `json:"text"`
	DryRun bool   `json:"dry_run"`
}

func (r captureReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errWrongBody
	}
	return nil
}

func (r captureReq) toInput() task.CaptureInput {
	return task.CaptureInput{RawText: r.Text, DryRun: r.DryRun}
}

// ---

type boardReq struct {
	ViewID       string `form:"view_id"`
	StandardView string `form:"standard_view"`
	Search       string `form:"search"`
}

func (r boardReq) validate() error { return nil }

func (r boardReq) toInput() task.BoardInput {
	return task.BoardInput{
		ViewID:       r.ViewID,
		StandardView: r.StandardView,
		Search:       r.Search,
	}
}

// ---

type moveReq struct {
	TaskID    string `json:"-"` // populated from URI param
	Dimension string `json:"dimension" binding:"required"`
	Target    string `json:"target"    binding:"required"`
}

func (r moveReq) validate() error {
	if r.TaskID == "" {
		return errWrongBody
	}
	return nil
}

func (r moveReq) toInput() task.MoveInput {
	return task.MoveInput{TaskID: r.TaskID, Dimension: r.Dimension, Target: r.Target}
}

// ---

type viewFiltersReq struct {
	ProjectIDs []string `json:"project_ids"`
	Priorities []string `json:"priorities"`
	Statuses   []string `json:"statuses"`
	Tags       []string `json:"tags"`
}

type saveViewReq struct {
	ID      string         `json:"-"` // populated from URI param
	Name    string         `json:"name"     binding:"max=255"`
	Layout  string         `json:"layout"`
	GroupBy string         `json:"group_by"`
	SortBy  string         `json:"sort_by"`
	Filters viewFiltersReq `json:"filters"`
}

func (r saveViewReq) validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errWrongBody
	}
	return nil
}

func (r saveViewReq) toInput() task.SaveViewInput {
	var priorities []model.Priority
	for _, p := range r.Filters.Priorities {
		priorities = append(priorities, model.ParsePriority(p))
	}
	return task.SaveViewInput{View: model.ViewConfig{
		ID:      r.ID,
		Name:    r.Name,
		Layout:  model.Layout(r.Layout),
		GroupBy: model.GroupBy(r.GroupBy),
		SortBy:  model.SortBy(r.SortBy),
		Filters: model.ViewFilters{
			ProjectIDs: r.Filters.ProjectIDs,
			Priorities: priorities,
			Statuses:   r.Filters.Statuses,
			Tags:       r.Filters.Tags,
		},
	}}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string             `json:"id,omitempty"`
	Title     string             `json:"title"`
	Date      string             `json:"date"`
	EventDate string             `json:"event_date,omitempty"`
	Status    string             `json:"status"`
	Priority  string             `json:"priority"`
	Type      string             `json:"type"`
	ListID    string             `json:"list_id"`
	Tags      []string           `json:"tags"`
	CreatedAt *response.DateTime `json:"created_at,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Date:      t.Date,
		EventDate: t.EventDate,
		Status:    t.Status,
		Priority:  string(t.Priority),
		Type:      string(t.Type),
		ListID:    t.ListID,
		Tags:      t.Tags,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if !t.CreatedAt.IsZero() {
		created := response.DateTime(t.CreatedAt)
		resp.CreatedAt = &created
	}
	return resp
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type captureResp struct {
	Tasks     []taskResp `json:"tasks"`
	Count     int        `json:"count"`
	Persisted bool       `json:"persisted"`
}

func (h *handler) newCaptureResp(out task.CaptureOutput) captureResp {
	return captureResp{
		Tasks:     newTaskResps(out.Tasks),
		Count:     out.TaskCount,
		Persisted: out.Persisted,
	}
}

type viewFiltersResp struct {
	ProjectIDs []string `json:"project_ids"`
	Priorities []string `json:"priorities"`
	Statuses   []string `json:"statuses"`
	Tags       []string `json:"tags"`
}

type viewResp struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Layout  string          `json:"layout"`
	GroupBy string          `json:"group_by"`
	SortBy  string          `json:"sort_by"`
	Filters viewFiltersResp `json:"filters"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func newViewResp(v model.ViewConfig) viewResp {
	priorities := make([]string, len(v.Filters.Priorities))
	for i, p := range v.Filters.Priorities {
		priorities[i] = string(p)
	}
	return viewResp{
		ID:      v.ID,
		Name:    v.Name,
		Layout:  string(v.Layout),
		GroupBy: string(v.GroupBy),
		SortBy:  string(v.SortBy),
		Filters: viewFiltersResp{
			ProjectIDs: nonNil(v.Filters.ProjectIDs),
			Priorities: priorities,
			Statuses:   nonNil(v.Filters.Statuses),
			Tags:       nonNil(v.Filters.Tags),
		},
	}
}

type groupResp struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Tasks []taskResp `json:"tasks"`
}

type boardResp struct {
	View         viewResp    `json:"view"`
	StandardView string      `json:"standard_view"`
	Today        string      `json:"today"`
	GroupBy      string      `json:"group_by"`
	Groups       []groupResp `json:"groups"`
}

func (h *handler) newBoardResp(out task.BoardOutput) boardResp {
	return boardResp{
		View:         newViewResp(out.View),
		StandardView: string(out.StandardView),
		Today:        out.Today,
		GroupBy:      string(out.Projection.GroupBy),
		Groups:       newGroupResps(out.Projection.Groups),
	}
}

func newGroupResps(groups []view.Group) []groupResp {
	out := make([]groupResp, len(groups))
	for i, g := range groups {
		out[i] = groupResp{Key: g.Key, Label: g.Label, Tasks: newTaskResps(g.Tasks)}
	}
	return out
}

type moveResp struct {
	Moved bool      `json:"moved"`
	Task  *taskResp `json:"task,omitempty"`
}

func (h *handler) newMoveResp(out task.MoveOutput) moveResp {
	if !out.Moved {
		return moveResp{}
	}
	t := newTaskResp(out.Task)
	return moveResp{Moved: true, Task: &t}
}

type statusResp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

func (h *handler) newStatusesResp(statuses []model.Status) []statusResp {
	out := make([]statusResp, len(statuses))
	for i, s := range statuses {
		out[i] = statusResp{ID: s.ID, Name: s.Name, Completed: s.Completed}
	}
	return out
}

type projectResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (h *handler) newProjectsResp(projects []model.Project) []projectResp {
	out := make([]projectResp, len(projects))
	for i, p := range projects {
		out[i] = projectResp{ID: p.ID, Name: p.Name, Color: p.Color}
	}
	return out
}
