package view_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"aura/internal/model"
	"aura/internal/view"
)

var statuses = []model.Status{
	{ID: "pendiente", Name: "Pendiente"},
	{ID: "en_progreso", Name: "En progreso"},
	{ID: "completada", Name: "Completada", Completed: true},
}

var projects = []model.Project{
	{ID: "general", Name: "General"},
	{ID: "casa", Name: "Casa"},
}

func params() view.Params {
	return view.Params{
		StandardView: model.StandardViewInbox,
		Today:        "2024-01-08",
		Statuses:     statuses,
		Projects:     projects,
	}
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func groupIDs(p view.Projection) map[string][]string {
	out := make(map[string][]string, len(p.Groups))
	for _, g := range p.Groups {
		out[g.Key] = ids(g.Tasks)
	}
	return out
}

func fixture() []model.Task {
	return []model.Task{
		{ID: "a", Title: "Zanahorias", Date: "2024-01-10", Status: "pendiente", Priority: model.PriorityLow, ListID: "general", Tags: []string{"super"}},
		{ID: "b", Title: "árbol", Date: "2024-01-05", Status: "en_progreso", Priority: model.PriorityHigh, ListID: "casa"},
		{ID: "c", Title: "Banco", Date: "2024-01-08", Status: "completada", Priority: model.PriorityMedium, ListID: "general"},
		{ID: "d", Title: "correo", Date: "2024-01-08", Status: "pendiente", Priority: model.PriorityMedium, ListID: "general", Tags: []string{"Trabajo"}},
		{ID: "e", Title: "plantilla semanal", Date: "2024-01-08", Status: "pendiente", Priority: model.PriorityHigh, ListID: "general", Recurring: true},
		{ID: "f", Title: "huérfana", Date: "2024-01-08", Status: "borrado", Priority: model.PriorityMedium, ListID: "viejo"},
	}
}

func TestProject_ConcreteSortScenario(t *testing.T) {
	tasks := []model.Task{
		{ID: "a", Date: "2024-01-10", Priority: model.PriorityLow, Status: "pendiente"},
		{ID: "b", Date: "2024-01-05", Priority: model.PriorityHigh, Status: "pendiente"},
	}

	byDate := view.Project(tasks, model.ViewConfig{SortBy: model.SortByDate}, params())
	if diff := cmp.Diff([]string{"b", "a"}, ids(byDate.Tasks())); diff != "" {
		t.Errorf("sort by date (-want +got):\n%s", diff)
	}

	byPriority := view.Project(tasks, model.ViewConfig{SortBy: model.SortByPriority}, params())
	if diff := cmp.Diff([]string{"b", "a"}, ids(byPriority.Tasks())); diff != "" {
		t.Errorf("sort by priority (-want +got):\n%s", diff)
	}
}

func TestProject_Filter(t *testing.T) {
	tests := []struct {
		name    string
		cfg     model.ViewConfig
		mutate  func(p *view.Params)
		wantIDs []string
	}{
		{
			name:    "Inbox hides completed and recurring",
			wantIDs: []string{"b", "d", "f", "a"},
		},
		{
			name:    "All view keeps completed",
			mutate:  func(p *view.Params) { p.StandardView = model.StandardViewAll },
			wantIDs: []string{"b", "c", "d", "f", "a"},
		},
		{
			name:    "Today view keeps exact date",
			mutate:  func(p *view.Params) { p.StandardView = model.StandardViewToday },
			wantIDs: []string{"d", "f"},
		},
		{
			name:    "Upcoming view keeps today and later",
			mutate:  func(p *view.Params) { p.StandardView = model.StandardViewUpcoming },
			wantIDs: []string{"d", "f", "a"},
		},
		{
			name:    "Custom view ignores standard rules but not recurring",
			mutate:  func(p *view.Params) { p.Custom = true; p.StandardView = model.StandardViewToday },
			wantIDs: []string{"b", "c", "d", "f", "a"},
		},
		{
			name:    "Explicit completed status id",
			mutate:  func(p *view.Params) { p.CompletedStatusID = "en_progreso" },
			wantIDs: []string{"d", "f", "a"},
		},
		{
			name:    "Project filter",
			cfg:     model.ViewConfig{Filters: model.ViewFilters{ProjectIDs: []string{"casa", "viejo"}}},
			wantIDs: []string{"b", "f"},
		},
		{
			name:    "Priority filter is OR within the dimension",
			cfg:     model.ViewConfig{Filters: model.ViewFilters{Priorities: []model.Priority{model.PriorityHigh, model.PriorityLow}}},
			wantIDs: []string{"b", "a"},
		},
		{
			name: "Dimensions are AND-ed",
			cfg: model.ViewConfig{Filters: model.ViewFilters{
				ProjectIDs: []string{"general"},
				Statuses:   []string{"pendiente"},
				Priorities: []model.Priority{model.PriorityMedium},
			}},
			wantIDs: []string{"d"},
		},
		{
			name:    "Tag filter is case-insensitive",
			cfg:     model.ViewConfig{Filters: model.ViewFilters{Tags: []string{"trabajo", "super"}}},
			wantIDs: []string{"d", "a"},
		},
		{
			name:    "Search is a case-insensitive title substring",
			mutate:  func(p *view.Params) { p.Search = "  CORR " },
			wantIDs: []string{"d"},
		},
		{
			name:    "Empty filter slices mean no constraint",
			cfg:     model.ViewConfig{Filters: model.ViewFilters{ProjectIDs: []string{}, Tags: nil}},
			wantIDs: []string{"b", "d", "f", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params()
			if tt.mutate != nil {
				tt.mutate(&p)
			}
			got := view.Project(fixture(), tt.cfg, p)
			if diff := cmp.Diff(tt.wantIDs, ids(got.Tasks())); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestProject_SortStability(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Title: "b", Date: "2024-02-01", Priority: model.PriorityLow},
		{ID: "2", Title: "a", Date: "2024-01-01", Priority: model.PriorityMedium},
		{ID: "3", Title: "B", Date: "2024-02-01", Priority: model.PriorityLow},
		{ID: "4", Title: "c", Date: "2024-01-01", Priority: model.PriorityMedium},
		{ID: "5", Title: "d", Date: "", Priority: "urgente"},
		{ID: "6", Title: "e", Date: "2024-12-31", Priority: model.PriorityHigh},
	}

	tests := []struct {
		sortBy model.SortBy
		want   []string
	}{
		{model.SortByDate, []string{"2", "4", "1", "3", "6", "5"}},
		{model.SortByPriority, []string{"6", "2", "4", "1", "3", "5"}},
		{model.SortByTitle, []string{"2", "1", "3", "4", "5", "6"}},
		{"bogus", []string{"2", "4", "1", "3", "6", "5"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sortBy), func(t *testing.T) {
			p := params()
			p.StandardView = model.StandardViewAll
			got := view.Project(tasks, model.ViewConfig{SortBy: tt.sortBy}, p)
			if diff := cmp.Diff(tt.want, ids(got.Tasks())); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestProject_TitleCollation(t *testing.T) {
	tasks := []model.Task{
		{ID: "z", Title: "zapato"},
		{ID: "n", Title: "ñandú"},
		{ID: "a", Title: "Árbol"},
		{ID: "m", Title: "manzana"},
		{ID: "o", Title: "oso"},
	}

	got := view.Project(tasks, model.ViewConfig{SortBy: model.SortByTitle}, params())
	if diff := cmp.Diff([]string{"a", "m", "n", "o", "z"}, ids(got.Tasks())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestProject_Grouping(t *testing.T) {
	tests := []struct {
		name     string
		cfg      model.ViewConfig
		wantBy   model.GroupBy
		wantKeys []string
		want     map[string][]string
	}{
		{
			name:     "No grouping",
			cfg:      model.ViewConfig{},
			wantBy:   model.GroupByNone,
			wantKeys: []string{view.AllGroupKey},
			want:     map[string][]string{view.AllGroupKey: {"b", "d", "f", "a"}},
		},
		{
			name:     "Status keeps every bucket and a fallback",
			cfg:      model.ViewConfig{GroupBy: model.GroupByStatus},
			wantBy:   model.GroupByStatus,
			wantKeys: []string{"pendiente", "en_progreso", "completada", view.FallbackGroupKey},
			want: map[string][]string{
				"pendiente":           {"d", "a"},
				"en_progreso":         {"b"},
				"completada":          {},
				view.FallbackGroupKey: {"f"},
			},
		},
		{
			name:     "Priority has three fixed buckets",
			cfg:      model.ViewConfig{GroupBy: model.GroupByPriority},
			wantBy:   model.GroupByPriority,
			wantKeys: []string{"alta", "media", "baja"},
			want: map[string][]string{
				"alta":  {"b"},
				"media": {"d", "f"},
				"baja":  {"a"},
			},
		},
		{
			name:     "Project keeps unknown lists in fallback",
			cfg:      model.ViewConfig{GroupBy: model.GroupByProject},
			wantBy:   model.GroupByProject,
			wantKeys: []string{"general", "casa", view.FallbackGroupKey},
			want: map[string][]string{
				"general":             {"d", "a"},
				"casa":                {"b"},
				view.FallbackGroupKey: {"f"},
			},
		},
		{
			name:     "Unknown groupBy falls back to none",
			cfg:      model.ViewConfig{GroupBy: "colour", Layout: "carousel"},
			wantBy:   model.GroupByNone,
			wantKeys: []string{view.AllGroupKey},
			want:     map[string][]string{view.AllGroupKey: {"b", "d", "f", "a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := view.Project(fixture(), tt.cfg, params())
			if got.GroupBy != tt.wantBy {
				t.Errorf("GroupBy = %s, want %s", got.GroupBy, tt.wantBy)
			}
			if diff := cmp.Diff(tt.wantKeys, got.Keys()); diff != "" {
				t.Errorf("keys (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.want, groupIDs(got)); diff != "" {
				t.Errorf("groups (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProject_UnknownPriorityGoesToFallback(t *testing.T) {
	tasks := []model.Task{
		{ID: "x", Priority: "urgente", Status: "pendiente"},
		{ID: "y", Priority: model.PriorityLow, Status: "pendiente"},
	}

	got := view.Project(tasks, model.ViewConfig{GroupBy: model.GroupByPriority}, params())
	if diff := cmp.Diff([]string{"alta", "media", "baja", view.FallbackGroupKey}, got.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	fb, _ := got.Group(view.FallbackGroupKey)
	if diff := cmp.Diff([]string{"x"}, ids(fb.Tasks)); diff != "" {
		t.Errorf("fallback (-want +got):\n%s", diff)
	}
}

func TestProject_KanbanForcesStatus(t *testing.T) {
	forced := view.Project(fixture(), model.ViewConfig{Layout: model.LayoutKanban, GroupBy: model.GroupByNone}, params())
	explicit := view.Project(fixture(), model.ViewConfig{Layout: model.LayoutKanban, GroupBy: model.GroupByStatus}, params())

	if forced.GroupBy != model.GroupByStatus {
		t.Errorf("GroupBy = %s, want status", forced.GroupBy)
	}
	if diff := cmp.Diff(explicit, forced); diff != "" {
		t.Errorf("kanban partition differs (-explicit +forced):\n%s", diff)
	}

	priority := view.Project(fixture(), model.ViewConfig{Layout: model.LayoutKanban, GroupBy: model.GroupByPriority}, params())
	if priority.GroupBy != model.GroupByPriority {
		t.Errorf("kanban must keep an explicit grouping, got %s", priority.GroupBy)
	}
}

func TestProject_PartitionIsExact(t *testing.T) {
	for _, groupBy := range []model.GroupBy{model.GroupByNone, model.GroupByStatus, model.GroupByPriority, model.GroupByProject} {
		t.Run(string(groupBy), func(t *testing.T) {
			p := params()
			cfg := model.ViewConfig{GroupBy: groupBy}

			got := view.Project(fixture(), cfg, p)

			expected := view.Filter(fixture(), cfg.Filters, p)
			view.Sort(expected, cfg.SortBy, p.Locale)

			seen := map[string]int{}
			for _, task := range got.Tasks() {
				seen[task.ID]++
			}
			if len(seen) != len(expected) {
				t.Fatalf("got %d distinct tasks, want %d", len(seen), len(expected))
			}
			for _, task := range expected {
				if seen[task.ID] != 1 {
					t.Errorf("task %s appears %d times", task.ID, seen[task.ID])
				}
			}
		})
	}
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	tasks := fixture()
	before := fixture()

	view.Project(tasks, model.ViewConfig{SortBy: model.SortByTitle, GroupBy: model.GroupByStatus}, params())

	if diff := cmp.Diff(before, tasks); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
}
