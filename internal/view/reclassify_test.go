package view_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"aura/internal/model"
	"aura/internal/view"
)

func TestReclassify(t *testing.T) {
	base := []model.Task{
		{ID: "t1", Title: "uno", Status: "pendiente", Priority: model.PriorityLow, ListID: "general"},
		{ID: "t2", Title: "dos", Status: "pendiente", Priority: model.PriorityMedium, ListID: "casa"},
	}

	tests := []struct {
		name        string
		taskID      string
		dimension   model.GroupBy
		target      string
		wantChanged bool
		want        model.Task
	}{
		{
			name:        "Priority",
			taskID:      "t1",
			dimension:   model.GroupByPriority,
			target:      "alta",
			wantChanged: true,
			want:        model.Task{ID: "t1", Title: "uno", Status: "pendiente", Priority: model.PriorityHigh, ListID: "general"},
		},
		{
			name:        "Status",
			taskID:      "t1",
			dimension:   model.GroupByStatus,
			target:      "completada",
			wantChanged: true,
			want:        model.Task{ID: "t1", Title: "uno", Status: "completada", Priority: model.PriorityLow, ListID: "general"},
		},
		{
			name:        "Project",
			taskID:      "t1",
			dimension:   model.GroupByProject,
			target:      "casa",
			wantChanged: true,
			want:        model.Task{ID: "t1", Title: "uno", Status: "pendiente", Priority: model.PriorityLow, ListID: "casa"},
		},
		{
			name:        "Unknown id is a no-op",
			taskID:      "missing",
			dimension:   model.GroupByStatus,
			target:      "completada",
			wantChanged: false,
			want:        base[0],
		},
		{
			name:        "Dimension none is a no-op",
			taskID:      "t1",
			dimension:   model.GroupByNone,
			target:      "alta",
			wantChanged: false,
			want:        base[0],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := []model.Task{base[0], base[1]}

			got, changed := view.Reclassify(input, tt.taskID, tt.dimension, tt.target)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if len(got) != len(base) {
				t.Fatalf("len = %d, want %d", len(got), len(base))
			}
			if diff := cmp.Diff(tt.want, got[0]); diff != "" {
				t.Errorf("t1 (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(base[1], got[1]); diff != "" {
				t.Errorf("other tasks must be untouched (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(base, input); diff != "" {
				t.Errorf("input mutated (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReclassify_ThenProject(t *testing.T) {
	tasks := []model.Task{
		{ID: "t1", Status: "pendiente", Priority: model.PriorityLow},
		{ID: "t2", Status: "pendiente", Priority: model.PriorityLow},
	}

	moved, changed := view.Reclassify(tasks, "t1", model.GroupByPriority, "alta")
	if !changed {
		t.Fatal("expected a change")
	}

	got := view.Project(moved, model.ViewConfig{GroupBy: model.GroupByPriority}, params())
	high, ok := got.Group(string(model.PriorityHigh))
	if !ok {
		t.Fatal("missing alta bucket")
	}
	if diff := cmp.Diff([]string{"t1"}, ids(high.Tasks)); diff != "" {
		t.Errorf("alta bucket (-want +got):\n%s", diff)
	}
	low, _ := got.Group(string(model.PriorityLow))
	if diff := cmp.Diff([]string{"t2"}, ids(low.Tasks)); diff != "" {
		t.Errorf("baja bucket (-want +got):\n%s", diff)
	}
}
