package view

import (
	"golang.org/x/text/language"

	"aura/internal/model"
)

const (
	// AllGroupKey is the single bucket key when no grouping is active.
	AllGroupKey = "all"
	// FallbackGroupKey collects tasks whose grouping value is not a known bucket.
	FallbackGroupKey = "__fallback__"
)

// Params are the scalar inputs of Project besides the tasks and the config.
type Params struct {
	StandardView model.StandardView
	Custom       bool   // a user view is active; standard-view rules are skipped
	Search       string // case-insensitive title substring, optional
	Today        string // YYYY-MM-DD reference date

	// CompletedStatusID marks one more status as completed on top of the
	// Completed flags in Statuses. Optional.
	CompletedStatusID string

	Statuses []model.Status  // in display order
	Projects []model.Project // in display order

	// Locale drives title collation. Defaults to Spanish.
	Locale language.Tag
}

// Group is one ordered bucket of a projection.
type Group struct {
	Key   string
	Label string
	Tasks []model.Task
}

// Projection is the grouped, ordered output of Project.
type Projection struct {
	GroupBy model.GroupBy // effective grouping after the kanban rule
	Groups  []Group
}

// Group returns the bucket with the given key.
func (p Projection) Group(key string) (Group, bool) {
	for _, g := range p.Groups {
		if g.Key == key {
			return g, true
		}
	}
	return Group{}, false
}

// Keys returns bucket keys in order.
func (p Projection) Keys() []string {
	keys := make([]string, len(p.Groups))
	for i, g := range p.Groups {
		keys[i] = g.Key
	}
	return keys
}

// Tasks flattens the projection in bucket order.
func (p Projection) Tasks() []model.Task {
	var out []model.Task
	for _, g := range p.Groups {
		out = append(out, g.Tasks...)
	}
	return out
}
