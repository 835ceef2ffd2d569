package model

import "strings"

// Layout is a rendering hint. Only kanban changes pipeline behaviour.
type Layout string

const (
	LayoutList    Layout = "list"
	LayoutCompact Layout = "compact"
	LayoutKanban  Layout = "kanban"
	LayoutGrid    Layout = "grid"
)

// ParseLayout falls back to LayoutList.
func ParseLayout(s string) Layout {
	switch l := Layout(strings.ToLower(strings.TrimSpace(s))); l {
	case LayoutCompact, LayoutKanban, LayoutGrid:
		return l
	default:
		return LayoutList
	}
}

// GroupBy is the grouping dimension of a view.
type GroupBy string

const (
	GroupByNone     GroupBy = "none"
	GroupByStatus   GroupBy = "status"
	GroupByPriority GroupBy = "priority"
	GroupByProject  GroupBy = "project"
)

// ParseGroupBy falls back to GroupByNone.
func ParseGroupBy(s string) GroupBy {
	switch g := GroupBy(strings.ToLower(strings.TrimSpace(s))); g {
	case GroupByStatus, GroupByPriority, GroupByProject:
		return g
	default:
		return GroupByNone
	}
}

// SortBy is the sort key of a view.
type SortBy string

const (
	SortByDate     SortBy = "date"
	SortByTitle    SortBy = "title"
	SortByPriority SortBy = "priority"
)

// ParseSortBy falls back to SortByDate.
func ParseSortBy(s string) SortBy {
	switch o := SortBy(strings.ToLower(strings.TrimSpace(s))); o {
	case SortByTitle, SortByPriority:
		return o
	default:
		return SortByDate
	}
}

// StandardView is one of the built-in views.
type StandardView string

const (
	StandardViewInbox    StandardView = "inbox"
	StandardViewToday    StandardView = "today"
	StandardViewUpcoming StandardView = "upcoming"
	StandardViewAll      StandardView = "all"
)

// ParseStandardView falls back to StandardViewInbox.
func ParseStandardView(s string) StandardView {
	switch v := StandardView(strings.ToLower(strings.TrimSpace(s))); v {
	case StandardViewToday, StandardViewUpcoming, StandardViewAll:
		return v
	default:
		return StandardViewInbox
	}
}

// ViewFilters constrain a view. An empty slice means no constraint on that
// dimension; values within a dimension are OR-ed, dimensions are AND-ed.
type ViewFilters struct {
	ProjectIDs []string
	Priorities []Priority
	Statuses   []string
	Tags       []string
}

// ViewConfig is a user-authored view.
type ViewConfig struct {
	ID      string
	Name    string
	Layout  Layout
	GroupBy GroupBy
	SortBy  SortBy
	Filters ViewFilters
}

// Normalize replaces unknown or empty enum values with their defaults.
func (c ViewConfig) Normalize() ViewConfig {
	c.Layout = ParseLayout(string(c.Layout))
	c.GroupBy = ParseGroupBy(string(c.GroupBy))
	c.SortBy = ParseSortBy(string(c.SortBy))
	return c
}
