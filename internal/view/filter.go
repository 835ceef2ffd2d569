package view

import (
	"slices"
	"strings"

	"aura/internal/model"
)

// Filter returns a new slice with the tasks that pass every active predicate,
// in input order.
func Filter(tasks []model.Task, filters model.ViewFilters, params Params) []model.Task {
	completed := completedStatuses(params)
	search := strings.ToLower(strings.TrimSpace(params.Search))
	standard := model.ParseStandardView(string(params.StandardView))

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Recurring {
			continue
		}

		if !params.Custom {
			if standard != model.StandardViewAll && completed[t.Status] {
				continue
			}
			if standard == model.StandardViewToday && t.Date != params.Today {
				continue
			}
			if standard == model.StandardViewUpcoming && (t.Date == "" || t.Date < params.Today) {
				continue
			}
		}

		if len(filters.ProjectIDs) > 0 && !slices.Contains(filters.ProjectIDs, t.ListID) {
			continue
		}
		if len(filters.Priorities) > 0 && !slices.Contains(filters.Priorities, t.Priority) {
			continue
		}
		if len(filters.Statuses) > 0 && !slices.Contains(filters.Statuses, t.Status) {
			continue
		}
		if len(filters.Tags) > 0 && !hasAnyTag(t.Tags, filters.Tags) {
			continue
		}

		if search != "" && !strings.Contains(strings.ToLower(t.Title), search) {
			continue
		}

		out = append(out, t)
	}
	return out
}

func completedStatuses(params Params) map[string]bool {
	completed := make(map[string]bool, len(params.Statuses)+1)
	for _, s := range params.Statuses {
		if s.Completed {
			completed[s.ID] = true
		}
	}
	if params.CompletedStatusID != "" {
		completed[params.CompletedStatusID] = true
	}
	return completed
}

func hasAnyTag(tags, wanted []string) bool {
	for _, t := range tags {
		for _, w := range wanted {
			if strings.EqualFold(t, w) {
				return true
			}
		}
	}
	return false
}
