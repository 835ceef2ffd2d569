package view

import (
	"aura/internal/model"
)

func groupTasks(tasks []model.Task, groupBy model.GroupBy, params Params) []Group {
	switch groupBy {
	case model.GroupByStatus:
		keys := make([]bucket, len(params.Statuses))
		for i, s := range params.Statuses {
			keys[i] = bucket{key: s.ID, label: s.Name}
		}
		return partition(tasks, keys, func(t model.Task) string { return t.Status }, true)

	case model.GroupByPriority:
		keys := make([]bucket, len(model.Priorities))
		for i, p := range model.Priorities {
			keys[i] = bucket{key: string(p), label: priorityLabels[p]}
		}
		return partition(tasks, keys, func(t model.Task) string { return string(t.Priority) }, false)

	case model.GroupByProject:
		keys := make([]bucket, len(params.Projects))
		for i, p := range params.Projects {
			keys[i] = bucket{key: p.ID, label: p.Name}
		}
		return partition(tasks, keys, func(t model.Task) string { return t.ListID }, false)

	default:
		return []Group{{Key: AllGroupKey, Label: "Todas", Tasks: tasks}}
	}
}

var priorityLabels = map[model.Priority]string{
	model.PriorityHigh:   "Alta",
	model.PriorityMedium: "Media",
	model.PriorityLow:    "Baja",
}

type bucket struct {
	key   string
	label string
}

// partition distributes tasks over buckets in order. Every known bucket is
// present even when empty. Unmatched tasks land in the fallback bucket, which
// is appended when alwaysFallback is set or when it is not empty.
func partition(tasks []model.Task, buckets []bucket, keyOf func(model.Task) string, alwaysFallback bool) []Group {
	groups := make([]Group, 0, len(buckets)+1)
	index := make(map[string]int, len(buckets))
	for _, b := range buckets {
		if _, dup := index[b.key]; dup {
			continue
		}
		index[b.key] = len(groups)
		groups = append(groups, Group{Key: b.key, Label: b.label, Tasks: []model.Task{}})
	}

	fallback := Group{Key: FallbackGroupKey, Label: "Sin asignar", Tasks: []model.Task{}}
	for _, t := range tasks {
		if i, ok := index[keyOf(t)]; ok {
			groups[i].Tasks = append(groups[i].Tasks, t)
			continue
		}
		fallback.Tasks = append(fallback.Tasks, t)
	}

	if alwaysFallback || len(fallback.Tasks) > 0 {
		groups = append(groups, fallback)
	}
	return groups
}
