package view

import (
	"slices"

	"aura/internal/model"
)

// Reclassify moves one task into another bucket of the given dimension and
// returns the resulting collection. Only the grouping field of that task
// changes. When the task is not found, or dimension is not a grouping
// dimension, tasks is returned as is with changed == false.
func Reclassify(tasks []model.Task, taskID string, dimension model.GroupBy, target string) (out []model.Task, changed bool) {
	i := slices.IndexFunc(tasks, func(t model.Task) bool { return t.ID == taskID })
	if i < 0 {
		return tasks, false
	}

	moved := tasks[i]
	switch model.ParseGroupBy(string(dimension)) {
	case model.GroupByStatus:
		moved.Status = target
	case model.GroupByPriority:
		moved.Priority = model.ParsePriority(target)
	case model.GroupByProject:
		moved.ListID = target
	default:
		return tasks, false
	}

	out = slices.Clone(tasks)
	out[i] = moved
	return out, true
}
