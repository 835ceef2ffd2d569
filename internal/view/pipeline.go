package view

import (
	"aura/internal/model"
)

// Project runs filter, sort and group over tasks. It never mutates its inputs.
func Project(tasks []model.Task, cfg model.ViewConfig, params Params) Projection {
	cfg = cfg.Normalize()

	filtered := Filter(tasks, cfg.Filters, params)
	Sort(filtered, cfg.SortBy, params.Locale)

	groupBy := EffectiveGroupBy(cfg)
	return Projection{
		GroupBy: groupBy,
		Groups:  groupTasks(filtered, groupBy, params),
	}
}

// EffectiveGroupBy applies the board rule: kanban without grouping groups by status.
func EffectiveGroupBy(cfg model.ViewConfig) model.GroupBy {
	cfg = cfg.Normalize()
	if cfg.Layout == model.LayoutKanban && cfg.GroupBy == model.GroupByNone {
		return model.GroupByStatus
	}
	return cfg.GroupBy
}
