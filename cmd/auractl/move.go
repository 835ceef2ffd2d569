package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aura/internal/model"
	"aura/internal/view"
)

var moveTasksFile string

func newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task-id> <status|priority|project> <target>",
		Short: "Reclassify one task of a task file",
		Long: `Sets the status, priority or project of one task and prints the whole
task list again. The target must be a known priority or one of the default
statuses or projects. An unknown task id leaves the list untouched.`,
		Example: `  auractl move --tasks tasks.yaml t1 priority alta > moved.yaml`,
		Args:    cobra.ExactArgs(3),
		RunE:    runMove,
	}
	cmd.Flags().StringVar(&moveTasksFile, "tasks", "", "task file (YAML or JSON list)")
	_ = cmd.MarkFlagRequired("tasks")
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	dimension := model.ParseGroupBy(args[1])
	if dimension == model.GroupByNone {
		return fmt.Errorf("unknown dimension %q", args[1])
	}

	if !validTarget(dimension, args[2]) {
		return fmt.Errorf("unknown %s %q", dimension, args[2])
	}

	tasks, err := readTasks(moveTasksFile)
	if err != nil {
		return err
	}

	moved, changed := view.Reclassify(tasks, args[0], dimension, args[2])
	if !changed {
		logger.Info("task not found, nothing moved", zap.String("id", args[0]))
	}

	docs := make([]taskDoc, len(moved))
	for i, t := range moved {
		docs[i] = newTaskDoc(t)
	}
	return writeYAML(cmd.OutOrStdout(), docs)
}

// validTarget accepts only existing buckets, never the fallback one.
func validTarget(dimension model.GroupBy, target string) bool {
	switch dimension {
	case model.GroupByPriority:
		return target != "" && model.ParsePriority(target).IsKnown()
	case model.GroupByStatus:
		return slices.ContainsFunc(model.DefaultStatuses(), func(s model.Status) bool { return s.ID == target })
	case model.GroupByProject:
		return slices.ContainsFunc(model.DefaultProjects(), func(p model.Project) bool { return p.ID == target })
	default:
		return false
	}
}
