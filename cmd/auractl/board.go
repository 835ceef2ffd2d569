package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"aura/internal/model"
	"aura/internal/view"
	"aura/pkg/datemath"
)

var (
	boardTasksFile string
	boardViewFile  string
	boardStandard  string
	boardSearch    string
	boardToday     string
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Project a task file through a view",
		Long: `Filters, sorts and groups the tasks of a YAML or JSON file. With --view
a custom view file is used; otherwise --standard picks inbox, today, upcoming or all.
The default workflow statuses and projects are used for grouping.`,
		Example: `  auractl board --tasks tasks.yaml --standard today
  auractl board --tasks tasks.yaml --view kanban.yaml --today 2024-01-08`,
		Args: cobra.NoArgs,
		RunE: runBoard,
	}
	cmd.Flags().StringVar(&boardTasksFile, "tasks", "", "task file (YAML or JSON list)")
	cmd.Flags().StringVar(&boardViewFile, "view", "", "custom view file")
	cmd.Flags().StringVar(&boardStandard, "standard", string(model.StandardViewInbox), "standard view when no --view is given")
	cmd.Flags().StringVar(&boardSearch, "search", "", "title substring")
	cmd.Flags().StringVar(&boardToday, "today", "", "reference date YYYY-MM-DD, defaults to today")
	_ = cmd.MarkFlagRequired("tasks")
	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
	tasks, err := readTasks(boardTasksFile)
	if err != nil {
		return err
	}

	standard := model.ParseStandardView(boardStandard)
	cfg := model.ViewConfig{ID: string(standard), Name: string(standard)}
	custom := boardViewFile != ""
	if custom {
		if cfg, err = readView(boardViewFile); err != nil {
			return err
		}
	}

	today, err := todayISO(boardToday)
	if err != nil {
		return err
	}

	projection := view.Project(tasks, cfg, view.Params{
		StandardView: standard,
		Custom:       custom,
		Search:       boardSearch,
		Today:        today,
		Statuses:     model.DefaultStatuses(),
		Projects:     model.DefaultProjects(),
		Locale:       language.Spanish,
	})
	logger.Debug("projected board",
		zap.String("view", cfg.ID),
		zap.Int("tasks", len(tasks)),
		zap.Int("groups", len(projection.Groups)))

	out := boardDoc{Today: today, GroupBy: string(projection.GroupBy)}
	for _, g := range projection.Groups {
		gd := groupDoc{Key: g.Key, Label: g.Label, Tasks: make([]taskDoc, len(g.Tasks))}
		for i, t := range g.Tasks {
			gd.Tasks[i] = newTaskDoc(t)
		}
		out.Groups = append(out.Groups, gd)
	}
	return writeYAML(cmd.OutOrStdout(), out)
}

func todayISO(s string) (string, error) {
	parser, err := newParser()
	if err != nil {
		return "", err
	}
	if s == "" {
		return datemath.FormatISO(parser.Today(time.Now())), nil
	}
	if _, err := datemath.ParseISO(s, parser.Location()); err != nil {
		return "", errors.New("--today must be YYYY-MM-DD")
	}
	return s, nil
}
