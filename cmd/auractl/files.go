package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"aura/internal/model"
)

// taskDoc is the YAML shape of a task; JSON input also decodes since YAML is a superset.
type taskDoc struct {
	ID        string   `yaml:"id,omitempty"`
	Title     string   `yaml:"title"`
	Date      string   `yaml:"date,omitempty"`
	EventDate string   `yaml:"event_date,omitempty"`
	Status    string   `yaml:"status,omitempty"`
	Priority  string   `yaml:"priority,omitempty"`
	Type      string   `yaml:"type,omitempty"`
	ListID    string   `yaml:"list_id,omitempty"`
	Tags      []string `yaml:"tags,omitempty"`
	Recurring bool     `yaml:"recurring,omitempty"`
}

type viewDoc struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Layout  string `yaml:"layout"`
	GroupBy string `yaml:"group_by"`
	SortBy  string `yaml:"sort_by"`
	Filters struct {
		ProjectIDs []string `yaml:"project_ids"`
		Priorities []string `yaml:"priorities"`
		Statuses   []string `yaml:"statuses"`
		Tags       []string `yaml:"tags"`
	} `yaml:"filters"`
}

type groupDoc struct {
	Key   string    `yaml:"key"`
	Label string    `yaml:"label"`
	Tasks []taskDoc `yaml:"tasks"`
}

type boardDoc struct {
	Today   string     `yaml:"today"`
	GroupBy string     `yaml:"group_by"`
	Groups  []groupDoc `yaml:"groups"`
}

func newTaskDoc(t model.Task) taskDoc {
	return taskDoc{
		ID:        t.ID,
		Title:     t.Title,
		Date:      t.Date,
		EventDate: t.EventDate,
		Status:    t.Status,
		Priority:  string(t.Priority),
		Type:      string(t.Type),
		ListID:    t.ListID,
		Tags:      t.Tags,
		Recurring: t.Recurring,
	}
}

// toModel fills the same defaults a freshly captured task gets.
func (d taskDoc) toModel() model.Task {
	t := model.Task{
		ID:        d.ID,
		Title:     d.Title,
		Date:      d.Date,
		EventDate: d.EventDate,
		Status:    d.Status,
		Priority:  model.ParsePriority(d.Priority),
		Type:      model.ParseTaskType(d.Type),
		ListID:    d.ListID,
		Tags:      d.Tags,
		Recurring: d.Recurring,
	}
	if t.Status == "" {
		t.Status = model.StatusNotStarted
	}
	if t.ListID == "" {
		t.ListID = model.DefaultProjectID
	}
	return t
}

func (d viewDoc) toModel() model.ViewConfig {
	priorities := make([]model.Priority, 0, len(d.Filters.Priorities))
	for _, p := range d.Filters.Priorities {
		priorities = append(priorities, model.ParsePriority(p))
	}
	return model.ViewConfig{
		ID:      d.ID,
		Name:    d.Name,
		Layout:  model.Layout(d.Layout),
		GroupBy: model.GroupBy(d.GroupBy),
		SortBy:  model.SortBy(d.SortBy),
		Filters: model.ViewFilters{
			ProjectIDs: d.Filters.ProjectIDs,
			Priorities: priorities,
			Statuses:   d.Filters.Statuses,
			Tags:       d.Filters.Tags,
		},
	}.Normalize()
}

func readTasks(path string) ([]model.Task, error) {
	var docs []taskDoc
	if err := readYAML(path, &docs); err != nil {
		return nil, err
	}
	tasks := make([]model.Task, len(docs))
	for i, d := range docs {
		tasks[i] = d.toModel()
	}
	return tasks, nil
}

func readView(path string) (model.ViewConfig, error) {
	var doc viewDoc
	if err := readYAML(path, &doc); err != nil {
		return model.ViewConfig{}, err
	}
	return doc.toModel(), nil
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
