package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const tasksYAML = `
- id: t1
  title: pagar luz
  date: "2024-01-08"
  priority: baja
- id: t2
  title: llamar a mamá
  date: "2024-01-12"
  priority: alta
- id: t3
  title: informe
  date: "2024-01-08"
  status: completada
`

func TestParseCmd(t *testing.T) {
	out, err := execute(t, "", "parse", "--tz", "UTC", "--base", "2024-01-08",
		"comprar pan mañana; llamar a mamá el viernes")
	require.NoError(t, err)

	var got []taskDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "comprar pan", got[0].Title)
	assert.Equal(t, "2024-01-09", got[0].Date)
	assert.Equal(t, "shopping", got[0].Type)
	assert.Empty(t, got[0].ID)

	assert.Equal(t, "llamar a mamá", got[1].Title)
	assert.Equal(t, "2024-01-12", got[1].Date)
	assert.Equal(t, "call", got[1].Type)
}

func TestParseCmdStdin(t *testing.T) {
	out, err := execute(t, "pagar factura 30/06\n", "parse", "--tz", "UTC", "--base", "2024-01-08T10:00:00Z")
	require.NoError(t, err)

	var got []taskDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "pagar factura", got[0].Title)
	assert.Equal(t, "2024-06-30", got[0].Date)
	assert.Equal(t, "payment", got[0].Type)
}

func TestParseCmdErrors(t *testing.T) {
	_, err := execute(t, "", "parse", "--tz", "Mars/Base", "hola")
	assert.Error(t, err)

	_, err = execute(t, "", "parse", "--base", "ayer", "hola")
	assert.Error(t, err)
}

func TestBoardCmdStandardView(t *testing.T) {
	tasks := writeFile(t, "tasks.yaml", tasksYAML)

	out, err := execute(t, "", "board", "--tz", "UTC", "--tasks", tasks, "--standard", "today", "--today", "2024-01-08")
	require.NoError(t, err)

	var got boardDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2024-01-08", got.Today)
	assert.Equal(t, "none", got.GroupBy)
	require.Len(t, got.Groups, 1)
	require.Len(t, got.Groups[0].Tasks, 1)
	assert.Equal(t, "t1", got.Groups[0].Tasks[0].ID)
}

func TestBoardCmdKanbanView(t *testing.T) {
	tasks := writeFile(t, "tasks.yaml", tasksYAML)
	viewFile := writeFile(t, "view.json", `{"id": "tablero", "layout": "kanban", "sort_by": "priority"}`)

	out, err := execute(t, "", "board", "--tz", "UTC", "--tasks", tasks, "--view", viewFile, "--today", "2024-01-08")
	require.NoError(t, err)

	var got boardDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "status", got.GroupBy)

	counts := map[string]int{}
	for _, g := range got.Groups {
		counts[g.Key] = len(g.Tasks)
	}
	assert.Equal(t, 2, counts["pendiente"])
	assert.Equal(t, 0, counts["en_progreso"])
	assert.Equal(t, 1, counts["completada"])

	pending := got.Groups[0]
	require.Equal(t, "pendiente", pending.Key)
	assert.Equal(t, "t2", pending.Tasks[0].ID)
}

func TestBoardCmdErrors(t *testing.T) {
	_, err := execute(t, "", "board")
	assert.Error(t, err)

	_, err = execute(t, "", "board", "--tasks", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	tasks := writeFile(t, "tasks.yaml", tasksYAML)
	_, err = execute(t, "", "board", "--tasks", tasks, "--today", "08/01/2024")
	assert.Error(t, err)
}

func TestMoveCmd(t *testing.T) {
	tasks := writeFile(t, "tasks.yaml", tasksYAML)

	out, err := execute(t, "", "move", "--tasks", tasks, "t1", "priority", "alta")
	require.NoError(t, err)

	var got []taskDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "alta", got[0].Priority)
	assert.Equal(t, "alta", got[1].Priority)
	assert.Equal(t, "completada", got[2].Status)
}

func TestMoveCmdUnknownTask(t *testing.T) {
	tasks := writeFile(t, "tasks.yaml", tasksYAML)

	out, err := execute(t, "", "move", "--tasks", tasks, "nope", "status", "completada")
	require.NoError(t, err)

	var got []taskDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "pendiente", got[0].Status)
}

func TestMoveCmdBadDimension(t *testing.T) {
	tasks := writeFile(t, "tasks.yaml", tasksYAML)
	_, err := execute(t, "", "move", "--tasks", tasks, "t1", "color", "rojo")
	assert.Error(t, err)
}

func TestMoveCmdRejectsUnknownTarget(t *testing.T) {
	tasks := writeFile(t, "tasks.yaml", tasksYAML)

	tests := []struct {
		name string
		args []string
	}{
		{name: "Priority", args: []string{"t1", "priority", "foo"}},
		{name: "Status", args: []string{"t1", "status", "archivada"}},
		{name: "Project", args: []string{"t1", "project", "casa"}},
		{name: "Fallback bucket", args: []string{"t1", "status", "__fallback__"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", append([]string{"move", "--tasks", tasks}, tt.args...)...)
			assert.Error(t, err)
			assert.Empty(t, out, "nothing is written on a rejected move")
		})
	}
}

func TestMoveCmdKnownTargets(t *testing.T) {
	tasks := writeFile(t, "tasks.yaml", tasksYAML)

	for _, args := range [][]string{
		{"t1", "status", "en_progreso"},
		{"t1", "project", "general"},
		{"t1", "priority", "high"},
	} {
		_, err := execute(t, "", append([]string{"move", "--tasks", tasks}, args...)...)
		assert.NoError(t, err, args)
	}
}
