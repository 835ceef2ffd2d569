package model

// StatusNotStarted is the status given to freshly captured tasks.
const StatusNotStarted = "pendiente"

// Status is a user-defined workflow column.
type Status struct {
	ID        string
	Name      string
	Completed bool
	Position  int
}

// Project groups tasks into lists.
type Project struct {
	ID       string
	Name     string
	Color    string
	Position int
}

// DefaultStatuses is the workflow seeded into an empty store.
func DefaultStatuses() []Status {
	return []Status{
		{ID: StatusNotStarted, Name: "Pendiente", Position: 0},
		{ID: "en_progreso", Name: "En progreso", Position: 1},
		{ID: "completada", Name: "Completada", Completed: true, Position: 2},
	}
}

// DefaultProjects is the project list seeded into an empty store.
func DefaultProjects() []Project {
	return []Project{
		{ID: DefaultProjectID, Name: "General", Color: "#64748b", Position: 0},
	}
}
