package model

import (
	"strings"
	"time"
)

// DefaultProjectID is the list every task belongs to unless told otherwise.
const DefaultProjectID = "general"

// Priority is the fixed 3-level task priority. Values outside the set are
// carried as PriorityUnknown so stale data sorts last instead of failing.
type Priority string

const (
	PriorityHigh    Priority = "alta"
	PriorityMedium  Priority = "media"
	PriorityLow     Priority = "baja"
	PriorityUnknown Priority = "unknown"
)

// Priorities lists the known priorities in display order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// ParsePriority accepts the Spanish ids and their English names.
// An empty string is the default (medium).
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "alta", "high":
		return PriorityHigh
	case "", "media", "medium":
		return PriorityMedium
	case "baja", "low":
		return PriorityLow
	default:
		return PriorityUnknown
	}
}

// Rank orders priorities high < medium < low < unknown.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// IsKnown reports whether p is one of Priorities.
func (p Priority) IsKnown() bool {
	return p.Rank() < 3
}

// TaskType is the coarse category inferred from capture keywords.
type TaskType string

const (
	TaskTypeNormal   TaskType = "normal"
	TaskTypeCall     TaskType = "call"
	TaskTypeShopping TaskType = "shopping"
	TaskTypePayment  TaskType = "payment"
	TaskTypeEmail    TaskType = "email"
	TaskTypeEvent    TaskType = "event"
)

// ParseTaskType returns TaskTypeNormal for anything unrecognized.
func ParseTaskType(s string) TaskType {
	switch t := TaskType(strings.ToLower(strings.TrimSpace(s))); t {
	case TaskTypeCall, TaskTypeShopping, TaskTypePayment, TaskTypeEmail, TaskTypeEvent:
		return t
	default:
		return TaskTypeNormal
	}
}

// Task is a single to-do item.
type Task struct {
	ID        string
	Title     string
	Date      string // YYYY-MM-DD do-date
	EventDate string // YYYY-MM-DD of a related event, optional
	Status    string // Status.ID
	Priority  Priority
	Type      TaskType
	ListID    string // Project.ID
	Tags      []string
	Recurring bool // recurring template, shown only in the recurring view
	CreatedAt time.Time
	UpdatedAt time.Time
}
