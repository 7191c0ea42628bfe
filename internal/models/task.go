package models

import (
	"strings"
	"time"
)

// Priority is a task priority level
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// String returns the lowercase name of the priority
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the three defined levels
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// ParsePriority converts user input to a Priority.
// Accepts "low/medium/high" (and "med") or "1/2/3".
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "1":
		return PriorityLow, true
	case "medium", "med", "2":
		return PriorityMedium, true
	case "high", "3":
		return PriorityHigh, true
	default:
		return 0, false
	}
}

// Categories is the fixed set of task categories
var Categories = []string{"Pessoal", "Trabalho", "Estudos", "Compras", "Outros"}

// CategoryAll is the category filter value that keeps every task
const CategoryAll = "all"

// ValidCategory reports whether name is one of the fixed categories
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// MatchCategory resolves case-insensitive user input to the canonical
// category name
func MatchCategory(input string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	for _, c := range Categories {
		if strings.ToLower(c) == in {
			return c, true
		}
	}
	return "", false
}

// StatusFilter selects tasks by completion state
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPending   StatusFilter = "pending"
	StatusCompleted StatusFilter = "completed"
)

// ParseStatusFilter converts user input to a StatusFilter
func ParseStatusFilter(s string) (StatusFilter, bool) {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(s))) {
	case StatusAll:
		return StatusAll, true
	case StatusPending:
		return StatusPending, true
	case StatusCompleted:
		return StatusCompleted, true
	default:
		return "", false
	}
}

// Task represents a todo item. Every field except Completed is fixed at
// creation time.
type Task struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	Category  string     `json:"category"`
	Priority  Priority   `json:"priority"`
	Due       *time.Time `json:"due,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
