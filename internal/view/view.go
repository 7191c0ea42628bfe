// Package view computes the visible task projection. Everything here is
// pure: same inputs, same output.
package view

import (
	"sort"
	"time"

	"github.com/mfigueiredo/tarefa/internal/models"
)

// VisibleTasks filters tasks by status and category, then orders them:
// priority high to low, and within equal priority an earlier due date
// comes first when both tasks carry one. A task without a due date is
// never reordered against one that has it; the sort is stable so ties
// keep input order.
func VisibleTasks(tasks []models.Task, status models.StatusFilter, category string) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		switch status {
		case models.StatusPending:
			if t.Completed {
				continue
			}
		case models.StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		if category != models.CategoryAll && t.Category != category {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Due != nil && b.Due != nil {
			return a.Due.Before(*b.Due)
		}
		return false
	})

	return out
}

// IsOverdue reports whether due is set and strictly before now
func IsOverdue(due *time.Time, now time.Time) bool {
	return due != nil && due.Before(now)
}

// FormatDate renders a date as dd/mm/yyyy
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
