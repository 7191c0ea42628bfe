package view

import (
	"testing"
	"time"

	"github.com/mfigueiredo/tarefa/internal/models"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 12, 0, 0, 0, time.Local)
	return &t
}

func TestVisibleTasksStatusFilter(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Text: "a", Completed: false, Category: "Pessoal", Priority: models.PriorityLow},
		{ID: "2", Text: "b", Completed: true, Category: "Pessoal", Priority: models.PriorityLow},
		{ID: "3", Text: "c", Completed: false, Category: "Pessoal", Priority: models.PriorityLow},
	}

	pending := VisibleTasks(tasks, models.StatusPending, models.CategoryAll)
	if len(pending) != 2 {
		t.Fatalf("Expected 2 pending tasks, got %d", len(pending))
	}
	for _, task := range pending {
		if task.Completed {
			t.Errorf("Pending filter returned completed task %s", task.ID)
		}
	}

	completed := VisibleTasks(tasks, models.StatusCompleted, models.CategoryAll)
	if len(completed) != 1 || completed[0].ID != "2" {
		t.Fatalf("Expected only task 2 completed, got %v", completed)
	}

	all := VisibleTasks(tasks, models.StatusAll, models.CategoryAll)
	if len(all) != 3 {
		t.Fatalf("Expected 3 tasks with status all, got %d", len(all))
	}
}

func TestVisibleTasksCategoryFilter(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Text: "a", Category: "Trabalho", Priority: models.PriorityLow},
		{ID: "2", Text: "b", Category: "Pessoal", Priority: models.PriorityLow},
		{ID: "3", Text: "c", Completed: true, Category: "Trabalho", Priority: models.PriorityLow},
	}

	// Category filter applies regardless of the status filter
	for _, status := range []models.StatusFilter{models.StatusAll, models.StatusPending, models.StatusCompleted} {
		got := VisibleTasks(tasks, status, "Trabalho")
		for _, task := range got {
			if task.Category != "Trabalho" {
				t.Errorf("Status %s: got task with category %s", status, task.Category)
			}
		}
	}

	got := VisibleTasks(tasks, models.StatusAll, "Trabalho")
	if len(got) != 2 {
		t.Fatalf("Expected 2 Trabalho tasks, got %d", len(got))
	}
}

func TestVisibleTasksPriorityBeatsDueDate(t *testing.T) {
	// A high priority task without a due date sorts before a low priority
	// task that has one.
	tasks := []models.Task{
		{ID: "low", Text: "b", Priority: models.PriorityLow, Due: date(2024, time.January, 1), Category: "Pessoal"},
		{ID: "high", Text: "a", Priority: models.PriorityHigh, Category: "Pessoal"},
	}

	got := VisibleTasks(tasks, models.StatusAll, models.CategoryAll)
	if got[0].ID != "high" || got[1].ID != "low" {
		t.Fatalf("Expected high before low, got %s then %s", got[0].ID, got[1].ID)
	}
}

func TestVisibleTasksDueDateBreaksPriorityTie(t *testing.T) {
	tasks := []models.Task{
		{ID: "june", Priority: models.PriorityMedium, Due: date(2024, time.June, 1), Category: "Pessoal"},
		{ID: "january", Priority: models.PriorityMedium, Due: date(2024, time.January, 1), Category: "Pessoal"},
	}

	got := VisibleTasks(tasks, models.StatusAll, models.CategoryAll)
	if got[0].ID != "january" || got[1].ID != "june" {
		t.Fatalf("Expected january before june, got %s then %s", got[0].ID, got[1].ID)
	}
}

func TestVisibleTasksStableWithoutDueDates(t *testing.T) {
	// Equal priority, no due dates anywhere: input order is preserved.
	tasks := []models.Task{
		{ID: "1", Priority: models.PriorityMedium, Category: "Pessoal"},
		{ID: "2", Priority: models.PriorityMedium, Category: "Pessoal"},
		{ID: "3", Priority: models.PriorityMedium, Category: "Pessoal"},
	}

	got := VisibleTasks(tasks, models.StatusAll, models.CategoryAll)
	for i, task := range got {
		if task.ID != tasks[i].ID {
			t.Fatalf("Order changed at %d: got %s", i, task.ID)
		}
	}
}

func TestVisibleTasksDoesNotMutateInput(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Priority: models.PriorityLow, Category: "Pessoal"},
		{ID: "2", Priority: models.PriorityHigh, Category: "Pessoal"},
	}

	VisibleTasks(tasks, models.StatusAll, models.CategoryAll)
	if tasks[0].ID != "1" || tasks[1].ID != "2" {
		t.Fatal("Input slice was reordered")
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.Local)

	past := now.Add(-time.Minute)
	if !IsOverdue(&past, now) {
		t.Error("Expected past due date to be overdue")
	}

	if IsOverdue(&now, now) {
		t.Error("Due date equal to now must not be overdue")
	}

	future := now.Add(time.Minute)
	if IsOverdue(&future, now) {
		t.Error("Future due date must not be overdue")
	}

	if IsOverdue(nil, now) {
		t.Error("Missing due date must not be overdue")
	}
}

func TestFormatDate(t *testing.T) {
	got := FormatDate(time.Date(2026, time.March, 5, 0, 0, 0, 0, time.Local))
	if got != "05/03/2026" {
		t.Errorf("Expected 05/03/2026, got %s", got)
	}
}
