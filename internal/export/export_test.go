package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mfigueiredo/tarefa/internal/models"
)

func sampleTasks() []models.Task {
	due := time.Date(2026, time.December, 15, 23, 59, 59, 0, time.Local)
	return []models.Task{
		{ID: "a1", Text: "Entregar relatório", Category: "Trabalho", Priority: models.PriorityHigh, Due: &due, CreatedAt: time.Now()},
		{ID: "b2", Text: "Comprar pão", Completed: true, Category: "Compras", Priority: models.PriorityLow, CreatedAt: time.Now()},
	}
}

func TestExportJSON(t *testing.T) {
	data, err := Export(sampleTasks(), "json")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var decoded []models.Task
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(decoded))
	}
	if decoded[0].Text != "Entregar relatório" {
		t.Errorf("Wrong first task: %q", decoded[0].Text)
	}
}

func TestExportCSV(t *testing.T) {
	data, err := Export(sampleTasks(), "csv")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "id,text,completed") {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "15/12/2026") {
		t.Errorf("Expected formatted due date in row: %q", lines[1])
	}
}

func TestExportPDF(t *testing.T) {
	data, err := Export(sampleTasks(), "pdf")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Error("Output does not look like a PDF")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	if _, err := Export(sampleTasks(), "xml"); err == nil {
		t.Error("Expected error for unknown format")
	}
}
