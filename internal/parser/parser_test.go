package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/mfigueiredo/tarefa/internal/models"
)

func TestParseDueDateAbsolute(t *testing.T) {
	due, err := ParseDueDate("15/12/2026")
	if err != nil {
		t.Fatalf("ParseDueDate failed: %v", err)
	}
	if due == nil {
		t.Fatal("Expected a due date")
	}
	if due.Day() != 15 || due.Month() != time.December || due.Year() != 2026 {
		t.Errorf("Wrong date: %v", due)
	}
	if due.Hour() != 23 || due.Minute() != 59 {
		t.Errorf("Expected end of day, got %v", due)
	}
}

func TestParseDueDateRejectsImpossibleDate(t *testing.T) {
	if _, err := ParseDueDate("32/13/2026"); err == nil {
		t.Error("Expected error for 32/13/2026")
	}
}

func TestParseDueDateRelative(t *testing.T) {
	cases := []string{"3 days", "3days", "24 hours", "2 weeks", "1 day"}
	for _, input := range cases {
		due, err := ParseDueDate(input)
		if err != nil {
			t.Errorf("ParseDueDate(%q) failed: %v", input, err)
			continue
		}
		if due == nil || !due.After(time.Now()) {
			t.Errorf("ParseDueDate(%q) = %v, expected a future time", input, due)
		}
	}
}

func TestParseDueDateEmpty(t *testing.T) {
	due, err := ParseDueDate("")
	if err != nil {
		t.Fatalf("Empty input must not error: %v", err)
	}
	if due != nil {
		t.Fatal("Empty input must yield no due date")
	}
}

func TestParseDueDateInvalid(t *testing.T) {
	for _, input := range []string{"soon", "12-31-2026", "0 days"} {
		if _, err := ParseDueDate(input); err == nil {
			t.Errorf("Expected error for %q", input)
		}
	}
}

func TestParseTitleFullSyntax(t *testing.T) {
	parsed := ParseTitle("Entregar relatório @Trabalho +high due:3days")

	if parsed.Text != "Entregar relatório" {
		t.Errorf("Expected clean text, got %q", parsed.Text)
	}
	if parsed.Category != "Trabalho" {
		t.Errorf("Expected category Trabalho, got %q", parsed.Category)
	}
	if parsed.Priority != models.PriorityHigh {
		t.Errorf("Expected high priority, got %v", parsed.Priority)
	}
	if parsed.Due == nil {
		t.Error("Expected a due date")
	}
	if len(parsed.Errors) != 0 {
		t.Errorf("Unexpected errors: %v", parsed.Errors)
	}
}

func TestParseTitleCategoryIsCaseInsensitive(t *testing.T) {
	parsed := ParseTitle("algo @trabalho")
	if parsed.Category != "Trabalho" {
		t.Errorf("Expected canonical Trabalho, got %q", parsed.Category)
	}
}

func TestParseTitleUnknownCategory(t *testing.T) {
	parsed := ParseTitle("algo @Inexistente")
	if parsed.Category != "" {
		t.Errorf("Expected no category, got %q", parsed.Category)
	}
	if len(parsed.Errors) == 0 {
		t.Error("Expected a parsing error")
	}
}

func TestParseTitlePlainText(t *testing.T) {
	parsed := ParseTitle("  Comprar   pão  ")
	if parsed.Text != "Comprar pão" {
		t.Errorf("Expected collapsed spaces, got %q", parsed.Text)
	}
	if parsed.Category != "" || parsed.Priority != 0 || parsed.Due != nil {
		t.Error("Plain text must parse without metadata")
	}
}

func TestFormatDueDateOverdue(t *testing.T) {
	past := time.Now().AddDate(0, 0, -3)
	got := FormatDueDate(&past)
	if !strings.Contains(got, "OVERDUE") {
		t.Errorf("Expected OVERDUE marker, got %q", got)
	}
}

func TestFormatDueDateNil(t *testing.T) {
	if got := FormatDueDate(nil); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}
