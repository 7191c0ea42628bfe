package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/mfigueiredo/tarefa/internal/models"
)

// ParsedTask represents a task parsed from a quick-add string
type ParsedTask struct {
	Text     string
	Category string
	Priority models.Priority
	Due      *time.Time
	Errors   []string
}

var (
	categoryRegex = regexp.MustCompile(`@([\p{L}0-9_-]+)`)
	priorityRegex = regexp.MustCompile(`\+([a-zA-Z0-9]+)`)
	dueRegex      = regexp.MustCompile(`due:([^\s]+)`)
)

// ParseTitle extracts metadata from a quick-add string using natural syntax.
// Syntax: "Task text @Trabalho +high due:3days"
func ParseTitle(input string) ParsedTask {
	result := ParsedTask{
		Text:   input,
		Errors: []string{},
	}

	// Extract category (@Trabalho)
	if matches := categoryRegex.FindStringSubmatch(input); len(matches) > 1 {
		if category, ok := models.MatchCategory(matches[1]); ok {
			result.Category = category
		} else {
			result.Errors = append(result.Errors, "Unknown category '"+matches[1]+"'. Use: "+strings.Join(models.Categories, ", "))
		}
		input = categoryRegex.ReplaceAllString(input, "")
	}

	// Extract priority (+high, +2, etc.)
	if matches := priorityRegex.FindStringSubmatch(input); len(matches) > 1 {
		if priority, ok := models.ParsePriority(matches[1]); ok {
			result.Priority = priority
		} else {
			result.Errors = append(result.Errors, "Invalid priority '"+matches[1]+"'. Use: low, medium, high, 1, 2, or 3")
		}
		input = priorityRegex.ReplaceAllString(input, "")
	}

	// Extract due date (due:3days, due:15/12/2026, etc.)
	if matches := dueRegex.FindStringSubmatch(input); len(matches) > 1 {
		due, err := ParseDueDate(strings.ReplaceAll(matches[1], "_", " "))
		if err != nil {
			result.Errors = append(result.Errors, "Invalid due date '"+matches[1]+"': "+err.Error())
		} else {
			result.Due = due
		}
		input = dueRegex.ReplaceAllString(input, "")
	}

	// Clean up the text (remove extra spaces)
	result.Text = strings.Join(strings.Fields(input), " ")

	return result
}
