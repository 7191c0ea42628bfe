package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDueDate parses user due date input.
// Supported formats:
// - dd/mm/yyyy (e.g., "15/12/2026")
// - X days / X hours / X weeks relative to now
func ParseDueDate(input string) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}

	input = strings.TrimSpace(input)

	if due, err := parseAbsoluteDate(input); err == nil {
		return due, nil
	}

	if due, err := parseRelativeTime(input); err == nil {
		return due, nil
	}

	return nil, fmt.Errorf("invalid date format. Use: dd/mm/yyyy, X days, X hours, or X weeks")
}

// parseAbsoluteDate parses dd/mm/yyyy, set to end of day
func parseAbsoluteDate(input string) (*time.Time, error) {
	parsed, err := time.ParseInLocation("2/1/2006", input, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date format")
	}
	due := parsed.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return &due, nil
}

var relativeRegex = regexp.MustCompile(`^(\d+)\s*(hour|hours|day|days|week|weeks)$`)

// parseRelativeTime parses "3 days", "24 hours", "2 weeks".
// The space is optional so the quick-add form due:3days works too.
func parseRelativeTime(input string) (*time.Time, error) {
	matches := relativeRegex.FindStringSubmatch(strings.ToLower(input))
	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid relative time format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount < 1 {
		return nil, fmt.Errorf("invalid number")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := 23*time.Hour + 59*time.Minute + 59*time.Second

	switch matches[2] {
	case "hour", "hours":
		due := now.Add(time.Duration(amount) * time.Hour)
		return &due, nil
	case "day", "days":
		due := today.AddDate(0, 0, amount).Add(endOfDay)
		return &due, nil
	case "week", "weeks":
		due := today.AddDate(0, 0, amount*7).Add(endOfDay)
		return &due, nil
	default:
		return nil, fmt.Errorf("unsupported time unit")
	}
}

// FormatDueDate formats a due date for display
func FormatDueDate(due *time.Time) string {
	if due == nil {
		return ""
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, due.Location())
	daysDiff := int(dueDay.Sub(today).Hours() / 24)

	dateStr := due.Format("02/01/2006")

	switch {
	case daysDiff < 0:
		return fmt.Sprintf("OVERDUE (%s)", dateStr)
	case daysDiff == 0:
		return fmt.Sprintf("Due today (%s)", dateStr)
	case daysDiff == 1:
		return fmt.Sprintf("Due tomorrow (%s)", dateStr)
	case daysDiff <= 7:
		return fmt.Sprintf("Due %s (in %d days)", dateStr, daysDiff)
	default:
		return fmt.Sprintf("Due %s", dateStr)
	}
}
