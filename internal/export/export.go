package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/mfigueiredo/tarefa/internal/models"
	"github.com/mfigueiredo/tarefa/internal/view"
)

// Export renders tasks in the given format: json, csv or pdf.
func Export(tasks []models.Task, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(tasks, "", "  ")
	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "text", "completed", "category", "priority", "due", "created_at"})
		for _, t := range tasks {
			due := ""
			if t.Due != nil {
				due = view.FormatDate(*t.Due)
			}
			_ = w.Write([]string{t.ID, t.Text, fmt.Sprint(t.Completed), t.Category, t.Priority.String(), due, view.FormatDate(t.CreatedAt)})
		}
		w.Flush()
		return []byte(b.String()), nil
	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		tr := pdf.UnicodeTranslatorFromDescriptor("") // accented category and task text
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Task Report")
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		for _, t := range tasks {
			mark := "[ ]"
			if t.Completed {
				mark = "[x]"
			}
			due := "-"
			if t.Due != nil {
				due = view.FormatDate(*t.Due)
			}
			line := fmt.Sprintf("%s %s (%s, %s) due=%s", mark, t.Text, t.Category, t.Priority, due)
			pdf.MultiCell(0, 6, tr(line), "0", "L", false)
		}
		var buf strings.Builder
		if err := pdf.Output(io.Writer(&buf)); err != nil {
			return nil, err
		}
		return []byte(buf.String()), nil
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}
