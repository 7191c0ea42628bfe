package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfigueiredo/tarefa/internal/config"
	"github.com/mfigueiredo/tarefa/internal/models"
	"github.com/mfigueiredo/tarefa/internal/store"
	"github.com/mfigueiredo/tarefa/internal/tui"
	"github.com/mfigueiredo/tarefa/internal/view"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long:    "List tasks filtered by status (all/pending/completed) and category",
	Run: withStore(func(cmd *cobra.Command, args []string, cfg *config.Config, st *store.Store) {
		if status, _ := cmd.Flags().GetString("status"); status != "" {
			f, ok := models.ParseStatusFilter(status)
			if !ok {
				fmt.Printf("Error: invalid status '%s'. Use: all, pending, completed\n", status)
				return
			}
			st.SetStatusFilter(f)
		}
		if category, _ := cmd.Flags().GetString("category"); category != "" && category != models.CategoryAll {
			matched, ok := models.MatchCategory(category)
			if !ok {
				fmt.Printf("Error: unknown category '%s'. Use: %s\n", category, strings.Join(models.Categories, ", "))
				return
			}
			st.SetCategoryFilter(matched)
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		asJSON, _ := cmd.Flags().GetBool("json")

		if asJSON {
			data, err := json.MarshalIndent(st.Visible(), "", "  ")
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Println(string(data))
			return
		}

		if !noUI {
			if err := tui.RunListTUI(st, cfg); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		printTaskTable(st.Visible())
	}),
}

// printTaskTable renders tasks as a plain text table
func printTaskTable(tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found. Use 'tarefa add \"task text\"' to create your first task.")
		return
	}

	now := time.Now()

	fmt.Printf("%-9s %-6s %-40s %-10s %-8s %s\n", "ID", "STATE", "TEXT", "CATEGORY", "PRIORITY", "DUE")
	fmt.Println(strings.Repeat("-", 90))

	for _, task := range tasks {
		state := "todo"
		if task.Completed {
			state = "done"
		}

		text := task.Text
		if len(text) > 38 {
			text = text[:35] + "..."
		}

		due := "-"
		if task.Due != nil {
			due = view.FormatDate(*task.Due)
			if view.IsOverdue(task.Due, now) && !task.Completed {
				due += " (overdue)"
			}
		}

		fmt.Printf("%-9s %-6s %-40s %-10s %-8s %s\n",
			shortID(task.ID),
			state,
			text,
			task.Category,
			task.Priority,
			due)
	}
}

func init() {
	listCmd.Flags().StringP("status", "s", "", "Filter by status: all, pending, completed")
	listCmd.Flags().StringP("category", "c", "", "Filter by category")
	listCmd.Flags().BoolP("no-ui", "", false, "Simple text output")
	listCmd.Flags().BoolP("json", "", false, "JSON output")
}
