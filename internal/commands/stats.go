package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfigueiredo/tarefa/internal/config"
	"github.com/mfigueiredo/tarefa/internal/models"
	"github.com/mfigueiredo/tarefa/internal/store"
	"github.com/mfigueiredo/tarefa/internal/view"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counts",
	Run: withStore(func(cmd *cobra.Command, args []string, cfg *config.Config, st *store.Store) {
		now := time.Now()
		var pending, completed, overdue int
		byCategory := make(map[string]int)

		for _, task := range st.Tasks() {
			if task.Completed {
				completed++
			} else {
				pending++
				if view.IsOverdue(task.Due, now) {
					overdue++
				}
			}
			byCategory[task.Category]++
		}

		fmt.Printf("Pending:   %d\n", pending)
		fmt.Printf("Completed: %d\n", completed)
		fmt.Printf("Overdue:   %d\n", overdue)
		if len(byCategory) > 0 {
			fmt.Println("\nBy category:")
			for _, category := range models.Categories {
				if n := byCategory[category]; n > 0 {
					fmt.Printf("  %-10s %d\n", category, n)
				}
			}
		}
	}),
}
