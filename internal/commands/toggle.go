package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfigueiredo/tarefa/internal/config"
	"github.com/mfigueiredo/tarefa/internal/store"
)

var toggleCmd = &cobra.Command{
	Use:     "toggle [task-id]",
	Aliases: []string{"done"},
	Short:   "Toggle a task's completion state",
	Args:    cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, cfg *config.Config, st *store.Store) {
		target, err := resolveTask(st, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		task, err := st.ToggleCompleted(target.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if task == nil {
			return
		}

		if task.Completed {
			fmt.Printf("✅ Completed: %s\n", task.Text)
		} else {
			fmt.Printf("↩️  Back to pending: %s\n", task.Text)
		}
	}),
}
