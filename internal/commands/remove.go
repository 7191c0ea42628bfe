package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mfigueiredo/tarefa/internal/config"
	"github.com/mfigueiredo/tarefa/internal/store"
)

var removeCmd = &cobra.Command{
	Use:     "rm [task-id]",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a task (asks for confirmation)",
	Args:    cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, cfg *config.Config, st *store.Store) {
		target, err := resolveTask(st, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		pending := st.RequestRemove(target.ID)
		if pending == nil {
			return
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(fmt.Sprintf("Delete \"%s\"? [y/N]: ", pending.Text)) {
			st.CancelRemove()
			fmt.Println("Cancelled.")
			return
		}

		removed, err := st.ConfirmRemove()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if removed != nil {
			fmt.Printf("🗑  Deleted: %s\n", removed.Text)
		}
	}),
}

// confirm prompts on stdin and returns true only for an explicit yes
func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	removeCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
