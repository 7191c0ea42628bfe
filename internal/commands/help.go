package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for tarefa",
	Long:  `Display detailed help for all tarefa commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
████████╗ █████╗ ██████╗ ███████╗███████╗ █████╗
╚══██╔══╝██╔══██╗██╔══██╗██╔════╝██╔════╝██╔══██╗
   ██║   ███████║██████╔╝█████╗  █████╗  ███████║
   ██║   ██╔══██║██╔══██╗██╔══╝  ██╔══╝  ██╔══██║
   ██║   ██║  ██║██║  ██║███████╗██║     ██║  ██║
   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝  ╚═╝

tarefa - Personal task list for the terminal

COMMANDS:

  add <text>              Create a new task with smart parsing
    -c, --category        Category: Pessoal|Trabalho|Estudos|Compras|Outros
    -p, --priority        Priority: low|medium|high
    --due                 Due date (dd/mm/yyyy, X days, X hours, X weeks)
    -i, --interactive     Force the interactive wizard

    Smart syntax:
      @categoria    Set category
      +priority     Set priority (low/medium/high)
      due:3days     Set due date (3 days from now)

    Example:
      tarefa add "Entregar relatório @Trabalho +high due:2days"

  ls                      List tasks with interactive UI
    -s, --status          Filter by status: all|pending|completed
    -c, --category        Filter by category
    --no-ui               Simple text output
    --json                JSON output

    Quick actions:
      ↑/↓           Navigate tasks
      space         Toggle completion
      d             Delete selected task (asks to confirm)
      f             Cycle status filter
      c             Cycle category filter
      t             Toggle light/dark theme
      a             Add a task
      esc/q         Quit

  toggle <id>             Toggle a task's completion state
  rm <id>                 Delete a task (y/N confirmation, -y to skip)
  theme                   Toggle light/dark theme
  stats                   Show pending/completed/overdue counts
  export                  Export tasks (-f json|csv|pdf, -o file)
  help                    Show this help
  version                 Show version information

Task ids may be abbreviated to any unique prefix.

`)
}
