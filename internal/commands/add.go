package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mfigueiredo/tarefa/internal/config"
	"github.com/mfigueiredo/tarefa/internal/models"
	"github.com/mfigueiredo/tarefa/internal/parser"
	"github.com/mfigueiredo/tarefa/internal/store"
	"github.com/mfigueiredo/tarefa/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [task text]",
	Short: "Add a new task",
	Long: `Add a new task.

Modes:
  Interactive: tarefa add -i (or just 'tarefa add' with no arguments)
  Quick: tarefa add "Task text" (with optional flags)
  Smart parsing: tarefa add "Pagar contas @Pessoal +high due:3days"

Smart parsing syntax:
  @categoria  - Category (Pessoal, Trabalho, Estudos, Compras, Outros)
  +priority   - Priority (low/medium/high or 1/2/3)
  due:X       - Due date (dd/mm/yyyy, Xdays, Xhours, Xweeks)`,
	Args: cobra.ArbitraryArgs,
	Run: withStore(func(cmd *cobra.Command, args []string, cfg *config.Config, st *store.Store) {
		interactive, _ := cmd.Flags().GetBool("interactive")

		// If no args and not explicitly interactive, go interactive
		if len(args) == 0 && !interactive {
			interactive = true
		}

		if interactive {
			runInteractiveAdd(cmd, args, cfg, st)
			return
		}

		text := strings.Join(args, " ")
		parsed := parser.ParseTitle(text)

		if len(parsed.Errors) > 0 {
			// Parsing problems: fall back to interactive with pre-filled data
			fmt.Printf("Found issues with parsing: %s\n", strings.Join(parsed.Errors, ", "))
			fmt.Println("Opening interactive mode for confirmation...")
			runInteractiveAddWithParsed(cmd, parsed, cfg, st)
			return
		}

		runDirectAdd(cmd, parsed, cfg, st)
	}),
}

// runInteractiveAdd starts the add wizard TUI
func runInteractiveAdd(cmd *cobra.Command, args []string, cfg *config.Config, st *store.Store) {
	prefilled := make(map[string]string)

	if len(args) > 0 {
		prefilled["text"] = strings.Join(args, " ")
	}
	applyFlagPrefills(cmd, prefilled)

	if err := tui.RunAddTUI(st, cfg, prefilled); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// runInteractiveAddWithParsed starts the add wizard with parsed data
func runInteractiveAddWithParsed(cmd *cobra.Command, parsed parser.ParsedTask, cfg *config.Config, st *store.Store) {
	prefilled := make(map[string]string)
	prefilled["text"] = parsed.Text

	if parsed.Category != "" {
		prefilled["category"] = parsed.Category
	}
	if parsed.Priority.Valid() {
		prefilled["priority"] = parsed.Priority.String()
	}
	if parsed.Due != nil {
		prefilled["due"] = parsed.Due.Format("02/01/2006")
	}
	applyFlagPrefills(cmd, prefilled)

	if err := tui.RunAddTUI(st, cfg, prefilled); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// applyFlagPrefills overrides prefills with explicit flag values
func applyFlagPrefills(cmd *cobra.Command, prefilled map[string]string) {
	if category, _ := cmd.Flags().GetString("category"); category != "" {
		prefilled["category"] = category
	}
	if priority, _ := cmd.Flags().GetString("priority"); priority != "" {
		prefilled["priority"] = priority
	}
	if due, _ := cmd.Flags().GetString("due"); due != "" {
		prefilled["due"] = due
	}
}

// runDirectAdd creates the task without the TUI
func runDirectAdd(cmd *cobra.Command, parsed parser.ParsedTask, cfg *config.Config, st *store.Store) {
	text := parsed.Text
	category := parsed.Category
	priority := parsed.Priority
	due := parsed.Due

	// Explicit flags take precedence over parsed tokens
	if flagCategory, _ := cmd.Flags().GetString("category"); flagCategory != "" {
		matched, ok := models.MatchCategory(flagCategory)
		if !ok {
			fmt.Printf("Error: unknown category '%s'. Use: %s\n", flagCategory, strings.Join(models.Categories, ", "))
			return
		}
		category = matched
	}
	if flagPriority, _ := cmd.Flags().GetString("priority"); flagPriority != "" {
		p, ok := models.ParsePriority(flagPriority)
		if !ok {
			fmt.Printf("Error: invalid priority '%s'. Use: low, medium, high, 1, 2, or 3\n", flagPriority)
			return
		}
		priority = p
	}
	if flagDue, _ := cmd.Flags().GetString("due"); flagDue != "" {
		d, err := parser.ParseDueDate(flagDue)
		if err != nil {
			fmt.Printf("Error parsing due date: %v\n", err)
			return
		}
		due = d
	}

	// Config defaults fill whatever is still unset
	if category == "" {
		category = cfg.DefaultCategory
	}
	if !priority.Valid() {
		priority, _ = models.ParsePriority(cfg.DefaultPriority)
	}

	task, err := st.Add(text, category, priority, due)
	if err != nil {
		fmt.Printf("Error creating task: %v\n", err)
		return
	}
	if task == nil {
		// Blank text is silently ignored
		return
	}

	fmt.Printf("Created task %s: %s\n", shortID(task.ID), task.Text)
	fmt.Printf("  Category: %s\n", task.Category)
	fmt.Printf("  Priority: %s\n", task.Priority)
	if task.Due != nil {
		fmt.Printf("  Due: %s\n", parser.FormatDueDate(task.Due))
	}
}

func init() {
	addCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	addCmd.Flags().StringP("category", "c", "", "Category: Pessoal, Trabalho, Estudos, Compras, Outros")
	addCmd.Flags().StringP("priority", "p", "", "Priority: low, medium, high, or 1-3")
	addCmd.Flags().StringP("due", "", "", "Due date: dd/mm/yyyy, X days, X hours, X weeks")
}
