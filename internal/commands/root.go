package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mfigueiredo/tarefa/internal/config"
	"github.com/mfigueiredo/tarefa/internal/db"
	"github.com/mfigueiredo/tarefa/internal/models"
	"github.com/mfigueiredo/tarefa/internal/store"
	"github.com/mfigueiredo/tarefa/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tarefa",
	Short: "A personal task list for the terminal",
	Long: `tarefa is a command-line personal task list.
Create, categorize, prioritize, filter and complete tasks, all stored locally.
Running tarefa without a subcommand opens the interactive task list.`,
	Run: withStore(func(cmd *cobra.Command, args []string, cfg *config.Config, st *store.Store) {
		if err := tui.RunListTUI(st, cfg); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

// withStore wraps a command function, loading config and opening the
// slot storage before running it
func withStore(fn func(*cobra.Command, []string, *config.Config, *store.Store)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		path := cfg.StoragePath
		if path == "" {
			path, err = db.DefaultPath()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		}

		d, err := db.Open(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer d.Close()

		fn(cmd, args, cfg, store.New(d))
	}
}

// resolveTask finds a task by full id or unique id prefix
func resolveTask(st *store.Store, ref string) (*models.Task, error) {
	var match *models.Task
	tasks := st.Tasks()
	for i := range tasks {
		if tasks[i].ID == ref {
			return &tasks[i], nil
		}
		if strings.HasPrefix(tasks[i].ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("id '%s' is ambiguous", ref)
			}
			match = &tasks[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no task with id '%s'", ref)
	}
	return match, nil
}

// shortID returns the display form of a task id
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tarefa %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
