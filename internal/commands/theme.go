package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfigueiredo/tarefa/internal/config"
	"github.com/mfigueiredo/tarefa/internal/store"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Toggle between light and dark theme",
	Run: withStore(func(cmd *cobra.Command, args []string, cfg *config.Config, st *store.Store) {
		dark, err := st.ToggleTheme()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if dark {
			fmt.Println("🌙 Dark theme enabled")
		} else {
			fmt.Println("☀️  Light theme enabled")
		}
	}),
}
