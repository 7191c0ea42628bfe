package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfigueiredo/tarefa/internal/config"
	"github.com/mfigueiredo/tarefa/internal/export"
	"github.com/mfigueiredo/tarefa/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks as json, csv or pdf",
	Run: withStore(func(cmd *cobra.Command, args []string, cfg *config.Config, st *store.Store) {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		data, err := export.Export(st.Tasks(), format)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if output == "" {
			os.Stdout.Write(data)
			return
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			fmt.Printf("Error writing %s: %v\n", output, err)
			return
		}
		fmt.Printf("Exported %d tasks to %s\n", len(st.Tasks()), output)
	}),
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "Export format: json, csv, pdf")
	exportCmd.Flags().StringP("output", "o", "", "Output file (stdout when omitted)")
}
