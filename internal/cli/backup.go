package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the whole collection to a JSON backup",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fmt.Println("database error:", err)
			return
		}
		defer a.close()

		backup, err := a.backups.Export(context.Background())
		if err != nil {
			fmt.Println("error exporting:", err)
			return
		}

		data, err := json.MarshalIndent(backup, "", "  ")
		if err != nil {
			fmt.Println("error encoding backup:", err)
			return
		}
		if err := os.WriteFile(args[0], data, 0644); err != nil {
			fmt.Println("error writing file:", err)
			return
		}
		fmt.Printf("exported %d problems to %s\n", len(backup.Problems), args[0])
	},
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the collection from a JSON backup",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Println("error reading file:", err)
			return
		}

		a, err := openApp()
		if err != nil {
			fmt.Println("database error:", err)
			return
		}
		defer a.close()

		count, err := a.backups.Import(context.Background(), data)
		if err != nil {
			fmt.Println("error importing:", err)
			return
		}
		fmt.Printf("imported %d problems from %s\n", count, args[0])
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
