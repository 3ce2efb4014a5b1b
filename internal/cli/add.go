package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfreitas/leetrack/internal/models"
)

var (
	addURL      string
	addCategory string
)

var addCmd = &cobra.Command{
	Use:   "add [name] [difficulty]",
	Short: "Add a new problem to track",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		difficulty := models.Difficulty(args[1])
		if !difficulty.Valid() {
			fmt.Println("difficulty must be easy, medium or hard")
			return
		}

		a, err := openApp()
		if err != nil {
			fmt.Println("database error:", err)
			return
		}
		defer a.close()

		p, err := a.problems.CreateProblem(context.Background(), args[0], addURL, difficulty, addCategory)
		if err != nil {
			fmt.Println("error adding problem:", err)
			return
		}

		fmt.Printf("added %q (next review: %s)\n", p.Name, p.NextReviewDate.Format("2006-01-02"))
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addURL, "url", "u", "", "URL to the problem")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Problem category (e.g. arrays, dp)")
}
