package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show problems due for review today",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fmt.Println("database error:", err)
			return
		}
		defer a.close()

		due, err := a.reviews.DueToday(context.Background())
		if err != nil {
			fmt.Println("error selecting due problems:", err)
			return
		}

		if len(due) == 0 {
			fmt.Println("nothing due today")
			return
		}

		fmt.Printf("%d problems due today:\n\n", len(due))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tProblem\tDifficulty\tStatus\tAttempts")
		for _, p := range due {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Difficulty, p.Status, len(p.Attempts))
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(dueCmd)
}
