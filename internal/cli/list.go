package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mfreitas/leetrack/internal/models"
)

var (
	listStatus   string
	listCategory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked problems",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fmt.Println("database error:", err)
			return
		}
		defer a.close()

		problems, err := a.problems.ListProblems(context.Background(), models.ProblemFilter{
			Status:   models.Status(listStatus),
			Category: listCategory,
		})
		if err != nil {
			fmt.Println("error listing problems:", err)
			return
		}

		if len(problems) == 0 {
			fmt.Println("no problems tracked yet")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tProblem\tDifficulty\tStatus\tNext Review\tAttempts")
		for _, p := range problems {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
				p.ID, p.Name, p.Difficulty, p.Status, p.NextReviewDate.Format("2006-01-02"), len(p.Attempts))
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Filter by status (new, learning, reviewing, mastered)")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category")
}
