package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfreitas/leetrack/internal/models"
)

var (
	reviewFailed bool
	reviewRating int
	reviewNotes  string
)

var reviewCmd = &cobra.Command{
	Use:   "review [id]",
	Short: "Record an attempt on a problem",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fmt.Println("database error:", err)
			return
		}
		defer a.close()

		p, err := a.reviews.RecordAttempt(context.Background(), args[0], models.AttemptInput{
			Success:          !reviewFailed,
			DifficultyRating: reviewRating,
			Notes:            reviewNotes,
		})
		if err != nil {
			fmt.Println("error recording attempt:", err)
			return
		}

		fmt.Printf("recorded attempt on %q: interval %d days, ease %.2f, status %s\n",
			p.Name, p.IntervalDays, p.EaseFactor, p.Status)
		fmt.Printf("next review: %s\n", p.NextReviewDate.Format("2006-01-02"))
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().BoolVarP(&reviewFailed, "failed", "f", false, "Mark the attempt as failed")
	reviewCmd.Flags().IntVarP(&reviewRating, "rating", "r", 3, "Perceived difficulty 0 (trivial) to 5 (very hard)")
	reviewCmd.Flags().StringVarP(&reviewNotes, "notes", "n", "", "Notes about the attempt")
}
