package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfreitas/leetrack/internal/models"
	"github.com/mfreitas/leetrack/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fmt.Println("database error:", err)
			return
		}
		defer a.close()

		s, err := a.stats.GetStats(context.Background())
		if err != nil {
			fmt.Println("error computing stats:", err)
			return
		}

		fmt.Println("Statistics")
		fmt.Println("----------")
		fmt.Printf("Total problems:   %d\n", s.TotalProblems)
		fmt.Printf("Due today:        %d\n", s.ProblemsDueToday)
		fmt.Printf("Mastered:         %d\n", s.MasteredProblems)
		fmt.Printf("Average ease:     %.2f\n", s.AverageEaseFactor)
		fmt.Printf("Easy/Medium/Hard: %d/%d/%d\n",
			s.ProblemsByDifficulty[models.DifficultyEasy],
			s.ProblemsByDifficulty[models.DifficultyMedium],
			s.ProblemsByDifficulty[models.DifficultyHard])

		if w, ok := s.ActivityHeatmaps[stats.WindowRolling]; ok {
			total := 0
			for _, n := range w.Days {
				total += n
			}
			fmt.Printf("Attempts (365d):  %d across %d active days\n", total, len(w.Days))
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
