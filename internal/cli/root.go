package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfreitas/leetrack/internal/config"
	"github.com/mfreitas/leetrack/internal/logger"
	"github.com/mfreitas/leetrack/internal/repository/sqlite"
	"github.com/mfreitas/leetrack/internal/services"
	"github.com/mfreitas/leetrack/internal/stats"
)

var rootCmd = &cobra.Command{
	Use:   "leetrack",
	Short: "Track coding-interview practice with spaced repetition",
	Long: `Leetrack tracks practice of coding-interview problems and schedules
reviews with a spaced-repetition policy.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// app bundles the service layer for CLI commands.
type app struct {
	problems services.ProblemService
	reviews  services.ReviewService
	stats    services.StatsService
	backups  services.BackupService
	close    func()
}

// openApp loads config, opens the database and wires the services.
// CLI output should stay clean, so logging is reduced to warnings.
func openApp() (*app, error) {
	cfg := config.Load()
	logger.SetDefault(logger.New(logger.WithLevel(logger.WARN), logger.WithColors(false)))

	database, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	repo := sqlite.NewProblemRepository(database)
	period := stats.Period{StartMonth: time.Month(cfg.PeriodStartMonth), StartDay: cfg.PeriodStartDay}

	return &app{
		problems: services.NewProblemService(repo),
		reviews:  services.NewReviewService(repo),
		stats:    services.NewStatsService(repo, period),
		backups:  services.NewBackupService(repo),
		close:    func() { database.Close() },
	}, nil
}
