package api

import (
	"github.com/mfreitas/leetrack/internal/services"
)

// Server bundles the services behind the HTTP surface.
type Server struct {
	ProblemService services.ProblemService
	ReviewService  services.ReviewService
	StatsService   services.StatsService
	BackupService  services.BackupService
}
