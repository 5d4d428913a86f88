package api

import (
	"time"

	"github.com/ascent-tracker/ascent/internal/db"
	"github.com/ascent-tracker/ascent/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	repos        *db.Repositories
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	dayService   *services.DayService
	statsService *services.StatsService
	srsService   *services.SrsService
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	repos := db.NewRepositories(database)
	return &Handler{
		repos:        repos,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
		dayService:   services.NewDayService(repos.DailyLogs),
		statsService: services.NewStatsService(repos.DailyLogs, repos.Library, repos.Transactions),
		srsService:   services.NewSrsService(repos.Notes),
	}
}

func (handler *Handler) today() string {
	return services.Today(handler.location)
}
