package api

import (
	"time"

	"github.com/junipershade/petal/internal/activity"
	"github.com/junipershade/petal/internal/db"
	"github.com/junipershade/petal/internal/services"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	log          *logrus.Logger

	repositories *db.Repositories
	authService  *services.AuthService
	cycles       *services.CycleService
	wellness     *services.WellnessService
	content      *services.ContentPicker
	exporter     *services.ExportService
	activity     activity.Logger
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, log *logrus.Logger, activityLog activity.Logger, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	if activityLog == nil {
		activityLog = activity.NopLogger{}
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
		log:          log,
		repositories: repositories,
		authService:  services.NewAuthService(repositories.Users),
		cycles:       services.NewCycleService(repositories.Cycles, location),
		wellness:     services.NewWellnessService(repositories.Wellness, location),
		content:      services.NewContentPicker(),
		exporter:     services.NewExportService(),
		activity:     activityLog,
	}
}

// today returns the current calendar date in the handler's location.
func (handler *Handler) today() time.Time {
	return services.DateAtLocation(time.Now(), handler.location)
}
