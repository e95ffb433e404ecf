package api

import (
	"time"

	"github.com/noctiluca/thermia/internal/db"
	"github.com/noctiluca/thermia/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	location := handler.location
	handler.analyzer = services.NewAnalyzerAt(func() time.Time {
		return time.Now().In(location)
	})

	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.setupService = services.NewSetupService(handler.repositories.Users)
	handler.statsService = services.NewStatsService(
		handler.repositories.Temperatures,
		handler.repositories.CycleStarts,
		handler.analyzer,
	)
	handler.exportService = services.NewExportService(
		handler.repositories.Temperatures,
		handler.repositories.Notes,
		handler.repositories.CycleStarts,
	)
	handler.maintenanceService = services.NewMaintenanceService(
		handler.repositories.Temperatures,
		handler.repositories.Notes,
		handler.repositories.CycleStarts,
		handler.analyzer,
	)
	return handler
}
