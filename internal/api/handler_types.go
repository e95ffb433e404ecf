package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/noctiluca/thermia/internal/db"
	"github.com/noctiluca/thermia/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories       *db.Repositories
	authService        *services.AuthService
	setupService       *services.SetupService
	statsService       *services.StatsService
	exportService      *services.ExportService
	maintenanceService *services.MaintenanceService
	analyzer           *services.Analyzer
}

const (
	authCookieName = "thermia_auth"
	contextUserKey = "thermia_user"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}
