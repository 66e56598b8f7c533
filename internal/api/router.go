package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gymtrack/coach-booking-backend/internal/announcement"
	annHttp "github.com/gymtrack/coach-booking-backend/internal/announcement/http"
	"github.com/gymtrack/coach-booking-backend/internal/auth"
	"github.com/gymtrack/coach-booking-backend/internal/availability"
	availHttp "github.com/gymtrack/coach-booking-backend/internal/availability/http"
	"github.com/gymtrack/coach-booking-backend/internal/booking"
	bookingHttp "github.com/gymtrack/coach-booking-backend/internal/booking/http"
	"github.com/gymtrack/coach-booking-backend/internal/matching"
	matchHttp "github.com/gymtrack/coach-booking-backend/internal/matching/http"
	"github.com/gymtrack/coach-booking-backend/internal/pairing"
	pairingHttp "github.com/gymtrack/coach-booking-backend/internal/pairing/http"
	"github.com/gymtrack/coach-booking-backend/internal/photo"
	photoHttp "github.com/gymtrack/coach-booking-backend/internal/photo/http"
	"github.com/gymtrack/coach-booking-backend/internal/preference"
	prefHttp "github.com/gymtrack/coach-booking-backend/internal/preference/http"
	"github.com/gymtrack/coach-booking-backend/internal/user"
	userHttp "github.com/gymtrack/coach-booking-backend/internal/user/http"
)

// Config carries the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService    user.Service
	PairingService pairing.Service
	AvailService   availability.Service
	PrefService    preference.Service
	BookingService booking.Service
	MatchService   matching.Service
	PhotoService   photo.Service
	AnnService     announcement.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Auth) and registers routes for every module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: request logging to the console.
	// - Recovery: captures panics and returns a 500 instead of crashing.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: validates the request's JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// sysAdminMiddleware: further checks System Admin privileges.
	sysAdminMiddleware := RequireSystemAdmin(cfg.UserService)

	// Initialize HTTP handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	pairingHandler := pairingHttp.NewHandler(cfg.PairingService, cfg.UserService)
	availHandler := availHttp.NewHandler(cfg.AvailService, cfg.PairingService)
	prefHandler := prefHttp.NewHandler(cfg.PrefService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.UserService)
	matchHandler := matchHttp.NewHandler(cfg.MatchService)
	photoHandler := photoHttp.NewHandler(cfg.PhotoService, cfg.PairingService, cfg.UserService)
	annHandler := annHttp.NewHandler(cfg.AnnService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, sysAdminMiddleware)
		pairingHttp.RegisterRoutes(v1, pairingHandler, authMiddleware)
		availHttp.RegisterRoutes(v1, availHandler, authMiddleware)
		prefHttp.RegisterRoutes(v1, prefHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		matchHttp.RegisterRoutes(v1, matchHandler, authMiddleware)
		photoHttp.RegisterRoutes(v1, photoHandler, authMiddleware)
		annHttp.RegisterRoutes(v1, annHandler, authMiddleware, sysAdminMiddleware)
	}

	return r
}
