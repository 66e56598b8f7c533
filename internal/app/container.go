package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/gymtrack/coach-booking-backend/internal/announcement"
	"github.com/gymtrack/coach-booking-backend/internal/api"
	"github.com/gymtrack/coach-booking-backend/internal/auth"
	"github.com/gymtrack/coach-booking-backend/internal/availability"
	"github.com/gymtrack/coach-booking-backend/internal/booking"
	"github.com/gymtrack/coach-booking-backend/internal/matching"
	"github.com/gymtrack/coach-booking-backend/internal/pairing"
	"github.com/gymtrack/coach-booking-backend/internal/photo"
	"github.com/gymtrack/coach-booking-backend/internal/pkg/storage"
	"github.com/gymtrack/coach-booking-backend/internal/preference"
	"github.com/gymtrack/coach-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	StoragePath  string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init local storage: %w", err)
	}

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Pairing Module
	pairingRepo := pairing.NewPgxRepository(cfg.DBPool)
	pairingService := pairing.NewService(pairingRepo, userService)

	// Availability Module
	availRepo := availability.NewPgxRepository(cfg.DBPool)
	availService := availability.NewService(availRepo)

	// Preference Module
	prefRepo := preference.NewPgxRepository(cfg.DBPool)
	prefService := preference.NewService(prefRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, pairingService)

	// Matching Module
	matchService := matching.NewService(availService, prefService, bookingService, pairingService)

	// Photo Module
	photoRepo := photo.NewPgxRepository(cfg.DBPool)
	photoService := photo.NewService(photoRepo, store)

	// Announcement Module
	annRepo := announcement.NewPgxRepository(cfg.DBPool)
	annService := announcement.NewService(annRepo)

	// API Router Config
	routerParams := api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserService:    userService,
		PairingService: pairingService,
		AvailService:   availService,
		PrefService:    prefService,
		BookingService: bookingService,
		MatchService:   matchService,
		PhotoService:   photoService,
		AnnService:     annService,
		JWTManager:     jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
