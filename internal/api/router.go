package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/serenispa/reservation-system/docs"
	"github.com/serenispa/reservation-system/internal/api/handler"
	"github.com/serenispa/reservation-system/internal/api/middleware"
	"github.com/serenispa/reservation-system/internal/core/domain"
	"github.com/serenispa/reservation-system/internal/core/service"
	"github.com/serenispa/reservation-system/internal/infrastructure/db/mysql"
	"github.com/serenispa/reservation-system/internal/infrastructure/db/redis"
	"github.com/serenispa/reservation-system/internal/report"
	"github.com/serenispa/reservation-system/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *goredis.Client, jwtSecret string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("spa"))

	// --- Repositories ---
	userRepo := mysql.NewUserRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	currencyRepo := mysql.NewCurrencyRepository(db)
	countryRepo := mysql.NewCountryRepository(db)
	cityRepo := mysql.NewCityRepository(db)
	languageRepo := mysql.NewLanguageRepository(db)
	taxRepo := mysql.NewTaxRepository(db)
	openingHourRepo := mysql.NewOpeningHourRepository(db)
	settingRepo := mysql.NewSettingRepository(db)
	roomRepo := mysql.NewRoomRepository(db)
	serviceRepo := mysql.NewServiceRepository(db)
	guestRepo := mysql.NewGuestRepository(db)
	therapistRepo := mysql.NewTherapistRepository(db)
	bookingRepo := mysql.NewBookingRepository(db)
	dashboardRepo := mysql.NewDashboardRepository(db)

	// --- Services ---
	log := logger.Get()
	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	masterService := service.NewMasterDataService(service.MasterDataDeps{
		Categories: categoryRepo,
		Currencies: currencyRepo,
		Countries:  countryRepo,
		Cities:     cityRepo,
		Languages:  languageRepo,
		Taxes:      taxRepo,
		Hours:      openingHourRepo,
		Settings:   settingRepo,
		Services:   serviceRepo,
		Guests:     guestRepo,
	}, log)
	catalogService := service.NewCatalogService(service.CatalogDeps{
		Rooms:      roomRepo,
		Services:   serviceRepo,
		Categories: categoryRepo,
		Taxes:      taxRepo,
		Currencies: currencyRepo,
		Bookings:   bookingRepo,
	}, log)
	guestService := service.NewGuestService(guestRepo, bookingRepo, log)
	therapistService := service.NewTherapistService(therapistRepo, bookingRepo, log)
	bookingService := service.NewBookingService(bookingRepo, guestRepo, roomRepo, serviceRepo, therapistRepo, log)
	dashboardService := service.NewDashboardService(dashboardRepo, redis.NewSummaryCache(rdb), log)
	scheduleService := report.NewScheduleService(bookingRepo, guestRepo, therapistRepo, roomRepo, serviceRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	masterHandler := handler.NewMasterDataHandler(masterService)
	settingsHandler := handler.NewSettingsHandler(masterService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	guestHandler := handler.NewGuestHandler(guestService)
	therapistHandler := handler.NewTherapistHandler(therapistService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	reportHandler := handler.NewReportHandler(scheduleService)

	auth := middleware.Auth(jwtSecret)
	staff := middleware.RBAC(domain.RoleAdmin, domain.RoleManager, domain.RoleReceptionist)
	managers := middleware.RBAC(domain.RoleAdmin, domain.RoleManager)
	admins := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register, auth, admins)
	e.GET("/auth/me", authHandler.Me, auth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	v1 := e.Group("/v1", auth, staff)

	// User management is admin only.
	users := e.Group("/v1/users", auth, admins)
	users.GET("", authHandler.ListUsers)
	users.GET("/:id", authHandler.GetUser)
	users.PUT("/:id", authHandler.UpdateUser)
	users.DELETE("/:id", authHandler.DeactivateUser)

	// Reads are open to all staff; mutations need admin or manager.
	v1.GET("/categories", masterHandler.ListCategories)
	v1.GET("/categories/:id", masterHandler.GetCategory)
	v1.POST("/categories", masterHandler.CreateCategory, managers)
	v1.PUT("/categories/:id", masterHandler.UpdateCategory, managers)
	v1.DELETE("/categories/:id", masterHandler.DeleteCategory, managers)

	v1.GET("/currencies", masterHandler.ListCurrencies)
	v1.GET("/currencies/:id", masterHandler.GetCurrency)
	v1.POST("/currencies", masterHandler.CreateCurrency, managers)
	v1.PUT("/currencies/:id", masterHandler.UpdateCurrency, managers)
	v1.DELETE("/currencies/:id", masterHandler.DeleteCurrency, managers)

	v1.GET("/countries", masterHandler.ListCountries)
	v1.GET("/countries/:id", masterHandler.GetCountry)
	v1.GET("/countries/:id/cities", masterHandler.ListCountryCities)
	v1.POST("/countries", masterHandler.CreateCountry, managers)
	v1.PUT("/countries/:id", masterHandler.UpdateCountry, managers)
	v1.DELETE("/countries/:id", masterHandler.DeleteCountry, managers)

	v1.GET("/cities", masterHandler.ListCities)
	v1.GET("/cities/:id", masterHandler.GetCity)
	v1.POST("/cities", masterHandler.CreateCity, managers)
	v1.PUT("/cities/:id", masterHandler.UpdateCity, managers)
	v1.DELETE("/cities/:id", masterHandler.DeleteCity, managers)

	v1.GET("/languages", masterHandler.ListLanguages)
	v1.GET("/languages/:id", masterHandler.GetLanguage)
	v1.POST("/languages", masterHandler.CreateLanguage, managers)
	v1.PUT("/languages/:id", masterHandler.UpdateLanguage, managers)
	v1.DELETE("/languages/:id", masterHandler.DeleteLanguage, managers)

	v1.GET("/taxes", masterHandler.ListTaxes)
	v1.GET("/taxes/:id", masterHandler.GetTax)
	v1.POST("/taxes", masterHandler.CreateTax, managers)
	v1.PUT("/taxes/:id", masterHandler.UpdateTax, managers)
	v1.DELETE("/taxes/:id", masterHandler.DeleteTax, managers)

	v1.GET("/opening-hours", settingsHandler.ListOpeningHours)
	v1.GET("/opening-hours/:weekday", settingsHandler.GetOpeningHour)
	v1.PUT("/opening-hours", settingsHandler.UpsertOpeningHour, managers)

	v1.GET("/settings", settingsHandler.ListSettings)
	v1.GET("/settings/:key", settingsHandler.GetSetting)
	v1.PUT("/settings", settingsHandler.UpsertSetting, managers)
	v1.DELETE("/settings/:key", settingsHandler.DeleteSetting, managers)

	v1.GET("/rooms", catalogHandler.ListRooms)
	v1.GET("/rooms/:id", catalogHandler.GetRoom)
	v1.POST("/rooms", catalogHandler.CreateRoom, managers)
	v1.PUT("/rooms/:id", catalogHandler.UpdateRoom, managers)
	v1.DELETE("/rooms/:id", catalogHandler.DeleteRoom, managers)

	v1.GET("/services", catalogHandler.ListServices)
	v1.GET("/services/:id", catalogHandler.GetService)
	v1.POST("/services", catalogHandler.CreateService, managers)
	v1.PUT("/services/:id", catalogHandler.UpdateService, managers)
	v1.DELETE("/services/:id", catalogHandler.DeleteService, managers)

	v1.GET("/guests", guestHandler.List)
	v1.GET("/guests/:id", guestHandler.Get)
	v1.POST("/guests", guestHandler.Create)
	v1.PUT("/guests/:id", guestHandler.Update)
	v1.DELETE("/guests/:id", guestHandler.Delete, managers)

	v1.GET("/therapists", therapistHandler.List)
	v1.GET("/therapists/:id", therapistHandler.Get)
	v1.POST("/therapists", therapistHandler.Create, managers)
	v1.PUT("/therapists/:id", therapistHandler.Update, managers)
	v1.DELETE("/therapists/:id", therapistHandler.Delete, managers)

	v1.GET("/bookings", bookingHandler.List)
	v1.GET("/bookings/:reference", bookingHandler.Get)
	v1.POST("/bookings", bookingHandler.Create)
	v1.PUT("/bookings/:reference", bookingHandler.Update)
	v1.PATCH("/bookings/:reference/status", bookingHandler.ChangeStatus)

	v1.GET("/dashboard", dashboardHandler.Summary)
	v1.GET("/reports/schedule", reportHandler.Schedule)

	return e
}
