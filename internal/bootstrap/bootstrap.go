package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/collegeportal/internal/app/controllers"
	appMigrations "github.com/yigit/collegeportal/internal/app/migrations"
	appRepos "github.com/yigit/collegeportal/internal/app/repositories"
	appRoutes "github.com/yigit/collegeportal/internal/app/routes"
	appServices "github.com/yigit/collegeportal/internal/app/services"
	"github.com/yigit/collegeportal/internal/config"
	"github.com/yigit/collegeportal/internal/db"
	appMiddleware "github.com/yigit/collegeportal/internal/middleware"
	"github.com/yigit/collegeportal/internal/pkg/helpers"
	"github.com/yigit/collegeportal/internal/pkg/logger"
	"github.com/yigit/collegeportal/internal/pkg/session"
	"github.com/yigit/collegeportal/internal/seed"
	"github.com/yigit/collegeportal/migrations"
	"github.com/yigit/collegeportal/web"
)

// Stores are the persistence dependencies of the services. The server uses
// the PostgreSQL repositories; tests pass in-memory stores.
type Stores struct {
	Users       appServices.UserStore
	Students    appServices.StudentStore
	Departments appServices.DepartmentStore
	Marks       appServices.MarksStore
	Placements  appServices.PlacementStore
	Faculty     appServices.FacultyStore
	Staff       appServices.StaffStore
}

// PostgresStores adapts the repository container to Stores
func PostgresStores(repos *appRepos.Repositories) Stores {
	return Stores{
		Users:       repos.UserRepository,
		Students:    repos.StudentRepository,
		Departments: repos.DepartmentRepository,
		Marks:       repos.MarksRepository,
		Placements:  repos.PlacementRepository,
		Faculty:     repos.FacultyRepository,
		Staff:       repos.StaffRepository,
	}
}

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService     appServices.AuthService
	StudentService  appServices.StudentService
	AcademicService appServices.AcademicService
	FacultyService  appServices.FacultyService
	StaffService    appServices.StaffService
	ExportService   appServices.ExportService
	Controllers     appRoutes.Controllers
	AuthMiddleware  *appMiddleware.AuthMiddleware
	SessionStore    sessions.Store
	Logger          zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects, applies migrations and creates default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool).Migrate(ctx, migrations.FS); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	repos := appRepos.NewRepositories(database.Pool)
	seedOpts := seed.Options{
		AdminUsername: cfg.Seed.AdminUsername,
		AdminPassword: cfg.Seed.AdminPassword,
	}
	if err := seed.CreateDefaultData(ctx, repos.UserRepository, repos.DepartmentRepository, seedOpts, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes services, controllers and the session store.
func BuildDependencies(cfg *config.Config, stores Stores, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	store, err := session.NewStore(session.Options{
		Name:   cfg.Session.Name,
		Secret: cfg.Session.Secret,
		Store:  cfg.Session.Store,
		MaxAge: cfg.Session.MaxAge,
		Secure: cfg.Session.Secure,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize session store")
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}
	deps.SessionStore = store

	// Initialize services
	deps.AuthService = appServices.NewAuthService(stores.Users)
	deps.StudentService = appServices.NewStudentService(stores.Users, stores.Students, stores.Departments, stores.Marks, stores.Placements)
	deps.AcademicService = appServices.NewAcademicService(stores.Marks, stores.Placements)
	deps.FacultyService = appServices.NewFacultyService(stores.Faculty)
	deps.StaffService = appServices.NewStaffService(stores.Staff)
	deps.ExportService = appServices.NewExportService(stores.Students, stores.Staff, stores.Faculty, cfg.Export.DateLayout)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware()

	deps.Controllers = appRoutes.Controllers{
		Auth:     appControllers.NewAuthController(deps.AuthService),
		Student:  appControllers.NewStudentController(deps.StudentService),
		Admin:    appControllers.NewAdminController(deps.StudentService),
		Academic: appControllers.NewAcademicController(deps.AcademicService),
		Staff:    appControllers.NewStaffController(deps.StaffService),
		Faculty:  appControllers.NewFacultyController(deps.FacultyService),
		Export:   appControllers.NewExportController(deps.ExportService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, database Pinger, lgr zerolog.Logger) (*gin.Engine, error) {
	switch strings.ToLower(cfg.Server.Mode) {
	case gin.ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("mode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(),
		appMiddleware.RequestLogger(),
		appMiddleware.RequestTimeout(helpers.ParseDuration(cfg.Server.RequestTimeout, 15*time.Second)),
	)

	var proxies []string
	for _, p := range strings.Split(cfg.Server.TrustedProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	if err := router.SetTrustedProxies(proxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	tmpl, err := web.Templates(cfg.Export.DateLayout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", web.Static())

	router.GET("/healthz", func(c *gin.Context) {
		if err := database.Ping(c.Request.Context()); err != nil {
			logger.Ctx(c.Request.Context()).Error().Err(err).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.Use(session.Middleware(cfg.Session.Name, deps.SessionStore))
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router, nil
}
