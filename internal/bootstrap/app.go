package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/account"
	googleauth "jobportal-backend/internal/auth"
	"jobportal-backend/internal/jobs"
	"jobportal-backend/internal/pipeline"
	"jobportal-backend/internal/resumes"
	"jobportal-backend/internal/shared/cache"
	"jobportal-backend/internal/shared/config"
	"jobportal-backend/internal/shared/server"
	"jobportal-backend/internal/shared/storage/db"
	"jobportal-backend/internal/shared/storage/object"
	localstore "jobportal-backend/internal/shared/storage/object/local"
	s3store "jobportal-backend/internal/shared/storage/object/s3"
	"jobportal-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	ResumesRepo resumes.Repo
	JobsRepo    jobs.Repo
	UsersRepo   users.Repo

	ResumesService *resumes.Service
	JobsService    *jobs.Service
	UsersService   *users.Service

	ResumesHandler *resumes.Handler
	JobsHandler    *jobs.Handler
	UsersHandler   *users.Handler
	AccountHandler *account.Handler
	GoogleAuth     *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		ResumesHandler: app.ResumesHandler,
		JobsHandler:    app.JobsHandler,
		UsersHandler:   app.UsersHandler,
		AccountHandler: app.AccountHandler,
		GoogleAuth:     app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	cfg := app.Config

	var resumesRepo resumes.Repo
	var jobsRepo jobs.Repo
	var userRepo users.Repo
	if app.DB != nil {
		resumesRepo = &resumes.PGRepo{DB: app.DB}
		jobsRepo = &jobs.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		resumesRepo = resumes.NewMemoryRepo()
		jobsRepo = jobs.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	resumesSvc := &resumes.Service{
		Store: app.Store,
		Repo:  resumesRepo,
		Opts: pipeline.Options{
			ExtractTimeout: cfg.ExtractTimeout,
			AnalyzeTimeout: cfg.AnalyzeTimeout,
		},
	}

	aggregator := jobs.NewAggregator(
		jobs.NewAdzunaProvider(cfg.AdzunaBaseURL, cfg.AdzunaAppID, cfg.AdzunaAppKey, cfg.AdzunaCountry),
		jobs.NewReedProvider(cfg.ReedBaseURL, cfg.ReedAPIKey),
		jobs.NewJSearchProvider(cfg.JSearchBaseURL, cfg.JSearchAPIKey),
	)
	jobsSvc := &jobs.Service{
		Agg:   aggregator,
		Repo:  jobsRepo,
		Cache: cache.New[[]jobs.Job](cfg.JobsCacheTTL, time.Now),
	}

	userSvc := users.NewService(userRepo)

	app.ResumesRepo = resumesRepo
	app.JobsRepo = jobsRepo
	app.UsersRepo = userRepo
	app.ResumesService = resumesSvc
	app.JobsService = jobsSvc
	app.UsersService = userSvc
	app.ResumesHandler = resumes.NewHandler(resumesSvc, cfg.MaxUploadBytes)
	app.JobsHandler = jobs.NewHandler(jobsSvc)
	app.UsersHandler = users.NewHandler(userSvc)
	app.AccountHandler = account.NewHandler(account.NewService(resumesRepo))
	app.GoogleAuth = googleauth.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.UIRedirectURL,
		userSvc,
	)
}
