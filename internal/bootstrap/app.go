package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"advisor-backend/internal/advisor"
	"advisor-backend/internal/analytics"
	googleauth "advisor-backend/internal/auth"
	"advisor-backend/internal/cofounder"
	"advisor-backend/internal/competitor"
	"advisor-backend/internal/financial"
	"advisor-backend/internal/llm"
	"advisor-backend/internal/llm/hf"
	"advisor-backend/internal/risk"
	"advisor-backend/internal/services/health"
	"advisor-backend/internal/sessions"
	"advisor-backend/internal/shared/config"
	"advisor-backend/internal/shared/server"
	"advisor-backend/internal/shared/storage/db"
	"advisor-backend/internal/startups"
	"advisor-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	SessionsRepo sessions.Repo
	UsersRepo    users.Repo
	StartupsRepo startups.Repo

	LLM llm.Client

	AdvisorService *advisor.Service
	UsersService   *users.Service

	AdvisorHandler    *advisor.Handler
	UsersHandler      *users.Handler
	GoogleAuth        *googleauth.GoogleService
	FinancialHandler  *financial.Handler
	RiskHandler       *risk.Handler
	CofounderHandler  *cofounder.Handler
	CompetitorHandler *competitor.Handler
	StartupsHandler   *startups.Handler
	AnalyticsHandler  *analytics.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		Health:            health.NewService(app.DB),
		AdvisorHandler:    app.AdvisorHandler,
		UsersHandler:      app.UsersHandler,
		GoogleAuth:        app.GoogleAuth,
		FinancialHandler:  app.FinancialHandler,
		RiskHandler:       app.RiskHandler,
		CofounderHandler:  app.CofounderHandler,
		CompetitorHandler: app.CompetitorHandler,
		StartupsHandler:   app.StartupsHandler,
		AnalyticsHandler:  app.AnalyticsHandler,
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
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
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
	var sessionRepo sessions.Repo
	var userRepo users.Repo
	if app.DB != nil {
		sessionRepo = &sessions.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		sessionRepo = sessions.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}
	startupRepo := startups.NewMemoryRepo()

	var llmClient llm.Client = llm.PlaceholderClient{}
	if app.Config.LLMProvider == "huggingface" {
		llmClient = hf.NewClient(app.Config.HFToken, app.Config.LLMModel)
	}
	llmClient = llm.WithRetry(llmClient, "gateway")

	userSvc := users.NewService(userRepo, sessionRepo)
	advisorSvc := advisor.NewService(llmClient, sessionRepo)

	app.SessionsRepo = sessionRepo
	app.UsersRepo = userRepo
	app.StartupsRepo = startupRepo
	app.LLM = llmClient
	app.AdvisorService = advisorSvc
	app.UsersService = userSvc

	app.AdvisorHandler = advisor.NewHandler(advisorSvc)
	app.UsersHandler = users.NewHandler(userSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)
	app.FinancialHandler = financial.NewHandler(financial.NewService())
	app.RiskHandler = risk.NewHandler(risk.NewService())
	app.CofounderHandler = cofounder.NewHandler(cofounder.NewService())
	app.CompetitorHandler = competitor.NewHandler(competitor.NewService())
	app.StartupsHandler = startups.NewHandler(startupRepo)
	app.AnalyticsHandler = analytics.NewHandler(analytics.NewService())
}
