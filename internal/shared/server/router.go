package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advisor-backend/internal/advisor"
	"advisor-backend/internal/analytics"
	googleauth "advisor-backend/internal/auth"
	"advisor-backend/internal/cofounder"
	"advisor-backend/internal/competitor"
	"advisor-backend/internal/financial"
	"advisor-backend/internal/risk"
	"advisor-backend/internal/services/health"
	"advisor-backend/internal/shared/config"
	"advisor-backend/internal/shared/metrics"
	"advisor-backend/internal/shared/server/middleware"
	"advisor-backend/internal/shared/server/respond"
	"advisor-backend/internal/startups"
	"advisor-backend/internal/users"
)

const aiRateLimitGroup = "AI"

// RouterDeps carries the handlers wired by bootstrap.
type RouterDeps struct {
	Config            config.Config
	Health            *health.Service
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

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
	)

	api := r.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status(c.Request.Context()))
	})
	api.GET("/metrics", metrics.Handler())

	deps.UsersHandler.RegisterRoutes(api)
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}

	// AI-backed routes share a token bucket per user.
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			aiRateLimitGroup: {Rate: 1, Burst: 10},
		},
		GroupFor: aiRouteGroup,
	}))

	deps.AdvisorHandler.RegisterRoutes(api)
	deps.FinancialHandler.RegisterRoutes(api)
	deps.RiskHandler.RegisterRoutes(api)
	deps.CofounderHandler.RegisterRoutes(api)
	deps.CompetitorHandler.RegisterRoutes(api)
	deps.StartupsHandler.RegisterRoutes(api)
	deps.AnalyticsHandler.RegisterRoutes(api)

	return r
}

func aiRouteGroup(c *gin.Context) string {
	switch c.FullPath() {
	case "/api/v1/dashboard/analyze", "/api/v1/mentor/chat", "/api/v1/ideas/generate":
		return aiRateLimitGroup
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
