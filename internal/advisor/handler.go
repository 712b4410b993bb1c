package advisor

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"advisor-backend/internal/shared/server/middleware"
	"advisor-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the advisory service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches dashboard, mentor and idea routes to the group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/dashboard/analyze", h.analyze)
	rg.GET("/dashboard/metrics", h.dashboardMetrics)
	rg.GET("/dashboard/stats", h.dashboardStats)
	rg.GET("/dashboard/charts", h.dashboardCharts)
	rg.POST("/mentor/chat", h.chat)
	rg.GET("/mentor/history", h.chatHistory)
	rg.GET("/mentor/suggestions", h.suggestions)
	rg.POST("/ideas/generate", h.generateIdeas)
}

func (h *Handler) analyze(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, idea, fallbackUsed, err := h.Svc.Analyze(c.Request.Context(), userID, req)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze startup idea", nil)
		return
	}
	c.Set("fallbackUsed", fallbackUsed)

	respond.OK(c, gin.H{
		"success": true,
		"data":    result,
		"metadata": gin.H{
			"category":   req.Category,
			"budget":     req.Budget,
			"experience": req.Experience,
			"analyzedAt": idea.AnalyzedAt.Format(time.RFC3339),
		},
	})
}

func (h *Handler) dashboardMetrics(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	rec, err := h.Svc.Session(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load session", nil)
		return
	}
	if rec.StartupIdea == nil {
		respond.OK(c, gin.H{
			"hasData": false,
			"message": "No startup analysis found. Please analyze your idea first.",
		})
		return
	}

	budgetNum := parseBudget(rec.StartupIdea.Budget)
	monthlyBurn := float64(budgetNum) * 0.15
	runway := 0.0
	if monthlyBurn > 0 {
		runway = round1(float64(budgetNum) / monthlyBurn)
	}

	respond.OK(c, gin.H{
		"hasData":       true,
		"totalRevenue":  0,
		"activeUsers":   0,
		"burnRate":      int(math.Round(monthlyBurn)),
		"runway":        runway,
		"monthlyGrowth": 0,
		"churnRate":     0,
		"startupIdea":   rec.StartupIdea,
		"recommendations": []string{
			"Start with customer validation before building",
			"Keep burn rate low in early stages",
			"Focus on one key metric that matters most",
			"Build MVP in 4-6 weeks maximum",
		},
	})
}

func (h *Handler) dashboardStats(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	rec, err := h.Svc.Session(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load session", nil)
		return
	}

	totalStartups := 0
	avgRunway := 0.0
	recentActivity := []gin.H{}
	if rec.StartupIdea != nil {
		totalStartups = 1
		budgetNum := parseBudget(rec.StartupIdea.Budget)
		if monthlyBurn := float64(budgetNum) * 0.15; monthlyBurn > 0 {
			avgRunway = round1(float64(budgetNum) / monthlyBurn)
		}
		recentActivity = []gin.H{
			{"action": "Startup idea analyzed", "timestamp": rec.StartupIdea.AnalyzedAt.Format(time.RFC3339), "type": "analysis"},
			{"action": "Account created", "timestamp": time.Now().UTC().Format(time.RFC3339), "type": "user"},
		}
	}

	respond.OK(c, gin.H{
		"overview": gin.H{
			"totalStartups": totalStartups,
			"totalRevenue":  0,
			"totalUsers":    0,
			"avgRunway":     avgRunway,
		},
		"recentActivity": recentActivity,
	})
}

func (h *Handler) dashboardCharts(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	rec, err := h.Svc.Session(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load session", nil)
		return
	}

	budgetNum := 100000
	if rec.StartupIdea != nil {
		budgetNum = parseBudget(rec.StartupIdea.Budget)
	}
	monthlyBurn := float64(budgetNum) * 0.15

	revenue := make([]gin.H, 0, 6)
	users := make([]gin.H, 0, 6)
	for i := 0; i < 6; i++ {
		month := fmt.Sprintf("Month %d", i+1)
		revenue = append(revenue, gin.H{"month": month, "revenue": i * 5000, "expenses": monthlyBurn})
		users = append(users, gin.H{"month": month, "active": i * 50, "new": i * 20})
	}

	respond.OK(c, gin.H{"revenue": revenue, "users": users})
}

func (h *Handler) chat(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "message is required", nil)
		return
	}

	turn, fallbackUsed, err := h.Svc.Chat(c.Request.Context(), userID, req)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process chat message", nil)
		return
	}
	c.Set("fallbackUsed", fallbackUsed)

	respond.OK(c, turn)
}

func (h *Handler) chatHistory(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	history, err := h.Svc.History(c.Request.Context(), userID, 10)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load chat history", nil)
		return
	}

	conversations := make([]ChatTurn, 0, len(history))
	for _, chat := range history {
		conversations = append(conversations, ChatTurn{
			ID:        uuid.NewString(),
			Message:   chat.Message,
			Response:  chat.Response,
			Timestamp: chat.Timestamp.Format(time.RFC3339),
		})
	}

	respond.OK(c, gin.H{"conversations": conversations})
}

func (h *Handler) suggestions(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	rec, err := h.Svc.Session(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load session", nil)
		return
	}

	suggestions := []string{
		"How do I validate my startup idea?",
		"What should be in my pitch deck?",
		"How to calculate my burn rate?",
		"When should I hire my first employee?",
	}
	if idea := rec.StartupIdea; idea != nil {
		scalingQuestion := "How do I scale my team effectively?"
		if idea.Experience == "Beginner" {
			scalingQuestion = "What skills do I need to learn first?"
		}
		fundingQuestion := "Should I raise funding or bootstrap?"
		if parseBudget(idea.Budget) < lowBudgetThreshold {
			fundingQuestion = "How can I bootstrap with limited budget?"
		}
		suggestions = []string{
			fmt.Sprintf("How do I validate my %s startup idea?", idea.Category),
			scalingQuestion,
			fundingQuestion,
			fmt.Sprintf("What are the key metrics for %s startups?", idea.Category),
			"How do I find the right co-founder?",
			"What marketing channels work best for my niche?",
			"How do I price my product competitively?",
			"What are common mistakes in my industry?",
		}
	}

	respond.OK(c, gin.H{"suggestions": suggestions})
}

func (h *Handler) generateIdeas(c *gin.Context) {
	var req IdeaGenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Category == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "category is required", nil)
		return
	}

	ideas, fallbackUsed := h.Svc.GenerateIdeas(c.Request.Context(), req.Category)
	c.Set("fallbackUsed", fallbackUsed)

	respond.OK(c, gin.H{
		"success":     true,
		"category":    req.Category,
		"ideas":       ideas,
		"generatedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
