package competitor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advisor-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/competitor/analyze", h.analyze)
	rg.GET("/competitor/market-trends", h.marketTrends)
}

type analyzeRequest struct {
	Industry    string   `json:"industry"`
	Competitors []string `json:"competitors"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	respond.OK(c, h.Svc.Analyze(req.Competitors))
}

func (h *Handler) marketTrends(c *gin.Context) {
	respond.OK(c, gin.H{"trends": h.Svc.MarketTrends()})
}
