package financial

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
	rg.POST("/financial/runway", h.runway)
	rg.POST("/financial/forecast", h.forecast)
	rg.GET("/financial/metrics", h.metrics)
}

type runwayRequest struct {
	CurrentCash    float64 `json:"currentCash"`
	MonthlyBurn    float64 `json:"monthlyBurn"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
}

type forecastRequest struct {
	CurrentCash    float64 `json:"currentCash"`
	MonthlyBurn    float64 `json:"monthlyBurn"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	GrowthRate     float64 `json:"growthRate"`
}

func (h *Handler) runway(c *gin.Context) {
	var req runwayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result := h.Svc.Runway(req.CurrentCash, req.MonthlyBurn, req.MonthlyRevenue)

	var runway any = "Infinite"
	if result.Months != nil {
		runway = *result.Months
	}
	var depletion any
	if result.ProjectedDepletion != nil {
		depletion = result.ProjectedDepletion.UTC()
	}

	respond.OK(c, gin.H{
		"runway":             runway,
		"netBurn":            result.NetBurn,
		"currentCash":        result.CurrentCash,
		"monthlyBurn":        result.MonthlyBurn,
		"monthlyRevenue":     result.MonthlyRevenue,
		"projectedDepletion": depletion,
		"status":             result.Status,
	})
}

func (h *Handler) forecast(c *gin.Context) {
	var req forecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	respond.OK(c, gin.H{
		"forecast": h.Svc.Forecast(req.CurrentCash, req.MonthlyBurn, req.MonthlyRevenue, req.GrowthRate),
	})
}

func (h *Handler) metrics(c *gin.Context) {
	respond.OK(c, gin.H{"metrics": h.Svc.Metrics()})
}
