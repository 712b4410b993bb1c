package risk

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
	rg.POST("/risk/assess", h.assess)
	rg.GET("/risk/categories", h.categories)
}

type assessRequest struct {
	Industry string  `json:"industry"`
	Stage    string  `json:"stage"`
	TeamSize int     `json:"teamSize"`
	Funding  float64 `json:"funding"`
}

func (h *Handler) assess(c *gin.Context) {
	var req assessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	respond.OK(c, h.Svc.Assess(req.Industry, req.TeamSize, req.Funding))
}

func (h *Handler) categories(c *gin.Context) {
	respond.OK(c, gin.H{"categories": h.Svc.Categories()})
}
