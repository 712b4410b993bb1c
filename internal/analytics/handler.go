package analytics

import (
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
	rg.GET("/analytics/overview", h.overview)
	rg.GET("/analytics/metrics", h.metrics)
}

func (h *Handler) overview(c *gin.Context) {
	respond.OK(c, h.Svc.Overview())
}

func (h *Handler) metrics(c *gin.Context) {
	respond.OK(c, h.Svc.Metrics())
}
