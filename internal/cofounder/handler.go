package cofounder

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
	rg.POST("/cofounder/match", h.match)
	rg.GET("/cofounder/personas", h.personas)
}

type matchRequest struct {
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Industry   string   `json:"industry"`
}

func (h *Handler) match(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	respond.OK(c, gin.H{"matches": h.Svc.Matches()})
}

func (h *Handler) personas(c *gin.Context) {
	respond.OK(c, gin.H{"personas": h.Svc.Personas()})
}
