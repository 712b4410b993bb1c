package startups

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"advisor-backend/internal/shared/server/respond"
)

type Handler struct {
	Repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/startups", h.list)
	rg.POST("/startups", h.create)
	rg.GET("/startups/:id", h.get)
	rg.PUT("/startups/:id", h.update)
	rg.DELETE("/startups/:id", h.remove)
}

type createRequest struct {
	Name     string  `json:"name"`
	Industry string  `json:"industry"`
	Stage    string  `json:"stage"`
	Funding  float64 `json:"funding"`
	Team     int     `json:"team"`
}

// updateRequest uses pointers so absent fields keep their stored values.
type updateRequest struct {
	Name     *string  `json:"name"`
	Industry *string  `json:"industry"`
	Stage    *string  `json:"stage"`
	Funding  *float64 `json:"funding"`
	Team     *int     `json:"team"`
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list startups", nil)
		return
	}
	respond.OK(c, gin.H{"startups": list})
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "name is required", nil)
		return
	}

	startup := Startup{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Industry:  req.Industry,
		Stage:     req.Stage,
		Funding:   req.Funding,
		Team:      req.Team,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Repo.Create(c.Request.Context(), startup); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create startup", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, startup)
}

func (h *Handler) get(c *gin.Context) {
	startup, err := h.Repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.repoError(c, err)
		return
	}
	respond.OK(c, startup)
}

func (h *Handler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	ctx := c.Request.Context()
	startup, err := h.Repo.Get(ctx, c.Param("id"))
	if err != nil {
		h.repoError(c, err)
		return
	}

	if req.Name != nil {
		startup.Name = *req.Name
	}
	if req.Industry != nil {
		startup.Industry = *req.Industry
	}
	if req.Stage != nil {
		startup.Stage = *req.Stage
	}
	if req.Funding != nil {
		startup.Funding = *req.Funding
	}
	if req.Team != nil {
		startup.Team = *req.Team
	}

	if err := h.Repo.Update(ctx, startup); err != nil {
		h.repoError(c, err)
		return
	}
	respond.OK(c, startup)
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.repoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) repoError(c *gin.Context, err error) {
	var notFound ErrNotFound
	if errors.As(err, &notFound) {
		respond.Error(c, http.StatusNotFound, "not_found", "Startup not found", nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, "internal_error", "startup storage failed", nil)
}
