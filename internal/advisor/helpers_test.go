package advisor

import (
	"context"

	"github.com/gin-gonic/gin"

	"advisor-backend/internal/llm"
	"advisor-backend/internal/sessions"
)

// staticClient always succeeds with the same text.
type staticClient struct {
	text    string
	prompts []string
}

func (c *staticClient) Complete(_ context.Context, prompt string) (string, error) {
	c.prompts = append(c.prompts, prompt)
	return c.text, nil
}

// failingClient simulates a dead gateway.
type failingClient struct {
	calls int
}

func (c *failingClient) Complete(context.Context, string) (string, error) {
	c.calls++
	return "", llm.ErrUnavailable
}

func setupAdvisorRouter(client llm.Client) (*gin.Engine, *Service) {
	gin.SetMode(gin.TestMode)
	svc := NewService(client, sessions.NewMemoryRepo())
	handler := NewHandler(svc)

	router := gin.New()
	group := router.Group("/api/v1")
	group.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Next()
	})
	handler.RegisterRoutes(group)
	return router, svc
}
