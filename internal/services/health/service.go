package health

import (
	"context"
	"database/sql"
	"time"
)

// Service encapsulates health-related checks.
type Service struct {
	db *sql.DB
}

// NewService constructs a new health service. db may be nil when the server
// runs with in-memory repositories.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Status returns the health payload. The database check is best-effort and
// never fails the endpoint.
func (s *Service) Status(ctx context.Context) map[string]any {
	payload := map[string]any{"ok": true}
	if s.db == nil {
		payload["storage"] = "memory"
		return payload
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.db.PingContext(pingCtx); err != nil {
		payload["storage"] = "postgres"
		payload["db"] = "unreachable"
		return payload
	}
	payload["storage"] = "postgres"
	payload["db"] = "ok"
	return payload
}
