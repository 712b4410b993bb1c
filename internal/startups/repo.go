package startups

import (
	"context"
	"fmt"
)

// ErrNotFound indicates the startup does not exist.
type ErrNotFound struct {
	ID string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("startup %s not found", e.ID)
}

// Repo stores startup records.
type Repo interface {
	List(ctx context.Context) ([]Startup, error)
	Create(ctx context.Context, startup Startup) error
	Get(ctx context.Context, id string) (Startup, error)
	Update(ctx context.Context, startup Startup) error
	Delete(ctx context.Context, id string) error
}
