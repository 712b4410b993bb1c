package startups

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo is an in-memory Repo keeping insertion order.
type MemoryRepo struct {
	mu       sync.RWMutex
	startups []Startup
}

// NewMemoryRepo builds a MemoryRepo seeded with a sample venture so the
// dashboard has data before any record is created.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		startups: []Startup{
			{
				ID:        uuid.NewString(),
				Name:      "TechVenture",
				Industry:  "SaaS",
				Stage:     "Seed",
				Funding:   500000,
				Team:      5,
				CreatedAt: time.Now().UTC(),
			},
		},
	}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Startup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Startup, len(r.startups))
	copy(out, r.startups)
	return out, nil
}

func (r *MemoryRepo) Create(ctx context.Context, startup Startup) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.startups = append(r.startups, startup)
	return nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (Startup, error) {
	if err := ctx.Err(); err != nil {
		return Startup{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.startups {
		if s.ID == id {
			return s, nil
		}
	}
	return Startup{}, ErrNotFound{ID: id}
}

func (r *MemoryRepo) Update(ctx context.Context, startup Startup) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.startups {
		if s.ID == startup.ID {
			r.startups[i] = startup
			return nil
		}
	}
	return ErrNotFound{ID: startup.ID}
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.startups {
		if s.ID == id {
			r.startups = append(r.startups[:i], r.startups[i+1:]...)
			return nil
		}
	}
	return ErrNotFound{ID: id}
}
