package startups

import "time"

// Startup is one tracked venture record.
type Startup struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry"`
	Stage     string    `json:"stage"`
	Funding   float64   `json:"funding"`
	Team      int       `json:"team"`
	CreatedAt time.Time `json:"createdAt"`
}
