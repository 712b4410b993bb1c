package cofounder

// Match is a curated co-founder candidate profile.
type Match struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Industry   string   `json:"industry"`
	MatchScore int      `json:"matchScore"`
	Bio        string   `json:"bio"`
}

// Persona is one of the co-founder archetypes founders search for.
type Persona struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Demand      string `json:"demand"`
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Matches returns the curated candidate list ordered by match score.
// Matching against the requester's profile is not implemented yet; the
// list is static until a real candidate pool exists.
func (s *Service) Matches() []Match {
	return []Match{
		{
			ID:         1,
			Name:       "Alex Chen",
			Role:       "Technical Co-Founder",
			Skills:     []string{"Full-Stack Development", "AI/ML", "Cloud Architecture"},
			Experience: "8 years",
			Industry:   "SaaS",
			MatchScore: 92,
			Bio:        "Former tech lead at major tech company, passionate about building scalable solutions",
		},
		{
			ID:         2,
			Name:       "Sarah Johnson",
			Role:       "Business Co-Founder",
			Skills:     []string{"Marketing", "Sales", "Business Development"},
			Experience: "10 years",
			Industry:   "B2B SaaS",
			MatchScore: 88,
			Bio:        "Ex-VP of Sales with proven track record in scaling startups",
		},
		{
			ID:         3,
			Name:       "Michael Rodriguez",
			Role:       "Product Co-Founder",
			Skills:     []string{"Product Management", "UX Design", "Data Analytics"},
			Experience: "6 years",
			Industry:   "FinTech",
			MatchScore: 85,
			Bio:        "Product leader with experience launching successful products",
		},
	}
}

func (s *Service) Personas() []Persona {
	return []Persona{
		{Type: "Technical", Description: "CTO/Engineering lead", Demand: "High"},
		{Type: "Business", Description: "CEO/Business development", Demand: "High"},
		{Type: "Product", Description: "CPO/Product manager", Demand: "Medium"},
		{Type: "Marketing", Description: "CMO/Growth hacker", Demand: "Medium"},
	}
}
