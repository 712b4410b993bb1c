package competitor

// Profile is one competitor in the landscape analysis.
type Profile struct {
	Name        string   `json:"name"`
	MarketShare string   `json:"marketShare"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Threat      string   `json:"threat"`
}

// Analysis is the landscape summary for a given industry.
type Analysis struct {
	MarketSize      string    `json:"marketSize"`
	CompetitorCount int       `json:"competitorCount"`
	Competitors     []Profile `json:"competitors"`
	Opportunities   []string  `json:"opportunities"`
	Recommendations []string  `json:"recommendations"`
}

// Trend is a market trend entry.
type Trend struct {
	Trend  string `json:"trend"`
	Growth string `json:"growth"`
	Impact string `json:"impact"`
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Analyze returns the landscape template. The competitor count follows the
// caller's list when one is supplied, otherwise a market default of 5.
func (s *Service) Analyze(competitors []string) Analysis {
	count := len(competitors)
	if count == 0 {
		count = 5
	}

	return Analysis{
		MarketSize:      "$50B",
		CompetitorCount: count,
		Competitors: []Profile{
			{
				Name:        "Competitor A",
				MarketShare: "25%",
				Strengths:   []string{"Strong brand", "Large user base"},
				Weaknesses:  []string{"High pricing", "Poor customer service"},
				Threat:      "High",
			},
			{
				Name:        "Competitor B",
				MarketShare: "18%",
				Strengths:   []string{"Innovative features", "Good UX"},
				Weaknesses:  []string{"Limited market presence"},
				Threat:      "Medium",
			},
		},
		Opportunities: []string{
			"Underserved market segment",
			"Technology gap in current solutions",
			"Customer pain points not addressed",
		},
		Recommendations: []string{
			"Focus on differentiation through superior UX",
			"Target underserved SMB market",
			"Build strategic partnerships",
		},
	}
}

func (s *Service) MarketTrends() []Trend {
	return []Trend{
		{Trend: "AI Integration", Growth: "+45%", Impact: "High"},
		{Trend: "Remote Work Tools", Growth: "+32%", Impact: "Medium"},
		{Trend: "Sustainability Focus", Growth: "+28%", Impact: "Medium"},
	}
}
