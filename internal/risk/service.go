package risk

import (
	"math"
	"time"
)

// Factor is one scored risk category in an assessment.
type Factor struct {
	Category    string  `json:"category"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Mitigation  string  `json:"mitigation"`
}

// Assessment aggregates the scored factors into an overall rating.
type Assessment struct {
	Risks        []Factor  `json:"risks"`
	OverallScore float64   `json:"overallScore"`
	RiskLevel    string    `json:"riskLevel"`
	Timestamp    time.Time `json:"timestamp"`
}

// Category describes one of the assessed risk dimensions.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// Assess scores market, financial and team risk from the venture profile.
// Technology and legal risk use fixed baseline scores.
func (s *Service) Assess(industry string, teamSize int, funding float64) Assessment {
	marketLevel := "Medium"
	if industry == "SaaS" {
		marketLevel = "Low"
	}

	financialLevel := "High"
	switch {
	case funding > 500000:
		financialLevel = "Low"
	case funding > 100000:
		financialLevel = "Medium"
	}

	teamLevel := "High"
	switch {
	case teamSize >= 5:
		teamLevel = "Low"
	case teamSize >= 3:
		teamLevel = "Medium"
	}

	financialDescription := "Limited runway, consider fundraising"
	if funding > 500000 {
		financialDescription = "Adequate runway for next 12 months"
	}
	teamDescription := "Consider expanding team"
	if teamSize >= 5 {
		teamDescription = "Well-staffed team"
	}

	risks := []Factor{
		{
			Category:    "Market",
			Level:       marketLevel,
			Description: "Competitive landscape is evolving",
			Score:       levelScore(marketLevel),
			Mitigation:  "Conduct regular competitor analysis and market research",
		},
		{
			Category:    "Financial",
			Level:       financialLevel,
			Description: financialDescription,
			Score:       levelScore(financialLevel),
			Mitigation:  "Maintain 12+ months runway, diversify revenue streams",
		},
		{
			Category:    "Team",
			Level:       teamLevel,
			Description: teamDescription,
			Score:       levelScore(teamLevel),
			Mitigation:  "Hire key roles, build advisory board",
		},
		{
			Category:    "Technology",
			Level:       "Medium",
			Description: "Technical debt and scalability concerns",
			Score:       5,
			Mitigation:  "Regular code reviews, invest in infrastructure",
		},
		{
			Category:    "Legal",
			Level:       "Low",
			Description: "Standard compliance requirements",
			Score:       3,
			Mitigation:  "Consult with legal counsel, maintain proper documentation",
		},
	}

	var sum float64
	for _, r := range risks {
		sum += r.Score
	}
	overall := round1(sum / float64(len(risks)))

	return Assessment{
		Risks:        risks,
		OverallScore: overall,
		RiskLevel:    overallLevel(overall),
		Timestamp:    s.now().UTC(),
	}
}

func levelScore(level string) float64 {
	switch level {
	case "Low":
		return 3
	case "Medium":
		return 6
	default:
		return 9
	}
}

func overallLevel(score float64) string {
	switch {
	case score < 4:
		return "Low"
	case score < 7:
		return "Medium"
	default:
		return "High"
	}
}

func (s *Service) Categories() []Category {
	return []Category{
		{Name: "Market Risk", Description: "Competition and market dynamics"},
		{Name: "Financial Risk", Description: "Cash flow and funding"},
		{Name: "Team Risk", Description: "Human resources and talent"},
		{Name: "Technology Risk", Description: "Technical challenges and debt"},
		{Name: "Legal Risk", Description: "Compliance and regulations"},
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
