package advisor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"advisor-backend/internal/llm"
	"advisor-backend/internal/sessions"
)

const lowBudgetThreshold = 200000

// Generator produces a complete AnalysisResult without depending on the AI
// gateway succeeding. Parts of it opportunistically call the gateway for
// flavor text and fall back further to fixed templates on any fault. It
// never fails.
type Generator struct {
	LLM llm.Client
}

// Analysis builds the two-tier fallback result. The first tier asks the
// gateway for contextual recommendations; when that call fails the fully
// deterministic template tier takes over.
func (g *Generator) Analysis(ctx context.Context, req AnalysisRequest) sessions.AnalysisResult {
	raw, err := g.LLM.Complete(ctx, recommendationsPrompt(req))
	if err != nil {
		return g.deterministic(ctx, req)
	}

	budgetNum := parseBudget(req.Budget)
	firstDescription := prefix(strings.TrimSpace(raw), 150)
	if firstDescription == "" {
		firstDescription = fmt.Sprintf("Leverage your %s experience to build a targeted solution in the %s space.",
			strings.ToLower(req.Experience), req.Category)
	}

	recommendations := []sessions.Recommendation{
		{
			Title:           titleCase(req.Category) + "-Focused Solution",
			Description:     firstDescription,
			ConfidenceScore: confidenceForExperience(req.Experience),
			RiskLevel:       riskLevelForBudget(budgetNum),
		},
		{
			Title:           "MVP-First Approach",
			Description:     fmt.Sprintf(`Start with a minimal viable product to test your idea: "%s..." Focus on core features first.`, prefix(req.Idea, 100)),
			ConfidenceScore: 85,
			RiskLevel:       "Medium",
		},
		{
			Title:           "Market Validation Strategy",
			Description:     "Validate your concept through customer interviews and landing page tests before full development.",
			ConfidenceScore: 80,
			RiskLevel:       "Low",
		},
	}

	return sessions.AnalysisResult{
		Recommendations:  recommendations,
		Competitors:      g.competitors(ctx, req.Category, req.Idea),
		CoFounderProfile: coFounderProfile(req.Category, req.Experience),
		Roadmap:          g.Roadmap(ctx, req),
		RiskAssessment: sessions.RiskAssessment{
			Overall: overallRisk(req.Experience),
			Factors: []string{
				fmt.Sprintf("Budget: ₹%s - %s funding", req.Budget, fundingTier(budgetNum, "Strong", "Moderate", "Limited")),
				fmt.Sprintf("Experience: %s - %s", req.Experience, experienceNote(req.Experience, "Strong advantage", "Good foundation", "Learning curve ahead")),
				fmt.Sprintf("Market: %s - %s", req.Category, marketNote(req.Category, "High growth potential", "Established market")),
				fmt.Sprintf("Idea specificity: %s", ideaSpecificity(req.Idea)),
			},
		},
		MarketOpportunity: fmt.Sprintf("Your %s startup idea shows promise. With %s experience and ₹%s budget, focus on: %s... The key is rapid iteration and customer feedback.",
			req.Category, strings.ToLower(req.Experience), req.Budget, prefix(req.Idea, 100)),
		NextSteps: []string{
			"Conduct 20-30 customer discovery interviews",
			"Create a detailed MVP specification",
			"Build a landing page to test market interest",
			"Set up analytics and tracking systems",
			"Develop a 6-month roadmap with milestones",
			"Network with potential advisors and mentors",
		},
	}
}

// deterministic is the bottom tier built entirely from the category template
// bundle; only the roadmap still tries the gateway once.
func (g *Generator) deterministic(ctx context.Context, req AnalysisRequest) sessions.AnalysisResult {
	budgetNum := parseBudget(req.Budget)
	bundle := categoryBundles[categoryKey(req.Category)]

	return sessions.AnalysisResult{
		Recommendations:  bundle.recommendations(budgetNum, req.Idea),
		Competitors:      bundle.competitors,
		CoFounderProfile: coFounderProfile(req.Category, req.Experience),
		Roadmap:          g.Roadmap(ctx, req),
		RiskAssessment: sessions.RiskAssessment{
			Overall: overallRisk(req.Experience),
			Factors: []string{
				fmt.Sprintf("Budget: ₹%s - %s funding for %s startup", req.Budget, fundingTier(budgetNum, "Strong", "Adequate", "Limited"), req.Category),
				fmt.Sprintf("Experience: %s - %s", req.Experience, experienceNote(req.Experience, "Significant advantage", "Solid foundation", "Steep learning curve")),
				fmt.Sprintf("Market: %s - %s sector", req.Category, marketNote(req.Category, "High growth potential", "Established but competitive")),
				fmt.Sprintf("Idea clarity: %s", ideaClarity(req.Idea)),
			},
		},
		MarketOpportunity: fmt.Sprintf(`Your %s startup idea "%s..." shows potential in the current market. With %s experience and ₹%s budget, you can %s. Focus on solving a specific problem exceptionally well before expanding.`,
			req.Category, prefix(req.Idea, 100), strings.ToLower(req.Experience), req.Budget, budgetPlay(budgetNum)),
		NextSteps: []string{
			"Conduct 25-50 customer discovery interviews to validate problem",
			"Create detailed user personas and journey maps",
			"Build a landing page and run ads to test market interest",
			"Develop MVP specification with prioritized features",
			"Set up analytics infrastructure (Google Analytics, Mixpanel)",
			"Create 3-month sprint plan with measurable milestones",
			"Network with 10+ potential advisors or mentors in your space",
			"Research and apply to relevant accelerator programs",
		},
	}
}

// competitors asks the gateway once for flavor text to embed in the market
// leader entry; the fixed archetype list covers the failure path.
func (g *Generator) competitors(ctx context.Context, category, idea string) []sessions.Competitor {
	raw, err := g.LLM.Complete(ctx, competitorsPrompt(category, idea))
	if err != nil {
		return []sessions.Competitor{
			{Name: "Industry Leader", Level: "High", Description: "Dominant player in the market"},
			{Name: "Emerging Startup", Level: "Medium", Description: "Fast-growing competitor"},
			{Name: "Niche Solution", Level: "Low", Description: "Focused on specific segment"},
		}
	}
	leaderDescription := prefix(strings.TrimSpace(raw), 100)
	if leaderDescription == "" {
		leaderDescription = "Established player with significant market share"
	}
	return []sessions.Competitor{
		{Name: "Market Leader", Level: "High", Description: leaderDescription},
		{Name: "Growing Competitor", Level: "Medium", Description: "Mid-size player with innovative approach"},
		{Name: "Niche Player", Level: "Low", Description: "Specialized solution in specific segment"},
	}
}

// Roadmap tries one gateway call for a 4-phase JSON array and accepts it
// verbatim when it parses to a non-empty array; otherwise the fixed template
// conditioned on budget and experience tiers.
func (g *Generator) Roadmap(ctx context.Context, req AnalysisRequest) []sessions.RoadmapPhase {
	if raw, err := g.LLM.Complete(ctx, roadmapPrompt(req)); err == nil {
		if roadmap, perr := parseRoadmap(raw); perr == nil {
			return roadmap
		}
	}
	budgetNum := parseBudget(req.Budget)
	return roadmapTemplate(req.Category, budgetNum < lowBudgetThreshold, req.Experience == "Beginner")
}

// Ideas tries one gateway call for a JSON idea array, else the curated
// per-category template. Deterministic for a fixed category when the
// gateway is down.
func (g *Generator) Ideas(ctx context.Context, category string) ([]Idea, bool) {
	if raw, err := g.LLM.Complete(ctx, ideasPrompt(category)); err == nil {
		if ideas, perr := parseIdeas(raw); perr == nil {
			return ideas, false
		}
	}
	return curatedIdeas(category), true
}

// parseBudget reads the leading integer of the budget field. Budgets with no
// leading digits parse to 0 and land in the High risk tier.
func parseBudget(s string) int {
	t := strings.TrimSpace(s)
	i := 0
	if i < len(t) && (t[i] == '+' || t[i] == '-') {
		i++
	}
	j := i
	for j < len(t) && t[j] >= '0' && t[j] <= '9' {
		j++
	}
	if j == i {
		return 0
	}
	n, err := strconv.Atoi(t[:j])
	if err != nil {
		return 0
	}
	return n
}

func riskLevelForBudget(budgetNum int) string {
	switch {
	case budgetNum > 500000:
		return "Low"
	case budgetNum > 200000:
		return "Medium"
	default:
		return "High"
	}
}

func overallRisk(experience string) string {
	switch experience {
	case "Beginner":
		return "High"
	case "Expert":
		return "Low"
	default:
		return "Medium"
	}
}

func confidenceForExperience(experience string) int {
	switch experience {
	case "Expert":
		return 90
	case "Intermediate":
		return 75
	default:
		return 65
	}
}

func fundingTier(budgetNum int, strong, moderate, limited string) string {
	switch {
	case budgetNum > 500000:
		return strong
	case budgetNum > 200000:
		return moderate
	default:
		return limited
	}
}

func experienceNote(experience, expert, intermediate, beginner string) string {
	switch experience {
	case "Expert":
		return expert
	case "Intermediate":
		return intermediate
	default:
		return beginner
	}
}

func marketNote(category, growth, established string) string {
	if category == "tech" || category == "saas" {
		return growth
	}
	return established
}

func ideaSpecificity(idea string) string {
	if len(idea) > 200 {
		return "Well-defined"
	}
	return "Needs refinement"
}

func ideaClarity(idea string) string {
	switch {
	case len(idea) > 200:
		return "Well-articulated vision"
	case len(idea) > 100:
		return "Good starting point"
	default:
		return "Needs more definition"
	}
}

func budgetPlay(budgetNum int) string {
	switch {
	case budgetNum > 500000:
		return "build a robust MVP and test multiple channels"
	case budgetNum > 200000:
		return "create a solid MVP and validate with early customers"
	default:
		return "start lean with a minimal MVP and iterate quickly"
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
