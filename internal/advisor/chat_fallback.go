package advisor

import (
	"fmt"
	"strings"

	"advisor-backend/internal/sessions"
)

// chatFallback produces the canned mentor reply used when the AI gateway is
// unavailable. With a stored idea the reply is keyword-matched against the
// question and personalized with the idea's category, budget and experience;
// without one a generic keyword table answers common startup topics and
// every reply closes with an invitation to run an analysis first.
func chatFallback(message string, rec sessions.Record) string {
	if rec.StartupIdea != nil {
		return contextualChatFallback(message, *rec.StartupIdea)
	}
	return genericChatFallback(message)
}

func contextualChatFallback(message string, idea sessions.StartupIdea) string {
	lower := strings.ToLower(message)
	beginner := idea.Experience == "Beginner"
	reply := fmt.Sprintf("I'm here to help with your startup journey! For your %s startup with ₹%s budget, I recommend: ", idea.Category, idea.Budget)

	switch {
	case containsAny(lower, "market", "customer"):
		reply += "Start by conducting 30-50 customer interviews to validate your idea. Focus on understanding their pain points deeply. What specific problem are you solving?"
	case containsAny(lower, "mvp", "build", "develop"):
		if beginner {
			reply += "Build a minimal viable product focusing on your core value proposition. Consider using no-code tools or finding a technical co-founder. What's your timeline?"
		} else {
			reply += "Build a minimal viable product focusing on your core value proposition. Start with the features that directly solve your users' main problem. What's your timeline?"
		}
	case containsAny(lower, "fund", "money", "invest"):
		if parseBudget(idea.Budget) < lowBudgetThreshold {
			reply += "With your budget, focus on bootstrapping and proving traction before seeking external funding. Have you calculated your runway?"
		} else {
			reply += "You have a solid budget to build an MVP. Focus on customer acquisition and proving product-market fit. Have you calculated your runway?"
		}
	case containsAny(lower, "team", "hire", "cofounder"):
		if beginner {
			reply += "Look for a co-founder with complementary skills, especially technical expertise. What roles are you looking to fill?"
		} else {
			reply += "Start with contractors before full-time hires. Focus on cultural fit and shared vision. What roles are you looking to fill?"
		}
	default:
		reply += "Focus on validating your idea with real customers, building an MVP, and iterating based on feedback. What's your biggest challenge right now?"
	}
	return reply
}

// dashboardInvite closes every no-idea reply so the user is steered to run
// an analysis before asking for tailored advice.
const dashboardInvite = "For guidance tailored to your situation, please analyze your startup idea on the Dashboard first."

func genericChatFallback(message string) string {
	lower := strings.ToLower(message)

	var reply string
	switch {
	case hasAnyPrefix(lower, "hi", "hello", "hey", "greetings"):
		reply = "Hello! I'm your AI startup mentor. I can help you with fundraising, product development, team building, marketing strategies, and more."
	case containsAny(lower, "funding", "investor", "raise", "capital"):
		reply = "For fundraising, focus on: 1) Strong pitch deck with clear problem/solution, 2) Proven traction and metrics, 3) Network with angel investors first, 4) Perfect your 2-minute elevator pitch."
	case containsAny(lower, "market", "competition", "competitor"):
		reply = "Market analysis is crucial. Research your competitors thoroughly, identify gaps in their offerings, and position your unique value proposition. Use tools like SEMrush and SimilarWeb for competitive intelligence."
	case containsAny(lower, "team", "hire", "cofounder", "co-founder"):
		reply = "Building the right team is essential. Hire for culture fit and complementary skills. Start with a strong technical co-founder and focus on generalists in early stages. Use equity wisely to attract top talent."
	case containsAny(lower, "product", "mvp", "feature", "build"):
		reply = "For MVP development: 1) Identify core features only, 2) Get user feedback early and often, 3) Iterate quickly based on data, 4) Don't over-engineer - ship fast and learn."
	case containsAny(lower, "price", "pricing", "charge"):
		reply = "For pricing strategy: 1) Research competitor pricing, 2) Calculate your costs and desired margins, 3) Consider value-based pricing, 4) Start higher and adjust based on feedback."
	case containsAny(lower, "customer", "user", "acquisition", "growth"):
		reply = "Customer acquisition: 1) Identify your ideal customer profile, 2) Start with direct outreach and personal connections, 3) Create valuable content, 4) Leverage social proof and testimonials."
	case containsAny(lower, "idea", "validate", "test"):
		reply = "Great! Let's validate your idea. Key steps: 1) Talk to 50+ potential customers, 2) Create a landing page to test interest, 3) Run small paid ad campaigns, 4) Build a minimal MVP to test assumptions."
	case containsAny(lower, "advertis", "promotion", "seo"):
		reply = "For marketing: 1) Focus on one channel at a time, 2) Content marketing builds long-term value, 3) Leverage social media where your customers are, 4) Track metrics religiously."
	case containsAny(lower, "runway", "burn", "financial", "budget"):
		reply = "Financial planning is critical. Calculate your monthly burn rate, track runway carefully, and aim for 18+ months of runway. Cut unnecessary costs and focus on revenue-generating activities."
	case containsAny(lower, "strategy", "plan", "roadmap"):
		reply = "Strategic planning: 1) Set clear, measurable goals, 2) Focus on 1-2 key metrics, 3) Plan in 90-day sprints, 4) Review and adjust regularly."
	default:
		reply = "I'm here to help with your startup journey! I'd love to give you personalized advice!"
	}
	return reply + " " + dashboardInvite
}

func containsAny(s string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
