package advisor

import (
	"fmt"
	"strings"

	"advisor-backend/internal/sessions"
)

// Prompt builders are pure functions of the request and the session snapshot.
// User-supplied text is interpolated verbatim; what the model sees is exactly
// what the user typed.

func analysisPrompt(req AnalysisRequest) string {
	return fmt.Sprintf(`You are an expert startup advisor. Analyze this startup idea and provide specific, actionable recommendations.

Category: %s
Budget: ₹%s
Experience Level: %s
Startup Idea: %s

Provide a detailed analysis with:
1. Three specific startup recommendations tailored to this exact idea
2. Key competitors in this specific niche
3. Risk assessment for this particular concept
4. Market opportunity analysis
5. Concrete next steps

Be specific to their idea, not generic. Format as JSON:
{
  "recommendations": [{"title": "...", "description": "...", "confidenceScore": 85, "riskLevel": "Low"}],
  "competitors": [{"name": "...", "level": "Medium", "description": "..."}],
  "riskAssessment": {"overall": "Medium", "factors": ["..."]},
  "marketOpportunity": "...",
  "nextSteps": ["..."]
}`, req.Category, req.Budget, req.Experience, req.Idea)
}

func recommendationsPrompt(req AnalysisRequest) string {
	return fmt.Sprintf(`Generate 3 specific startup recommendations for: "%s" in %s category with ₹%s budget. Be specific and actionable.`,
		req.Idea, req.Category, req.Budget)
}

func competitorsPrompt(category, idea string) string {
	return fmt.Sprintf(`List 3 competitors for this startup idea: "%s" in %s. Be specific.`, idea, category)
}

func roadmapPrompt(req AnalysisRequest) string {
	return fmt.Sprintf(`Create a detailed 6-month startup roadmap for: "%s" in %s category with ₹%s budget and %s experience.

Provide 4 phases with specific, actionable tasks. Format as JSON:
[
  {"phase": "Phase 1", "title": "...", "duration": "Weeks 1-4", "tasks": ["task1", "task2", ...], "status": "current"},
  {"phase": "Phase 2", "title": "...", "duration": "Weeks 5-8", "tasks": [...], "status": "upcoming"},
  ...
]`, req.Idea, req.Category, req.Budget, req.Experience)
}

func ideasPrompt(category string) string {
	return fmt.Sprintf(`Generate 3 unique, innovative startup ideas for the %s category.

For each idea provide:
- Title (creative and catchy)
- Description (2-3 sentences explaining the concept)
- Difficulty level (Beginner/Intermediate/Advanced)
- Investment range in Indian Rupees
- Market size (Small/Medium/Large/Growing)

Make these ideas fresh, specific, and actionable. Focus on current market trends and gaps.
Format as JSON array:
[{
  "title": "...",
  "description": "...",
  "difficulty": "...",
  "investment": "₹...",
  "marketSize": "..."
}]`, category)
}

// chatPrompt builds the mentor prompt. With a stored startup idea it carries
// the full session context: idea fields, analysis excerpts and the last three
// chat turns with responses truncated to 100 characters. Without one it asks
// for general advice plus a nudge toward running an analysis.
func chatPrompt(message string, rec sessions.Record) string {
	if rec.StartupIdea == nil {
		return fmt.Sprintf(`You are an expert startup mentor. The user hasn't analyzed their startup idea yet.

USER'S QUESTION: %s

Provide helpful general startup advice, but also encourage them to analyze their startup idea on the Dashboard for personalized guidance. Keep it under 150 words.

Your response:`, message)
	}

	idea := rec.StartupIdea
	var b strings.Builder
	fmt.Fprintf(&b, `You are an expert startup mentor. Here is the user's complete startup context:

STARTUP DETAILS:
- Category: %s
- Budget: ₹%s
- Experience Level: %s
- Startup Idea: %s
- Analysis Date: %s`, idea.Category, idea.Budget, idea.Experience, idea.Idea, idea.AnalyzedAt.Format("2006-01-02T15:04:05Z07:00"))

	if analysis := rec.AnalysisResult; analysis != nil {
		b.WriteString("\n\nANALYSIS INSIGHTS:")
		if len(analysis.Recommendations) > 0 {
			top := analysis.Recommendations[0]
			fmt.Fprintf(&b, "\n- Top Recommendation: %s - %s", top.Title, top.Description)
		}
		if len(analysis.Competitors) > 0 {
			names := make([]string, 0, len(analysis.Competitors))
			for _, c := range analysis.Competitors {
				names = append(names, c.Name)
			}
			fmt.Fprintf(&b, "\n- Main Competitors: %s", strings.Join(names, ", "))
		}
		if analysis.RiskAssessment.Overall != "" {
			fmt.Fprintf(&b, "\n- Risk Level: %s", analysis.RiskAssessment.Overall)
		}
		if analysis.CoFounderProfile != nil {
			fmt.Fprintf(&b, "\n- Recommended Co-Founder: %s", analysis.CoFounderProfile.Role)
		}
	}

	if recent := lastChats(rec.ChatHistory, 3); len(recent) > 0 {
		b.WriteString("\n\nRECENT CONVERSATION:")
		for _, chat := range recent {
			fmt.Fprintf(&b, "\nUser: %s\nMentor: %s...", chat.Message, prefix(chat.Response, 100))
		}
	}

	fmt.Fprintf(&b, `

USER'S CURRENT QUESTION: %s

INSTRUCTIONS:
- Provide specific, actionable advice tailored to their %s startup
- Reference their idea, budget (₹%s), and experience level (%s) in your response
- Be conversational, supportive, and practical
- Keep responses focused and under 200 words
- If they ask about competitors, roadmap, or specific aspects, use the analysis data above
- Always end with a follow-up question to keep the conversation going

Your response:`, message, idea.Category, idea.Budget, idea.Experience)

	return b.String()
}

func lastChats(history []sessions.ChatMessage, n int) []sessions.ChatMessage {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
