package advisor

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"advisor-backend/internal/sessions"
)

func TestAnalysisPromptInterpolatesVerbatim(t *testing.T) {
	req := AnalysisRequest{
		Category:   "tech",
		Budget:     "300000",
		Experience: "Intermediate",
		Idea:       `an app with "quotes" and {braces} in the description`,
	}
	prompt := analysisPrompt(req)

	if !strings.Contains(prompt, req.Idea) {
		t.Fatal("idea text must be embedded verbatim")
	}
	if !strings.Contains(prompt, "Budget: ₹300000") {
		t.Fatal("budget line missing")
	}
	if !strings.Contains(prompt, `"recommendations"`) || !strings.Contains(prompt, `"nextSteps"`) {
		t.Fatal("output format example missing")
	}
}

func TestChatPromptWithoutIdeaIsGeneric(t *testing.T) {
	prompt := chatPrompt("how do I start?", sessions.Record{UserID: "user-1"})

	if !strings.Contains(prompt, "hasn't analyzed their startup idea yet") {
		t.Fatalf("expected generic prompt, got %q", prompt)
	}
	if !strings.Contains(prompt, "how do I start?") {
		t.Fatal("user question missing")
	}
}

func TestChatPromptCarriesSessionContext(t *testing.T) {
	rec := sessions.Record{
		UserID: "user-1",
		StartupIdea: &sessions.StartupIdea{
			Category:   "saas",
			Budget:     "400000",
			Experience: "Expert",
			Idea:       "billing for tutors",
			AnalyzedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		AnalysisResult: &sessions.AnalysisResult{
			Recommendations: []sessions.Recommendation{{Title: "Go niche", Description: "own one vertical"}},
			Competitors:     []sessions.Competitor{{Name: "BigCo"}, {Name: "SmallCo"}},
			RiskAssessment:  sessions.RiskAssessment{Overall: "Low"},
			CoFounderProfile: &sessions.CoFounderProfile{
				Role: "Growth & Marketing Co-Founder",
			},
		},
	}
	for i := 0; i < 5; i++ {
		rec.ChatHistory = append(rec.ChatHistory, sessions.ChatMessage{
			Message:  fmt.Sprintf("q%d", i),
			Response: strings.Repeat("x", 150),
		})
	}

	prompt := chatPrompt("what next?", rec)

	if !strings.Contains(prompt, "- Category: saas") || !strings.Contains(prompt, "Budget: ₹400000") {
		t.Fatal("startup details missing")
	}
	if !strings.Contains(prompt, "Top Recommendation: Go niche - own one vertical") {
		t.Fatal("top recommendation excerpt missing")
	}
	if !strings.Contains(prompt, "Main Competitors: BigCo, SmallCo") {
		t.Fatal("competitor excerpt missing")
	}
	if !strings.Contains(prompt, "Risk Level: Low") {
		t.Fatal("risk excerpt missing")
	}
	if !strings.Contains(prompt, "Recommended Co-Founder: Growth & Marketing Co-Founder") {
		t.Fatal("co-founder excerpt missing")
	}

	// Only the last 3 turns, responses truncated to 100 chars.
	if strings.Contains(prompt, "User: q0") || strings.Contains(prompt, "User: q1") {
		t.Fatal("expected only the last 3 turns in context")
	}
	if !strings.Contains(prompt, "User: q2") || !strings.Contains(prompt, "User: q4") {
		t.Fatal("recent turns missing from context")
	}
	if !strings.Contains(prompt, strings.Repeat("x", 100)+"...") {
		t.Fatal("responses should be truncated to 100 chars")
	}
	if strings.Contains(prompt, strings.Repeat("x", 101)) {
		t.Fatal("response truncation exceeded 100 chars")
	}
}

func TestIdeasPromptNamesCategory(t *testing.T) {
	prompt := ideasPrompt("ecommerce")
	if !strings.Contains(prompt, "for the ecommerce category") {
		t.Fatalf("category missing: %q", prompt)
	}
	if !strings.Contains(prompt, `"marketSize"`) {
		t.Fatal("output format example missing")
	}
}
