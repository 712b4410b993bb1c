package advisor

import (
	"strings"
	"testing"
	"time"

	"advisor-backend/internal/sessions"
)

func recordWithIdea(experience, budget string) sessions.Record {
	return sessions.Record{
		UserID: "user-1",
		StartupIdea: &sessions.StartupIdea{
			Category:   "saas",
			Budget:     budget,
			Experience: experience,
			Idea:       "invoicing for freelancers",
			AnalyzedAt: time.Now().UTC(),
		},
	}
}

func TestChatFallbackContextualBranches(t *testing.T) {
	rec := recordWithIdea("Beginner", "150000")

	got := chatFallback("How do I find my first customers in this market?", rec)
	if !strings.Contains(got, "30-50 customer interviews") {
		t.Fatalf("market branch not taken: %q", got)
	}
	if !strings.Contains(got, "saas startup with ₹150000 budget") {
		t.Fatalf("expected personalized preamble: %q", got)
	}

	got = chatFallback("Should I build an MVP now?", rec)
	if !strings.Contains(got, "no-code tools or finding a technical co-founder") {
		t.Fatalf("beginner MVP variant not taken: %q", got)
	}

	got = chatFallback("How do I raise money from investors?", rec)
	if !strings.Contains(got, "bootstrapping and proving traction") {
		t.Fatalf("low-budget funding variant not taken: %q", got)
	}

	expert := recordWithIdea("Expert", "800000")
	got = chatFallback("Should I invest in growth now?", expert)
	if !strings.Contains(got, "solid budget to build an MVP") {
		t.Fatalf("high-budget funding variant not taken: %q", got)
	}

	got = chatFallback("Tell me something", rec)
	if !strings.Contains(got, "What's your biggest challenge right now?") {
		t.Fatalf("default branch not taken: %q", got)
	}
}

func TestChatFallbackGenericKeywordTable(t *testing.T) {
	rec := sessions.Record{UserID: "user-1"}

	got := chatFallback("hello there", rec)
	if !strings.Contains(got, "I'm your AI startup mentor") {
		t.Fatalf("greeting branch not taken: %q", got)
	}

	got = chatFallback("how should I approach pricing?", rec)
	if !strings.Contains(got, "pricing strategy") {
		t.Fatalf("pricing branch not taken: %q", got)
	}

	got = chatFallback("what about my runway?", rec)
	if !strings.Contains(got, "monthly burn rate") {
		t.Fatalf("financial branch not taken: %q", got)
	}
}

func TestChatFallbackNoIdeaInvitesAnalysis(t *testing.T) {
	rec := sessions.Record{UserID: "user-1"}

	got := chatFallback("wkhkjwh qqq", rec)
	if !strings.Contains(got, "analyze your startup idea on the Dashboard first") {
		t.Fatalf("expected Dashboard invitation, got %q", got)
	}
}

func TestChatFallbackNoIdeaEndsWithDashboardInvite(t *testing.T) {
	rec := sessions.Record{UserID: "user-1"}

	got := chatFallback("How do I find customers?", rec)
	if !strings.Contains(got, "ideal customer profile") {
		t.Fatalf("customer branch not taken: %q", got)
	}
	if !strings.HasSuffix(got, dashboardInvite) {
		t.Fatalf("customer reply does not end with the Dashboard invitation: %q", got)
	}

	// Every keyword branch closes with the invitation, not just the default.
	for _, message := range []string{
		"hello there",
		"how do I raise capital?",
		"who are my competitors?",
		"should I hire a cofounder?",
		"what features belong in the mvp?",
		"how should I set pricing?",
		"how do I validate my idea?",
		"does seo still work?",
		"how long is my runway?",
		"what's the plan for next quarter?",
	} {
		if got := chatFallback(message, rec); !strings.HasSuffix(got, dashboardInvite) {
			t.Fatalf("reply for %q does not end with the Dashboard invitation: %q", message, got)
		}
	}
}
