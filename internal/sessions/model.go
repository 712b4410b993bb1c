package sessions

import "time"

// ChatHistoryCap bounds per-user chat history; oldest entries are dropped first.
const ChatHistoryCap = 50

// StartupIdea is the user's last submitted idea, overwritten on resubmission.
type StartupIdea struct {
	Category   string    `json:"category"`
	Budget     string    `json:"budget"`
	Experience string    `json:"experience"`
	Idea       string    `json:"idea"`
	AnalyzedAt time.Time `json:"analyzedAt"`
}

// Recommendation is a single recommendation entry in an analysis result.
type Recommendation struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	ConfidenceScore int    `json:"confidenceScore"`
	RiskLevel       string `json:"riskLevel"`
}

// Competitor describes one competitor in the analysis.
type Competitor struct {
	Name        string `json:"name"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

// CoFounderProfile describes the recommended co-founder persona.
type CoFounderProfile struct {
	Role        string   `json:"role"`
	Personality string   `json:"personality"`
	Skills      []string `json:"skills"`
	Strength    string   `json:"strength"`
	Weakness    string   `json:"weakness"`
}

// RoadmapPhase is one phase of the generated execution roadmap.
type RoadmapPhase struct {
	Phase    string   `json:"phase"`
	Title    string   `json:"title"`
	Duration string   `json:"duration"`
	Tasks    []string `json:"tasks"`
	Status   string   `json:"status"`
}

// RiskAssessment summarizes overall risk and contributing factors.
type RiskAssessment struct {
	Overall string   `json:"overall"`
	Factors []string `json:"factors"`
}

// AnalysisResult is the structured output produced by either AI extraction
// or the deterministic fallback generator.
type AnalysisResult struct {
	Recommendations   []Recommendation  `json:"recommendations"`
	Competitors       []Competitor      `json:"competitors"`
	CoFounderProfile  *CoFounderProfile `json:"coFounderProfile,omitempty"`
	Roadmap           []RoadmapPhase    `json:"roadmap,omitempty"`
	RiskAssessment    RiskAssessment    `json:"riskAssessment"`
	MarketOpportunity string            `json:"marketOpportunity"`
	NextSteps         []string          `json:"nextSteps"`
}

// ChatMessage is one mentor chat turn.
type ChatMessage struct {
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// Record is the per-user session state. Lifetime is the process lifetime
// unless the Postgres repo is configured.
type Record struct {
	UserID         string          `json:"userId"`
	StartupIdea    *StartupIdea    `json:"startupIdea,omitempty"`
	AnalysisResult *AnalysisResult `json:"analysisResult,omitempty"`
	ChatHistory    []ChatMessage   `json:"chatHistory"`
}
