package advisor

// AnalysisRequest is the analyze-idea request body.
type AnalysisRequest struct {
	Category   string `json:"category"`
	Budget     string `json:"budget"`
	Experience string `json:"experience"`
	Idea       string `json:"idea"`
}

// ChatRequest is the mentor chat request body.
type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId"`
}

// IdeaGenRequest is the idea generation request body.
type IdeaGenRequest struct {
	Category string `json:"category"`
}

// Idea is one generated startup idea.
type Idea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Investment  string `json:"investment"`
	MarketSize  string `json:"marketSize"`
}

// ChatTurn is the response payload for one mentor chat exchange.
type ChatTurn struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}
