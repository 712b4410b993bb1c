package advisor

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"advisor-backend/internal/llm"
	"advisor-backend/internal/sessions"
	"advisor-backend/internal/shared/metrics"
	"advisor-backend/internal/shared/telemetry"
)

// Service runs the advisory pipeline: prompt building, the gateway call,
// normalization and the fallback tiers, plus session persistence.
type Service struct {
	LLM      llm.Client
	Sessions sessions.Repo
	Gen      *Generator
}

// NewService constructs a Service sharing one gateway client between the
// primary path and the fallback generator.
func NewService(client llm.Client, repo sessions.Repo) *Service {
	return &Service{LLM: client, Sessions: repo, Gen: &Generator{LLM: client}}
}

// Analyze stores the submitted idea, runs the analysis pipeline and stores
// the result. The returned bool reports whether the fallback generator
// produced the result.
func (s *Service) Analyze(ctx context.Context, userID string, req AnalysisRequest) (sessions.AnalysisResult, sessions.StartupIdea, bool, error) {
	idea := sessions.StartupIdea{
		Category:   req.Category,
		Budget:     req.Budget,
		Experience: req.Experience,
		Idea:       req.Idea,
		AnalyzedAt: time.Now().UTC(),
	}
	if err := s.Sessions.SaveIdea(ctx, userID, idea); err != nil {
		return sessions.AnalysisResult{}, idea, false, err
	}

	start := time.Now()
	raw, err := s.LLM.Complete(ctx, analysisPrompt(req))
	metrics.ObserveGatewayDurationMs(float64(time.Since(start).Milliseconds()))

	fallbackUsed := false
	var result sessions.AnalysisResult
	if err == nil {
		result, err = parseAnalysis(raw)
	}
	if err != nil {
		result = s.Gen.Analysis(ctx, req)
		fallbackUsed = true
	}

	if err := s.Sessions.SaveAnalysis(ctx, userID, result); err != nil {
		return sessions.AnalysisResult{}, idea, fallbackUsed, err
	}

	metrics.IncAnalysisRequests()
	if fallbackUsed {
		metrics.IncFallbackActivations()
	}
	telemetry.Info("analysis.complete", map[string]any{
		"userId":       userID,
		"category":     req.Category,
		"fallbackUsed": fallbackUsed,
	})
	return result, idea, fallbackUsed, nil
}

// Chat runs one mentor turn. Gateway faults never surface; they are replaced
// by the keyword-matched canned reply and the turn still succeeds.
func (s *Service) Chat(ctx context.Context, userID string, req ChatRequest) (ChatTurn, bool, error) {
	rec, err := s.Session(ctx, userID)
	if err != nil {
		return ChatTurn{}, false, err
	}

	start := time.Now()
	raw, err := s.LLM.Complete(ctx, chatPrompt(req.Message, rec))
	metrics.ObserveGatewayDurationMs(float64(time.Since(start).Milliseconds()))

	fallbackUsed := false
	response := strings.TrimSpace(raw)
	if err != nil || response == "" {
		response = chatFallback(req.Message, rec)
		fallbackUsed = true
	}

	now := time.Now().UTC()
	msg := sessions.ChatMessage{Message: req.Message, Response: response, Timestamp: now}
	if err := s.Sessions.AppendChat(ctx, userID, msg); err != nil {
		return ChatTurn{}, fallbackUsed, err
	}

	metrics.IncChatTurns()
	if fallbackUsed {
		metrics.IncFallbackActivations()
	}

	id := req.ConversationID
	if id == "" {
		id = uuid.NewString()
	}
	return ChatTurn{
		ID:        id,
		Message:   req.Message,
		Response:  response,
		Timestamp: now.Format(time.RFC3339),
	}, fallbackUsed, nil
}

// History returns the last n chat turns, oldest first.
func (s *Service) History(ctx context.Context, userID string, n int) ([]sessions.ChatMessage, error) {
	rec, err := s.Session(ctx, userID)
	if err != nil {
		return nil, err
	}
	return lastChats(rec.ChatHistory, n), nil
}

// GenerateIdeas returns 3 ideas for the category; bool reports whether the
// curated template covered for the gateway.
func (s *Service) GenerateIdeas(ctx context.Context, category string) ([]Idea, bool) {
	ideas, fallbackUsed := s.Gen.Ideas(ctx, category)
	metrics.IncIdeaGenerations()
	if fallbackUsed {
		metrics.IncFallbackActivations()
	}
	return ideas, fallbackUsed
}

// Session loads the user's session record; a user without one gets an empty
// record rather than an error.
func (s *Service) Session(ctx context.Context, userID string) (sessions.Record, error) {
	rec, err := s.Sessions.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			return sessions.Record{UserID: userID, ChatHistory: []sessions.ChatMessage{}}, nil
		}
		return sessions.Record{}, err
	}
	return rec, nil
}
