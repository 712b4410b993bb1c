package advisor

import (
	"encoding/json"
	"errors"
	"strings"

	"advisor-backend/internal/sessions"
)

// ErrNoStructuredData means the AI text carried no usable JSON payload and
// the caller should route to the fallback generator.
var ErrNoStructuredData = errors.New("no structured data in ai response")

// extractObject returns the substring from the first '{' to the last '}'.
func extractObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

// extractArray returns the substring from the first '[' to the last ']'.
func extractArray(raw string) (string, bool) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

// parseAnalysis recovers an AnalysisResult from free-form AI text. Decoding
// into the typed result is the schema check: a parseable object whose fields
// carry the wrong types is treated the same as a parse failure. An empty
// object decodes cleanly and is accepted as-is.
func parseAnalysis(raw string) (sessions.AnalysisResult, error) {
	payload, ok := extractObject(raw)
	if !ok {
		return sessions.AnalysisResult{}, ErrNoStructuredData
	}
	var result sessions.AnalysisResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return sessions.AnalysisResult{}, ErrNoStructuredData
	}
	return result, nil
}

// parseRoadmap recovers a roadmap array. Unlike analysis, an empty array is
// rejected so the caller falls back to the fixed template.
func parseRoadmap(raw string) ([]sessions.RoadmapPhase, error) {
	payload, ok := extractArray(raw)
	if !ok {
		return nil, ErrNoStructuredData
	}
	var roadmap []sessions.RoadmapPhase
	if err := json.Unmarshal([]byte(payload), &roadmap); err != nil {
		return nil, ErrNoStructuredData
	}
	if len(roadmap) == 0 {
		return nil, ErrNoStructuredData
	}
	return roadmap, nil
}

// parseIdeas recovers a non-empty idea array.
func parseIdeas(raw string) ([]Idea, error) {
	payload, ok := extractArray(raw)
	if !ok {
		return nil, ErrNoStructuredData
	}
	var ideas []Idea
	if err := json.Unmarshal([]byte(payload), &ideas); err != nil {
		return nil, ErrNoStructuredData
	}
	if len(ideas) == 0 {
		return nil, ErrNoStructuredData
	}
	return ideas, nil
}
