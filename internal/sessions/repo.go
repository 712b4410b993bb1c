package sessions

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "session not found" }

// Repo stores per-user session records. Implementations must keep the chat
// history FIFO-capped at ChatHistoryCap inside AppendChat.
type Repo interface {
	Init(ctx context.Context, userID string) error
	Get(ctx context.Context, userID string) (Record, error)
	SaveIdea(ctx context.Context, userID string, idea StartupIdea) error
	SaveAnalysis(ctx context.Context, userID string, result AnalysisResult) error
	AppendChat(ctx context.Context, userID string, msg ChatMessage) error
}
