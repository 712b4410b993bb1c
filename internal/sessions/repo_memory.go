package sessions

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	records map[string]*Record
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{records: make(map[string]*Record)}
}

func (r *MemoryRepo) Init(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[userID]; !ok {
		r.records[userID] = &Record{UserID: userID, ChatHistory: []ChatMessage{}}
	}
	return nil
}

func (r *MemoryRepo) Get(ctx context.Context, userID string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[userID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return cloneRecord(rec), nil
}

func (r *MemoryRepo) SaveIdea(ctx context.Context, userID string, idea StartupIdea) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.ensure(userID)
	rec.StartupIdea = &idea
	return nil
}

func (r *MemoryRepo) SaveAnalysis(ctx context.Context, userID string, result AnalysisResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.ensure(userID)
	rec.AnalysisResult = &result
	return nil
}

func (r *MemoryRepo) AppendChat(ctx context.Context, userID string, msg ChatMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.ensure(userID)
	rec.ChatHistory = append(rec.ChatHistory, msg)
	if len(rec.ChatHistory) > ChatHistoryCap {
		rec.ChatHistory = rec.ChatHistory[len(rec.ChatHistory)-ChatHistoryCap:]
	}
	return nil
}

// ensure must be called with the write lock held.
func (r *MemoryRepo) ensure(userID string) *Record {
	rec, ok := r.records[userID]
	if !ok {
		rec = &Record{UserID: userID, ChatHistory: []ChatMessage{}}
		r.records[userID] = rec
	}
	return rec
}

func cloneRecord(rec *Record) Record {
	out := Record{UserID: rec.UserID}
	if rec.StartupIdea != nil {
		idea := *rec.StartupIdea
		out.StartupIdea = &idea
	}
	if rec.AnalysisResult != nil {
		result := *rec.AnalysisResult
		out.AnalysisResult = &result
	}
	out.ChatHistory = append([]ChatMessage(nil), rec.ChatHistory...)
	return out
}
