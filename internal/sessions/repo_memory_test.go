package sessions

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestMemoryRepoInitCreatesEmptyRecord(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Init(ctx, "user-1"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	rec, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.StartupIdea != nil || rec.AnalysisResult != nil {
		t.Fatal("expected empty record")
	}
	if len(rec.ChatHistory) != 0 {
		t.Fatalf("expected empty chat history, got %d entries", len(rec.ChatHistory))
	}
}

func TestMemoryRepoGetUnknownUser(t *testing.T) {
	repo := NewMemoryRepo()
	if _, err := repo.Get(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoSaveIdeaOverwrites(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	first := StartupIdea{Category: "tech", Budget: "300000", Experience: "Intermediate", Idea: "first", AnalyzedAt: time.Now().UTC()}
	second := StartupIdea{Category: "saas", Budget: "600000", Experience: "Expert", Idea: "second", AnalyzedAt: time.Now().UTC()}

	if err := repo.SaveIdea(ctx, "user-1", first); err != nil {
		t.Fatalf("SaveIdea: %v", err)
	}
	if err := repo.SaveIdea(ctx, "user-1", second); err != nil {
		t.Fatalf("SaveIdea: %v", err)
	}

	rec, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.StartupIdea == nil || rec.StartupIdea.Category != "saas" {
		t.Fatalf("expected second idea stored, got %+v", rec.StartupIdea)
	}
}

func TestMemoryRepoChatHistoryCapFIFO(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	for i := 0; i < ChatHistoryCap+10; i++ {
		msg := ChatMessage{
			Message:   fmt.Sprintf("question %d", i),
			Response:  fmt.Sprintf("answer %d", i),
			Timestamp: time.Now().UTC(),
		}
		if err := repo.AppendChat(ctx, "user-1", msg); err != nil {
			t.Fatalf("AppendChat: %v", err)
		}
	}

	rec, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(rec.ChatHistory) != ChatHistoryCap {
		t.Fatalf("expected history capped at %d, got %d", ChatHistoryCap, len(rec.ChatHistory))
	}
	if rec.ChatHistory[0].Message != "question 10" {
		t.Fatalf("expected oldest entries evicted first, head is %q", rec.ChatHistory[0].Message)
	}
	if rec.ChatHistory[len(rec.ChatHistory)-1].Message != fmt.Sprintf("question %d", ChatHistoryCap+9) {
		t.Fatalf("expected newest entry retained, tail is %q", rec.ChatHistory[len(rec.ChatHistory)-1].Message)
	}
}

func TestMemoryRepoGetReturnsCopy(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.AppendChat(ctx, "user-1", ChatMessage{Message: "q", Response: "a"}); err != nil {
		t.Fatalf("AppendChat: %v", err)
	}
	rec, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	rec.ChatHistory[0].Message = "mutated"

	again, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again.ChatHistory[0].Message != "q" {
		t.Fatal("expected stored record unaffected by caller mutation")
	}
}
