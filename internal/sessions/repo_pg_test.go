package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoSaveIdeaUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	idea := StartupIdea{
		Category:   "saas",
		Budget:     "400000",
		Experience: "Intermediate",
		Idea:       "subscription billing for tutors",
		AnalyzedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO session_records").
		WithArgs("user-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveIdea(context.Background(), "user-1", idea); err != nil {
		t.Fatalf("SaveIdea: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoAppendChatTrimsBeyondCap(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	msg := ChatMessage{Message: "how do I validate demand", Response: "talk to customers", Timestamp: time.Now().UTC()}

	mock.ExpectExec("INSERT INTO chat_messages").
		WithArgs(sqlmock.AnyArg(), "user-1", msg.Message, msg.Response, msg.Timestamp).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM chat_messages").
		WithArgs("user-1", ChatHistoryCap).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.AppendChat(context.Background(), "user-1", msg); err != nil {
		t.Fatalf("AppendChat: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoChatOrderingBreaksTimestampTies(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	msg := ChatMessage{Message: "q", Response: "a", Timestamp: time.Now().UTC()}

	// Same-second bursts share created_at; seq keeps eviction and reads FIFO.
	mock.ExpectExec("INSERT INTO chat_messages").
		WithArgs(sqlmock.AnyArg(), "user-1", msg.Message, msg.Response, msg.Timestamp).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("ORDER BY created_at DESC, seq DESC").
		WithArgs("user-1", ChatHistoryCap).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.AppendChat(context.Background(), "user-1", msg); err != nil {
		t.Fatalf("AppendChat: %v", err)
	}

	mock.ExpectQuery("SELECT user_id, startup_idea, analysis_result").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "startup_idea", "analysis_result"}).
			AddRow("user-1", nil, nil))
	mock.ExpectQuery("ORDER BY created_at ASC, seq ASC").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"message", "response", "created_at"}))

	if _, err := repo.Get(context.Background(), "user-1"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetMissingUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT user_id, startup_idea, analysis_result").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "startup_idea", "analysis_result"}))

	if _, err := repo.Get(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetDecodesRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	ideaJSON := []byte(`{"category":"tech","budget":"300000","experience":"Beginner","idea":"ai notes","analyzedAt":"2026-01-02T03:04:05Z"}`)
	resultJSON := []byte(`{"recommendations":[],"competitors":[],"riskAssessment":{"overall":"Medium","factors":[]},"marketOpportunity":"Growing","nextSteps":[]}`)

	mock.ExpectQuery("SELECT user_id, startup_idea, analysis_result").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "startup_idea", "analysis_result"}).
			AddRow("user-1", ideaJSON, resultJSON))
	mock.ExpectQuery("SELECT message, response, created_at").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"message", "response", "created_at"}).
			AddRow("q1", "a1", time.Date(2026, 1, 2, 3, 5, 0, 0, time.UTC)))

	rec, err := repo.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.StartupIdea == nil || rec.StartupIdea.Category != "tech" {
		t.Fatalf("unexpected idea: %+v", rec.StartupIdea)
	}
	if rec.AnalysisResult == nil || rec.AnalysisResult.RiskAssessment.Overall != "Medium" {
		t.Fatalf("unexpected result: %+v", rec.AnalysisResult)
	}
	if len(rec.ChatHistory) != 1 || rec.ChatHistory[0].Message != "q1" {
		t.Fatalf("unexpected chat history: %+v", rec.ChatHistory)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
