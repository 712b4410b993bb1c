package sessions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Init(ctx context.Context, userID string) error {
	const query = `
INSERT INTO session_records (user_id, updated_at)
VALUES ($1, now())
ON CONFLICT (user_id) DO NOTHING`
	_, err := r.DB.ExecContext(ctx, query, userID)
	return err
}

func (r *PGRepo) Get(ctx context.Context, userID string) (Record, error) {
	const query = `
SELECT user_id, startup_idea, analysis_result
FROM session_records
WHERE user_id = $1
LIMIT 1`
	var rec Record
	var ideaRaw, resultRaw []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&rec.UserID, &ideaRaw, &resultRaw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	if len(ideaRaw) > 0 {
		var idea StartupIdea
		if err := json.Unmarshal(ideaRaw, &idea); err != nil {
			return Record{}, err
		}
		rec.StartupIdea = &idea
	}
	if len(resultRaw) > 0 {
		var result AnalysisResult
		if err := json.Unmarshal(resultRaw, &result); err != nil {
			return Record{}, err
		}
		rec.AnalysisResult = &result
	}

	history, err := r.chatHistory(ctx, userID)
	if err != nil {
		return Record{}, err
	}
	rec.ChatHistory = history
	return rec, nil
}

func (r *PGRepo) SaveIdea(ctx context.Context, userID string, idea StartupIdea) error {
	payload, err := json.Marshal(idea)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO session_records (user_id, startup_idea, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (user_id) DO UPDATE SET
  startup_idea = EXCLUDED.startup_idea,
  updated_at = now()`
	_, err = r.DB.ExecContext(ctx, query, userID, payload)
	return err
}

func (r *PGRepo) SaveAnalysis(ctx context.Context, userID string, result AnalysisResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO session_records (user_id, analysis_result, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (user_id) DO UPDATE SET
  analysis_result = EXCLUDED.analysis_result,
  updated_at = now()`
	_, err = r.DB.ExecContext(ctx, query, userID, payload)
	return err
}

func (r *PGRepo) AppendChat(ctx context.Context, userID string, msg ChatMessage) error {
	ts := msg.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	const insert = `
INSERT INTO chat_messages (id, user_id, message, response, created_at)
VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.DB.ExecContext(ctx, insert, uuid.NewString(), userID, msg.Message, msg.Response, ts); err != nil {
		return err
	}

	// Evict entries beyond the cap, oldest first. seq breaks ties between
	// messages inserted within the same timestamp.
	const trim = `
DELETE FROM chat_messages
WHERE user_id = $1
  AND id NOT IN (
    SELECT id FROM chat_messages
    WHERE user_id = $1
    ORDER BY created_at DESC, seq DESC
    LIMIT $2
  )`
	_, err := r.DB.ExecContext(ctx, trim, userID, ChatHistoryCap)
	return err
}

func (r *PGRepo) chatHistory(ctx context.Context, userID string) ([]ChatMessage, error) {
	const query = `
SELECT message, response, created_at
FROM chat_messages
WHERE user_id = $1
ORDER BY created_at ASC, seq ASC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []ChatMessage{}
	for rows.Next() {
		var msg ChatMessage
		if err := rows.Scan(&msg.Message, &msg.Response, &msg.Timestamp); err != nil {
			return nil, err
		}
		history = append(history, msg)
	}
	return history, rows.Err()
}
