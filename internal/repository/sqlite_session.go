package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"pathfinder/internal/db"
	"pathfinder/internal/domain"
)

// Stored timestamps keep nanosecond precision so a save/load round trip
// returns the session unchanged.
const timeLayout = time.RFC3339Nano

// SQLiteSessionStore implements SessionStore using a SQLite database.
type SQLiteSessionStore struct {
	db  *sql.DB
	uow db.UnitOfWork
}

// NewSQLiteSessionStore creates a new SQLiteSessionStore.
func NewSQLiteSessionStore(database *sql.DB) *SQLiteSessionStore {
	return &SQLiteSessionStore{
		db:  database,
		uow: db.NewSQLiteUnitOfWork(database),
	}
}

func (s *SQLiteSessionStore) Load(ctx context.Context, threadID string) (*domain.Session, error) {
	session := domain.NewSession(threadID)

	var planJSON sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT plan_json FROM sessions WHERE thread_id = ?`, threadID,
	).Scan(&planJSON)
	switch {
	case err == sql.ErrNoRows:
		// Get-or-create: an unknown thread yields an empty session.
		return session, nil
	case err != nil:
		return nil, fmt.Errorf("%w: loading session: %v", ErrUnavailable, err)
	}

	if planJSON.Valid && planJSON.String != "" {
		var plan domain.Roadmap
		if err := json.Unmarshal([]byte(planJSON.String), &plan); err != nil {
			return nil, fmt.Errorf("unmarshaling stored plan: %w", err)
		}
		session.CurrentPlan = &plan
	}

	history, err := s.loadHistory(ctx, threadID)
	if err != nil {
		return nil, err
	}
	session.History = history

	return session, nil
}

func (s *SQLiteSessionStore) loadHistory(ctx context.Context, threadID string) ([]domain.Turn, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT role, text, created_at FROM history WHERE thread_id = ? ORDER BY id`, threadID)
	if err != nil {
		return nil, fmt.Errorf("%w: loading history: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var history []domain.Turn
	for rows.Next() {
		var role, text, createdAtStr string
		if err := rows.Scan(&role, &text, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		createdAt, err := time.Parse(timeLayout, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing history created_at: %w", err)
		}
		history = append(history, domain.Turn{
			Role:      domain.Role(role),
			Text:      text,
			CreatedAt: createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating history: %v", ErrUnavailable, err)
	}
	return history, nil
}

func (s *SQLiteSessionStore) Save(ctx context.Context, session *domain.Session) error {
	var planJSON any
	if session.CurrentPlan != nil {
		data, err := json.Marshal(session.CurrentPlan)
		if err != nil {
			return fmt.Errorf("marshaling plan: %w", err)
		}
		planJSON = string(data)
	}

	now := time.Now().UTC().Format(timeLayout)

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO sessions (thread_id, plan_json, created_at, updated_at)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(thread_id) DO UPDATE SET plan_json = excluded.plan_json, updated_at = excluded.updated_at`,
			session.ThreadID, planJSON, now, now)
		if err != nil {
			return fmt.Errorf("upserting session: %w", err)
		}
		return s.saveHistory(ctx, tx, session)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// saveHistory appends the turns not yet on disk. The history is append-only,
// so rows already stored are a strict prefix of session.History; if a
// concurrent writer got ahead of this session's view, last-writer-wins
// applies and the thread's history is rewritten.
func (s *SQLiteSessionStore) saveHistory(ctx context.Context, tx db.DBTX, session *domain.Session) error {
	var stored int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM history WHERE thread_id = ?`, session.ThreadID,
	).Scan(&stored)
	if err != nil {
		return fmt.Errorf("counting history: %w", err)
	}

	start := stored
	if stored > len(session.History) {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM history WHERE thread_id = ?`, session.ThreadID); err != nil {
			return fmt.Errorf("rewriting history: %w", err)
		}
		start = 0
	}

	for _, turn := range session.History[start:] {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO history (thread_id, role, text, created_at) VALUES (?, ?, ?, ?)`,
			session.ThreadID, string(turn.Role), turn.Text, turn.CreatedAt.UTC().Format(timeLayout))
		if err != nil {
			return fmt.Errorf("appending history turn: %w", err)
		}
	}
	return nil
}
