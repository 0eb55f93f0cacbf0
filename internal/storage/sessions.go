package storage

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

// RecordSession stores a finished session and its score in one
// transaction. It implements session.Recorder.
func (s *Store) RecordSession(rec session.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(
		`INSERT INTO sessions (id, game_id, outcome, score, points, streak, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.GameID, rec.Outcome.String(), rec.Score, rec.Points, rec.Streak,
		rec.EndedAt.UTC().Format(sessionTime),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session: %w", err)
	}
	if _, err := saveScore(tx, rec.GameID, rec.Score); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit session: %w", err)
	}
	return nil
}

// RecentSessions returns the latest sessions, newest first. An empty
// gameID lists every game.
func (s *Store) RecentSessions(gameID string, limit int) ([]session.Record, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, outcome, score, points, streak, ended_at
		 FROM sessions
		 WHERE ? = '' OR game_id = ?
		 ORDER BY ended_at DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []session.Record
	for rows.Next() {
		var (
			rec     session.Record
			id      string
			outcome string
			endedAt any
		)
		if err := rows.Scan(&id, &rec.GameID, &outcome, &rec.Score, &rec.Points, &rec.Streak, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan session: %w", err)
		}
		rec.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("storage: bad session id %q: %w", id, err)
		}
		rec.Outcome = parseOutcome(outcome)
		rec.EndedAt = parseTime(endedAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// WinCount returns how many sessions of gameID were won.
func (s *Store) WinCount(gameID string) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sessions WHERE game_id = ? AND outcome = ?",
		gameID, core.OutcomeWin.String(),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count wins: %w", err)
	}
	return n, nil
}

func parseOutcome(s string) core.Outcome {
	switch s {
	case core.OutcomeWin.String():
		return core.OutcomeWin
	case core.OutcomeLose.String():
		return core.OutcomeLose
	}
	return core.OutcomeNone
}
