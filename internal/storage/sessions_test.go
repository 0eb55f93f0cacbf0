package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/session"
)

var _ session.Recorder = (*Store)(nil)

func TestRecordSession(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	recs := []session.Record{
		{ID: uuid.New(), GameID: "simon", Outcome: core.OutcomeWin, Score: 60, Points: 30, Streak: "incremented", EndedAt: base},
		{ID: uuid.New(), GameID: "simon", Outcome: core.OutcomeLose, Score: 20, Points: 2, Streak: "reset", EndedAt: base.Add(time.Minute)},
		{ID: uuid.New(), GameID: "tron", Outcome: core.OutcomeWin, Score: 3, Points: 25, Streak: "incremented", EndedAt: base.Add(2 * time.Minute)},
	}
	for _, rec := range recs {
		if err := store.RecordSession(rec); err != nil {
			t.Fatalf("RecordSession() failed: %v", err)
		}
	}

	simon, err := store.RecentSessions("simon", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(simon) != 2 {
		t.Fatalf("Expected 2 simon sessions, got %d", len(simon))
	}
	if simon[0].ID != recs[1].ID || simon[0].Outcome != core.OutcomeLose {
		t.Errorf("newest session = %+v, expected the loss", simon[0])
	}
	if !simon[1].EndedAt.Equal(base) {
		t.Errorf("EndedAt = %v, expected %v", simon[1].EndedAt, base)
	}

	all, _ := store.RecentSessions("", 10)
	if len(all) != 3 || all[0].GameID != "tron" {
		t.Errorf("RecentSessions(all) = %v", all)
	}

	if wins, _ := store.WinCount("simon"); wins != 1 {
		t.Errorf("WinCount(simon) = %d, expected 1", wins)
	}

	// Sessions also feed the score history.
	if high, _ := store.HighScore("simon"); high != 60 {
		t.Errorf("HighScore(simon) = %d, expected 60", high)
	}
}

func TestRecordSessionDuplicateID(t *testing.T) {
	store := openTestStore(t)
	rec := session.Record{ID: uuid.New(), GameID: "memory", Outcome: core.OutcomeWin, Score: 5, Streak: "incremented", EndedAt: time.Now()}

	if err := store.RecordSession(rec); err != nil {
		t.Fatalf("RecordSession() failed: %v", err)
	}
	if err := store.RecordSession(rec); err == nil {
		t.Error("duplicate session id should fail")
	}
	if scores, _ := store.AllScores("memory"); len(scores) != 1 {
		t.Errorf("failed session should not leave a score row, got %d", len(scores))
	}
}
