package scoring

import (
	"testing"
)

// TestPoints checks the flat table for rows cleared in one lock.
func TestPoints(t *testing.T) {
	tests := []struct {
		rows   int
		expect int
	}{
		{0, 0},
		{1, 50},
		{2, 100},
		{3, 300},
		{4, 1000},
		{5, 1000},
	}

	for _, tt := range tests {
		if got := Points(tt.rows); got != tt.expect {
			t.Errorf("Points(%d) = %d, expected %d", tt.rows, got, tt.expect)
		}
	}
}

// TestAddClear checks that clears accumulate and are never combined.
func TestAddClear(t *testing.T) {
	s := InitScoring(nil)

	if got := s.AddClear(0); got != 0 {
		t.Errorf("no rows: expected 0 points, got %d", got)
	}
	if s.CurrentScore != 0 {
		t.Errorf("expected score 0, got %d", s.CurrentScore)
	}

	s.AddClear(1)
	s.AddClear(4)
	if s.CurrentScore != 1050 {
		t.Errorf("expected score 1050, got %d", s.CurrentScore)
	}
	if s.LinesCleared != 5 {
		t.Errorf("expected 5 lines, got %d", s.LinesCleared)
	}

	// Four single clears are worth far less than one four-row clear.
	singles := InitScoring(nil)
	for i := 0; i < 4; i++ {
		singles.AddClear(1)
	}
	if singles.CurrentScore != 200 {
		t.Errorf("expected 200 for four singles, got %d", singles.CurrentScore)
	}
}

// TestFinishRecordsHistory verifies that finished runs land in the shared history.
func TestFinishRecordsHistory(t *testing.T) {
	history := &ScoreHistory{}

	first := InitScoring(history)
	first.AddClear(2)
	first.AddLock()
	first.Finish()
	first.Finish() // second call is a no-op

	if history.Attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", history.Attempts)
	}
	if history.Entries[0].Score != 100 || history.Entries[0].Pieces != 1 {
		t.Errorf("unexpected entry: %+v", history.Entries[0])
	}

	second := InitScoring(history)
	second.AddClear(1)
	if second.GotHighScore() {
		t.Error("50 should not beat a previous 100")
	}
	if second.BestScore() != 100 {
		t.Errorf("expected best score 100, got %d", second.BestScore())
	}
	second.AddClear(3)
	if !second.GotHighScore() {
		t.Error("350 should beat a previous 100")
	}
	second.Finish()

	high := second.GetHighScore()
	if high == nil || high.Score != 350 {
		t.Errorf("expected high score 350, got %v", high)
	}
	if second.GetAttempts() != 2 {
		t.Errorf("expected 2 attempts, got %d", second.GetAttempts())
	}
}

// TestGetNScoreEntries verifies ordering and truncation.
func TestGetNScoreEntries(t *testing.T) {
	history := &ScoreHistory{}
	for _, score := range []int{100, 300, 200} {
		history.Record(ScoreHistoryEntry{Score: score})
	}

	entries := history.GetNScoreEntries(2)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Score != 300 || entries[1].Score != 200 {
		t.Errorf("unexpected order: %+v", entries)
	}

	all := history.GetNScoreEntries(10)
	if len(all) != 3 {
		t.Errorf("expected 3 entries, got %d", len(all))
	}
	if history.Entries[0].Score != 100 {
		t.Error("GetNScoreEntries must not reorder the history")
	}
}

// TestFirstRunIsHighScore mirrors the vacuous case: with no history any score counts.
func TestFirstRunIsHighScore(t *testing.T) {
	s := InitScoring(&ScoreHistory{})
	if !s.GotHighScore() {
		t.Error("first run should count as a high score")
	}
	if s.GetHighScore() != nil {
		t.Error("expected no recorded high score yet")
	}
}
