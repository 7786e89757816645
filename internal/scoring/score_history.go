package scoring

import (
	"sort"
)

// ScoreHistory holds the runs finished since the program started. It is
// kept in memory only.
type ScoreHistory struct {
	Entries        []ScoreHistoryEntry
	HighScoreEntry *ScoreHistoryEntry
	Attempts       int
}

// ScoreHistoryEntry represents a single finished run.
type ScoreHistoryEntry struct {
	Score     int
	Lines     int
	Pieces    int
	Timestamp string
}

// Record appends a finished run and updates the high score.
func (sh *ScoreHistory) Record(entry ScoreHistoryEntry) {
	sh.Entries = append(sh.Entries, entry)
	sh.Attempts++
	if sh.HighScoreEntry == nil || entry.Score > sh.HighScoreEntry.Score {
		e := entry
		sh.HighScoreEntry = &e
	}
}

// GetHighScoreEntry returns the highest score entry recorded so far.
func (sh *ScoreHistory) GetHighScoreEntry() *ScoreHistoryEntry {
	if sh == nil {
		return nil
	}
	return sh.HighScoreEntry
}

// GetNScoreEntries returns the top N score entries from the history, sorted by score.
func (sh *ScoreHistory) GetNScoreEntries(n int) []ScoreHistoryEntry {
	// Make a copy to avoid modifying the original slice.
	entriesCopy := make([]ScoreHistoryEntry, len(sh.Entries))
	copy(entriesCopy, sh.Entries)

	sort.SliceStable(entriesCopy, func(i, j int) bool {
		return entriesCopy[i].Score > entriesCopy[j].Score
	})

	if len(entriesCopy) < n {
		return entriesCopy
	}
	return entriesCopy[:n]
}
