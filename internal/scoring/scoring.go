package scoring

import (
	"time"
)

// Scoring tracks the score of a single run and records it in the shared
// history when the run ends.
type Scoring struct {
	// public
	CurrentScore int
	LinesCleared int
	PiecesLocked int
	// private
	history      *ScoreHistory
	previousHigh *ScoreHistoryEntry
	scoreTable   map[int]int
	current      *ScoreHistoryEntry
	finished     bool
}

// InitScoring starts a new run whose result will be recorded in history.
// A nil history gives the run a private one.
func InitScoring(history *ScoreHistory) *Scoring {
	if history == nil {
		history = &ScoreHistory{}
	}
	s := &Scoring{
		history:    history,
		scoreTable: getScoreTable(),
	}
	if high := history.GetHighScoreEntry(); high != nil {
		h := *high
		s.previousHigh = &h
	}
	s.current = &ScoreHistoryEntry{
		Timestamp: time.Now().Format(time.RFC3339),
	}
	return s
}

// Points returns the award for clearing rows in a single lock.
func Points(rows int) int {
	table := getScoreTable()
	if rows > maxTableRows {
		rows = maxTableRows
	}
	return table[rows]
}

// AddClear awards the points for rows cleared by one lock and returns them.
func (s *Scoring) AddClear(rows int) int {
	if rows <= 0 {
		return 0
	}
	if rows > maxTableRows {
		rows = maxTableRows
	}
	points := s.scoreTable[rows]
	s.CurrentScore += points
	s.LinesCleared += rows
	s.sync()
	return points
}

// AddLock counts a piece transferred to the board.
func (s *Scoring) AddLock() {
	s.PiecesLocked++
	s.sync()
}

func (s *Scoring) sync() {
	if s.current == nil {
		return
	}
	s.current.Score = s.CurrentScore
	s.current.Lines = s.LinesCleared
	s.current.Pieces = s.PiecesLocked
}

// Finish records the run in the history. Later calls do nothing.
func (s *Scoring) Finish() {
	if s.finished || s.current == nil {
		return
	}
	s.finished = true
	s.sync()
	s.history.Record(*s.current)
}

// Accessor methods for score history, delegating to the history object.
func (s *Scoring) GetHighScore() *ScoreHistoryEntry {
	return s.history.GetHighScoreEntry()
}

func (s *Scoring) GetAttempts() int {
	return s.history.Attempts
}

func (s *Scoring) GetNScoreEntries(n int) []ScoreHistoryEntry {
	return s.history.GetNScoreEntries(n)
}

// GotHighScore reports whether this run matches or beats every run that
// finished before it started.
func (s *Scoring) GotHighScore() bool {
	if s.previousHigh == nil {
		return true
	}
	return s.CurrentScore >= s.previousHigh.Score
}

// BestScore is the higher of the recorded high score and the running score.
func (s *Scoring) BestScore() int {
	best := s.CurrentScore
	if high := s.history.GetHighScoreEntry(); high != nil && high.Score > best {
		best = high.Score
	}
	return best
}

const maxTableRows = 4

// getScoreTable returns the points for each number of rows cleared at once.
func getScoreTable() map[int]int {
	return map[int]int{
		0: 0,
		1: 50,
		2: 100,
		3: 300,
		4: 1000,
	}
}
