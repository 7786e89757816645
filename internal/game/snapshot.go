package game

import (
	"go-tetris/internal/board"
	"go-tetris/internal/piece"
)

// Snapshot is a read-only copy of everything the presentation layer draws.
// It shares no memory with the live game.
type Snapshot struct {
	State string

	Blocks []board.Block

	Current      [4]piece.Cell
	CurrentKind  piece.Kind
	CurrentColor piece.Color

	// NextCells are the next piece's cells at the spawn position.
	NextKind  piece.Kind
	NextColor piece.Color
	NextCells [4]piece.Cell

	Score     int
	Lines     int
	Level     int
	BestScore int

	GameOver   bool
	HasStarted bool
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	s := g.State
	return Snapshot{
		State:        s.Name(),
		Blocks:       s.Board.Blocks(),
		Current:      s.Current.Cells(),
		CurrentKind:  s.Current.Kind(),
		CurrentColor: s.Current.Color(),
		NextKind:     s.Next.Kind(),
		NextColor:    s.Next.Color(),
		NextCells:    piece.Spawn(s.Next.Kind()).Cells(),
		Score:        s.Score.CurrentScore,
		Lines:        s.Score.LinesCleared,
		Level:        s.SpeedLevel + 1,
		BestScore:    s.Score.BestScore(),
		GameOver:     s.IsGameOver(),
		HasStarted:   s.HasStarted,
	}
}
