package state

import (
	"context"
	"math"
	"testing"

	"go-tetris/internal/board"
	"go-tetris/internal/piece"
)

func newTestState(kinds ...piece.Kind) *State {
	if len(kinds) == 0 {
		kinds = []piece.Kind{piece.T}
	}
	return NewState(GameOptions{Source: piece.NewSequence(kinds...)})
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestState_InitialMachineState(t *testing.T) {
	s := newTestState(piece.I, piece.O)

	if s.Name() != StateNotStarted {
		t.Errorf("Expected state %q, got %q", StateNotStarted, s.Name())
	}
	if s.HasStarted {
		t.Error("HasStarted should be false before the first start")
	}
	if s.IsPlaying() || s.IsGameOver() {
		t.Error("Should be neither playing nor game over")
	}
	if s.Current.Kind() != piece.I || s.Next.Kind() != piece.O {
		t.Errorf("Unexpected initial pieces: %s, %s", s.Current.Kind(), s.Next.Kind())
	}
}

func TestState_StartResets(t *testing.T) {
	s := newTestState(piece.J, piece.L, piece.S)
	ctx := context.Background()

	s.Board.Place(board.NewBlock(piece.Cell{Col: 0, Row: 19}, piece.Red))
	s.SpeedLevel = 4
	s.ElapsedFall = 0.2
	s.LevelTime = 3
	s.SoftDropping = true

	if !s.Start(ctx) {
		t.Fatal("Start should succeed from notStarted")
	}
	if !s.IsPlaying() {
		t.Fatalf("Expected playing, got %s", s.Name())
	}
	if s.Board.Len() != 0 {
		t.Error("Board should be cleared on start")
	}
	if s.SpeedLevel != 0 || s.ElapsedFall != 0 || s.LevelTime != 0 || s.SoftDropping {
		t.Error("Timers and speed should be reset on start")
	}
	if !approx(s.FallInterval(), BaseInterval) {
		t.Errorf("Expected fall interval %v, got %v", BaseInterval, s.FallInterval())
	}
	if s.Score.CurrentScore != 0 {
		t.Errorf("Expected score 0, got %d", s.Score.CurrentScore)
	}
	if !s.HasStarted {
		t.Error("HasStarted should be set")
	}
	// J and L were drawn at construction; the reset draws the next two.
	if s.Current.Kind() != piece.S || s.Next.Kind() != piece.J {
		t.Errorf("Unexpected pieces after start: %s, %s", s.Current.Kind(), s.Next.Kind())
	}
	if s.Current.Anchor() != (piece.Cell{Col: piece.SpawnCol, Row: piece.SpawnRow}) {
		t.Errorf("Current piece should be at spawn, got %v", s.Current.Anchor())
	}
}

func TestState_StartWhilePlayingIsRejected(t *testing.T) {
	s := newTestState()
	ctx := context.Background()
	s.Start(ctx)
	s.Score.AddClear(1)

	if s.Start(ctx) {
		t.Error("Start should be rejected while playing")
	}
	if s.Score.CurrentScore != 50 {
		t.Error("Rejected start must not reset the run")
	}
}

func TestState_EndAndRestart(t *testing.T) {
	s := newTestState()
	ctx := context.Background()

	if s.End(ctx) {
		t.Error("End should be rejected before the game starts")
	}

	s.Start(ctx)
	s.Score.AddClear(2)
	if !s.End(ctx) {
		t.Fatal("End should succeed while playing")
	}
	if !s.IsGameOver() {
		t.Fatalf("Expected gameOver, got %s", s.Name())
	}
	if s.History.Attempts != 1 || s.History.HighScoreEntry.Score != 100 {
		t.Errorf("Finished run should be recorded, got %+v", s.History)
	}

	if !s.Start(ctx) {
		t.Fatal("Restart should succeed from gameOver")
	}
	if s.Score.CurrentScore != 0 {
		t.Error("Restart should zero the score")
	}
	if s.Score.BestScore() != 100 {
		t.Errorf("Best score should survive restart, got %d", s.Score.BestScore())
	}
}

func TestState_SoftDrop(t *testing.T) {
	s := newTestState()
	s.Start(context.Background())

	s.SoftDropStart()
	if !approx(s.FallInterval(), SoftDropInterval) {
		t.Errorf("Expected soft drop interval, got %v", s.FallInterval())
	}
	s.SoftDropStop()
	if !approx(s.FallInterval(), BaseInterval) {
		t.Errorf("Expected natural interval restored, got %v", s.FallInterval())
	}
}

func TestState_Accelerate(t *testing.T) {
	s := newTestState()
	s.Start(context.Background())

	s.Accelerate(14.9)
	if s.SpeedLevel != 0 {
		t.Errorf("No speed-up before 15s, got level %d", s.SpeedLevel)
	}
	s.Accelerate(0.2)
	if s.SpeedLevel != 1 {
		t.Errorf("Expected level 1, got %d", s.SpeedLevel)
	}
	if !approx(s.FallInterval(), 0.26) {
		t.Errorf("Expected 0.26, got %v", s.FallInterval())
	}
}

func TestState_AccelerateIsDeferredDuringSoftDrop(t *testing.T) {
	s := newTestState()
	s.Start(context.Background())

	s.SoftDropStart()
	s.Accelerate(30)
	if !approx(s.FallInterval(), SoftDropInterval) {
		t.Errorf("Soft drop interval should hold, got %v", s.FallInterval())
	}

	s.SoftDropStop()
	if !approx(s.FallInterval(), 0.25) {
		t.Errorf("Both speed-ups should apply after release, got %v", s.FallInterval())
	}
}

func TestState_AccelerateStopsAtFloor(t *testing.T) {
	s := newTestState()
	s.Start(context.Background())

	s.Accelerate(SpeedUpPeriod * 100)
	if !approx(s.NaturalInterval(), FloorInterval) {
		t.Errorf("Expected floor %v, got %v", FloorInterval, s.NaturalInterval())
	}
	if MaxSpeedLevel != 16 {
		t.Errorf("Expected the floor at level 16, got %d", MaxSpeedLevel)
	}
	if s.SpeedLevel != MaxSpeedLevel {
		t.Errorf("Expected level to stop at %d, got %d", MaxSpeedLevel, s.SpeedLevel)
	}
}

func TestState_ChangePieces(t *testing.T) {
	s := newTestState(piece.I, piece.O, piece.T)
	s.Current.Translate(0, 5)

	s.ChangePieces()
	if s.Current.Kind() != piece.O || s.Next.Kind() != piece.T {
		t.Errorf("Unexpected pieces: %s, %s", s.Current.Kind(), s.Next.Kind())
	}
	if s.Current.Anchor().Row != piece.SpawnRow {
		t.Error("Promoted piece should sit at spawn")
	}
}

func TestState_SpawnBlocked(t *testing.T) {
	s := newTestState(piece.O)
	if s.SpawnBlocked() {
		t.Error("Empty board should not block spawn")
	}

	s.Board.Place(board.NewBlock(piece.Cell{Col: 5, Row: 1}, piece.Red))
	if !s.SpawnBlocked() {
		t.Error("Locked cell under the spawn should block")
	}

	s.Current.Translate(0, 3)
	if s.SpawnBlocked() {
		t.Error("Only pieces at the spawn row count")
	}
}
