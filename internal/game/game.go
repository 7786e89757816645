package game

import (
	"context"

	"go-tetris/internal/state"
)

// Game encapsulates the core game logic, independent of the UI.
type Game struct {
	State   *state.State
	pending []Intent
}

// Outcome summarizes what one call to Advance did.
type Outcome struct {
	Started     bool
	Locked      bool
	RowsCleared int
	Points      int
	GameOver    bool
}

// NewGame initializes a new game instance in the not-started state.
func NewGame(opts state.GameOptions) *Game {
	return &Game{
		State: state.NewState(opts),
	}
}

// Handle queues an intent. Queued intents are applied, in order, at the
// start of the next Advance.
func (g *Game) Handle(intent Intent) {
	g.pending = append(g.pending, intent)
}

// Advance runs one tick of dt seconds: pending intents first, then speed
// progression, then gravity. Lock, clear, respawn and the game-over check
// all complete within the tick.
func (g *Game) Advance(dt float64) Outcome {
	var out Outcome
	// We use background context as we don't need cancellation here
	ctx := context.Background()

	for _, intent := range g.pending {
		g.apply(ctx, intent, &out)
	}
	g.pending = g.pending[:0]

	if !g.State.IsPlaying() {
		return out
	}

	g.State.Accelerate(dt)
	g.fall(ctx, dt, &out)
	return out
}

func (g *Game) apply(ctx context.Context, intent Intent, out *Outcome) {
	if intent == StartOrRestart {
		if g.State.Start(ctx) {
			out.Started = true
		}
		return
	}

	// Only a restart is honoured once the game is over or before it starts.
	if !g.State.IsPlaying() {
		return
	}

	switch intent {
	case MoveLeft:
		g.shift(-1)
	case MoveRight:
		g.shift(1)
	case RotateClockwise:
		g.rotate()
	case SoftDropStart:
		g.State.SoftDropStart()
	case SoftDropStop:
		g.State.SoftDropStop()
	}
}

func (g *Game) shift(dCol int) {
	s := g.State
	s.Current.Translate(dCol, 0)
	if s.Board.Collides(s.Current) {
		s.Current.Translate(-dCol, 0)
	}
}

// rotate has a single fallback: the state before the attempt.
func (g *Game) rotate() {
	s := g.State
	s.Current.Rotate()
	if s.Board.Collides(s.Current) {
		s.Current.Unrotate()
	}
}

func (g *Game) fall(ctx context.Context, dt float64, out *Outcome) {
	s := g.State
	s.ElapsedFall += dt
	if s.ElapsedFall < s.FallInterval() {
		return
	}
	s.ElapsedFall = 0

	below := s.Current
	below.Translate(0, 1)
	if !s.Board.WouldLock(below) {
		s.Current = below
		return
	}

	s.Board.Lock(s.Current)
	s.Score.AddLock()
	rows := s.Board.RemoveFullRows()
	out.Locked = true
	out.RowsCleared = rows
	out.Points = s.Score.AddClear(rows)

	s.ChangePieces()
	if s.SpawnBlocked() {
		s.End(ctx)
		out.GameOver = true
	}
}
