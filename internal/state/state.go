package state

import (
	"context"
	"time"

	"go-tetris/internal/board"
	"go-tetris/internal/piece"
	"go-tetris/internal/scoring"

	"github.com/looplab/fsm"
)

// Machine states.
const (
	StateNotStarted = "notStarted"
	StatePlaying    = "playing"
	StateGameOver   = "gameOver"
)

// Machine events.
const (
	EventStart = "start"
	EventEnd   = "end"
)

// Fall timing, in seconds.
const (
	BaseInterval     = 0.27
	FloorInterval    = 0.11
	SpeedUpStep      = 0.01
	SpeedUpPeriod    = 15.0
	SoftDropInterval = 0.05
)

// MaxSpeedLevel is the level at which the natural interval reaches the floor.
const MaxSpeedLevel = int((BaseInterval - FloorInterval) / SpeedUpStep)

type GameOptions struct {
	Seed   int64
	Source piece.Source // overrides Seed when set
}

type State struct {
	Board   *board.Board
	Current piece.Piece
	Next    piece.Piece
	Score   *scoring.Scoring
	History *scoring.ScoreHistory

	SpeedLevel   int     // speed-ups earned this run
	ElapsedFall  float64 // seconds since the last gravity step
	LevelTime    float64 // seconds toward the next speed-up
	SoftDropping bool
	HasStarted   bool

	FSM     *fsm.FSM
	Options GameOptions
	source  piece.Source
}

func NewState(opts GameOptions) *State {
	src := opts.Source
	if src == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		src = piece.NewRandomSource(seed)
	}

	s := &State{
		Board:   board.New(),
		History: &scoring.ScoreHistory{},
		Options: opts,
		source:  src,
	}
	s.Score = scoring.InitScoring(s.History)
	s.Current = piece.Spawn(s.source.Next())
	s.Next = piece.Spawn(s.source.Next())

	s.FSM = fsm.NewFSM(
		StateNotStarted,
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: EventStart, Src: []string{StateNotStarted, StateGameOver}, Dst: StatePlaying},
		{Name: EventEnd, Src: []string{StatePlaying}, Dst: StateGameOver},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_" + StatePlaying: func(_ context.Context, e *fsm.Event) {
			s.reset()
		},
		"enter_" + StateGameOver: func(_ context.Context, e *fsm.Event) {
			s.SoftDropping = false
			s.Score.Finish()
		},
	}
}

// reset is the shared entry into play, used both for the first start and
// for every restart after a game over.
func (s *State) reset() {
	s.Board.Clear()
	s.Score = scoring.InitScoring(s.History)
	s.SpeedLevel = 0
	s.ElapsedFall = 0
	s.LevelTime = 0
	s.SoftDropping = false
	s.HasStarted = true
	s.Current = piece.Spawn(s.source.Next())
	s.Next = piece.Spawn(s.source.Next())
}

// Start enters play from the title screen or after a game over. It reports
// false when a game is already running.
func (s *State) Start(ctx context.Context) bool {
	if !s.FSM.Can(EventStart) {
		return false
	}
	return s.FSM.Event(ctx, EventStart) == nil
}

// End moves a running game to the game-over state.
func (s *State) End(ctx context.Context) bool {
	if !s.FSM.Can(EventEnd) {
		return false
	}
	return s.FSM.Event(ctx, EventEnd) == nil
}
