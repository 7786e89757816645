package state

import (
	"go-tetris/internal/piece"
)

func (s State) IsPlaying() bool {
	return s.FSM.Is(StatePlaying)
}

func (s State) IsGameOver() bool {
	return s.FSM.Is(StateGameOver)
}

// Name returns the current machine state.
func (s State) Name() string {
	return s.FSM.Current()
}

// NaturalInterval is the fall interval earned by play time alone.
func (s State) NaturalInterval() float64 {
	if s.SpeedLevel >= MaxSpeedLevel {
		return FloorInterval
	}
	return BaseInterval - SpeedUpStep*float64(s.SpeedLevel)
}

// FallInterval is the interval gravity currently uses.
func (s State) FallInterval() float64 {
	if s.SoftDropping {
		return SoftDropInterval
	}
	return s.NaturalInterval()
}

func (s *State) SoftDropStart() {
	s.SoftDropping = true
}

func (s *State) SoftDropStop() {
	s.SoftDropping = false
}

// Accelerate adds dt seconds of play time and earns one speed-up per full
// period. Speed-ups keep accruing during a soft drop; they show up in
// FallInterval once it ends.
func (s *State) Accelerate(dt float64) {
	s.LevelTime += dt
	for s.LevelTime >= SpeedUpPeriod {
		s.LevelTime -= SpeedUpPeriod
		if s.SpeedLevel < MaxSpeedLevel {
			s.SpeedLevel++
		}
	}
}

// ChangePieces promotes the next piece and draws a new one.
func (s *State) ChangePieces() {
	s.Current = s.Next
	s.Next = piece.Spawn(s.source.Next())
}

// SpawnBlocked reports the game-over condition: the current piece still
// sits at the spawn row and already collides with the board.
func (s State) SpawnBlocked() bool {
	return s.Current.Anchor().Row == piece.SpawnRow && s.Board.Collides(s.Current)
}
