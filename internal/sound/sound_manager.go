package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Manager manages all game audio
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	theme       *beep.Ctrl
	volume      float64
	initialized bool
}

// NewManager creates a manager whose theme plays at the given linear volume
// (0 mutes it, 1 is full scale). Cues always play at full scale.
func NewManager(volume float64) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the audio device. Calling it again is a no-op.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences everything and closes the audio device.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.theme = nil

	speaker.Close()
	m.initialized = false
}

// StartTheme loops the theme; it resumes a paused theme instead of
// restarting it.
func (m *Manager) StartTheme() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if m.theme != nil {
		m.theme.Paused = false
		return
	}

	looped := beep.Loop(-1, Theme(SampleRate))
	m.theme = &beep.Ctrl{Streamer: withVolume(looped, m.volume)}
	m.mixer.Add(m.theme)
}

// StopTheme pauses the theme.
func (m *Manager) StopTheme() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.theme == nil {
		return
	}
	speaker.Lock()
	m.theme.Paused = true
	speaker.Unlock()
}

func (m *Manager) PlayLock() {
	m.play(LockCue(SampleRate))
}

func (m *Manager) PlayClear(rows int) {
	m.play(ClearCue(SampleRate, rows))
}

func (m *Manager) PlayGameOver() {
	m.play(GameOverCue(SampleRate))
}

func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// withVolume scales s by a linear gain.
func withVolume(s beep.Streamer, linear float64) beep.Streamer {
	if linear <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(linear)}
}
