package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"go-tetris/internal/game"
	"go-tetris/internal/sound"
	"go-tetris/internal/state"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

const (
	debugLogFile  = "tetris-debug.log"
	maxFrameDelta = 0.25
)

type LocalState struct {
	Game  *game.Game
	Sound *sound.Manager
	Keys  keyMap
	Help  help.Model

	frame    time.Duration
	lastTick time.Time
	drop     softDropHold
}

type TickMsg time.Time

func tickCmd(frame time.Duration) tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func initialModel(g *game.Game, snd *sound.Manager, cfg config) *LocalState {
	return &LocalState{
		Game:  g,
		Sound: snd,
		Keys:  defaultKeyMap(),
		Help:  help.New(),
		frame: time.Second / time.Duration(cfg.fps),
		drop:  softDropHold{window: cfg.hold},
	}
}

func (s *LocalState) Init() tea.Cmd {
	return tickCmd(s.frame)
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		s.tick(time.Time(msg))
		return s, tickCmd(s.frame)
	case tea.WindowSizeMsg:
		s.Help.Width = msg.Width
	case tea.KeyMsg:
		return s, s.handleKey(msg, time.Now())
	}
	return s, nil
}

func (s *LocalState) tick(now time.Time) {
	dt := frameDelta(s.lastTick, now)
	s.lastTick = now

	if s.drop.Expired(now) {
		s.Game.Handle(game.SoftDropStop)
	}
	s.react(s.Game.Advance(dt))
}

// frameDelta is the time between two ticks in seconds. A stalled terminal
// must not turn into one huge gravity step, so it is capped.
func frameDelta(last, now time.Time) float64 {
	if last.IsZero() || now.Before(last) {
		return 0
	}
	return min(now.Sub(last).Seconds(), maxFrameDelta)
}

func (s *LocalState) handleKey(msg tea.KeyMsg, now time.Time) tea.Cmd {
	switch {
	case key.Matches(msg, s.Keys.Quit):
		return tea.Quit
	case key.Matches(msg, s.Keys.Left):
		s.Game.Handle(game.MoveLeft)
	case key.Matches(msg, s.Keys.Right):
		s.Game.Handle(game.MoveRight)
	case key.Matches(msg, s.Keys.Rotate):
		s.Game.Handle(game.RotateClockwise)
	case key.Matches(msg, s.Keys.Drop):
		if s.drop.Press(now) {
			s.Game.Handle(game.SoftDropStart)
		}
	case key.Matches(msg, s.Keys.Start):
		s.Game.Handle(game.StartOrRestart)
	case key.Matches(msg, s.Keys.Help):
		s.Help.ShowAll = !s.Help.ShowAll
	}
	return nil
}

// react turns what happened during a tick into sound and log lines.
func (s *LocalState) react(out game.Outcome) {
	score := s.Game.State.Score

	if out.Started {
		s.drop.Reset()
		log.Printf("game started (attempt %d)", score.GetAttempts()+1)
		s.Sound.StartTheme()
	}
	if out.Locked {
		s.Sound.PlayLock()
	}
	if out.RowsCleared > 0 {
		log.Printf("cleared %d rows for %d points, score %d", out.RowsCleared, out.Points, score.CurrentScore)
		s.Sound.PlayClear(out.RowsCleared)
	}
	if out.GameOver {
		s.drop.Reset()
		log.Printf("game over: score %d, lines %d, pieces %d", score.CurrentScore, score.LinesCleared, score.PiecesLocked)
		if score.GotHighScore() {
			log.Printf("new best score %d", score.CurrentScore)
		}
		s.Sound.StopTheme()
		s.Sound.PlayGameOver()
	}
}

type config struct {
	seed   int64
	fps    fpsFlag
	volume volumeFlag
	mute   bool
	debug  bool
	hold   time.Duration
}

// envFlags maps environment variables to the flags they provide defaults for.
// Flags given on the command line win.
var envFlags = []struct{ env, flag string }{
	{"TETRIS_SEED", "seed"},
	{"TETRIS_FPS", "fps"},
	{"TETRIS_VOLUME", "volume"},
	{"TETRIS_MUTE", "mute"},
	{"TETRIS_DEBUG", "debug"},
	{"TETRIS_HOLD", "hold"},
}

func parseConfig(args []string) (config, error) {
	cfg := config{fps: 60, volume: 0.1}

	set := flag.NewFlagSet("tetris", flag.ContinueOnError)
	set.Int64Var(&cfg.seed, "seed", 0, "Seed for the piece sequence (0 picks one from the clock)")
	set.Var(&cfg.fps, "fps", "Frames per second")
	set.Var(&cfg.volume, "volume", "Theme volume between 0 and 1")
	set.BoolVar(&cfg.mute, "mute", false, "Disable all audio")
	set.BoolVar(&cfg.debug, "debug", false, "Write a debug log to "+debugLogFile)
	set.DurationVar(&cfg.hold, "hold", 400*time.Millisecond, "How long soft drop lasts after the last down key repeat")

	set.Usage = func() {
		fmt.Fprintf(set.Output(), "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(set.Output(), "\nOptions:\n")
		set.PrintDefaults()
		fmt.Fprintf(set.Output(), "\nEach option can also be set with TETRIS_<NAME>, e.g. TETRIS_VOLUME=0.3, or in a .env file.\n")
	}

	for _, ef := range envFlags {
		v, ok := os.LookupEnv(ef.env)
		if !ok || v == "" {
			continue
		}
		if err := set.Set(ef.flag, v); err != nil {
			return cfg, fmt.Errorf("invalid %s=%q: %w", ef.env, v, err)
		}
	}

	if err := set.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.hold <= 0 {
		return cfg, fmt.Errorf("hold must be positive, got %s", cfg.hold)
	}
	return cfg, nil
}

type fpsFlag int

func (f *fpsFlag) String() string {
	return fmt.Sprint(int(*f))
}

func (f *fpsFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < 1 || v > 240 {
		return fmt.Errorf("fps must be between 1 and 240, got %d", v)
	}
	*f = fpsFlag(v)
	return nil
}

type volumeFlag float64

func (v *volumeFlag) String() string {
	return strconv.FormatFloat(float64(*v), 'g', -1, 64)
}

func (v *volumeFlag) Set(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	if f < 0 || f > 1 {
		return fmt.Errorf("volume must be between 0 and 1, got %v", f)
	}
	*v = volumeFlag(f)
	return nil
}

func run(cfg config) error {
	if cfg.debug {
		f, err := tea.LogToFile(debugLogFile, "tetris")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	volume := float64(cfg.volume)
	if cfg.mute {
		volume = 0
	}
	snd := sound.NewManager(volume)
	if !cfg.mute {
		if err := snd.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}
	defer snd.Cleanup()

	g := game.NewGame(state.GameOptions{Seed: cfg.seed})
	log.Printf("starting: seed=%d fps=%d volume=%v mute=%v", cfg.seed, cfg.fps, volume, cfg.mute)

	model := initialModel(g, snd, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running the program: %w", err)
	}

	if best := g.State.Score.BestScore(); best > 0 {
		fmt.Printf("Best score this session: %d\n", best)
	}
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
