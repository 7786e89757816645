package main

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Rotate key.Binding
	Drop   key.Binding
	Start  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move right"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "rotate"),
		),
		Drop: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "soft drop (hold)"),
		),
		Start: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.Drop},
		{k.Start, k.Help, k.Quit},
	}
}

// softDropHold turns repeated key presses into a held key. Terminals send no
// release event, so the hold ends once no repeat arrives within window.
type softDropHold struct {
	window time.Duration
	last   time.Time
	active bool
}

// Press records a press and reports whether it starts a new hold.
func (h *softDropHold) Press(now time.Time) bool {
	h.last = now
	if h.active {
		return false
	}
	h.active = true
	return true
}

// Expired reports, once, that the hold has ended.
func (h *softDropHold) Expired(now time.Time) bool {
	if !h.active || now.Sub(h.last) <= h.window {
		return false
	}
	h.active = false
	return true
}

func (h *softDropHold) Reset() {
	h.active = false
}
