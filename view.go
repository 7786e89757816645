package main

import (
	"fmt"
	"strings"

	"go-tetris/internal/board"
	"go-tetris/internal/game"
	"go-tetris/internal/piece"

	"github.com/charmbracelet/lipgloss"
)

const (
	blockGlyph = "██"
	emptyGlyph = " ·"
	previewDim = 4
)

var (
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	boldStyle  = lipgloss.NewStyle().Bold(true)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	wellStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("244"))

	panelStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Width(32)
)

func blockStyle(c piece.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

// renderWell draws the locked blocks and, once play has begun, the falling
// piece.
func renderWell(snap game.Snapshot) string {
	var grid [board.Rows][board.Cols]string
	for _, b := range snap.Blocks {
		grid[b.Cell.Row][b.Cell.Col] = blockStyle(b.Color).Render(blockGlyph)
	}
	if snap.HasStarted {
		style := blockStyle(snap.CurrentColor)
		for _, c := range snap.Current {
			if board.InBounds(c) {
				grid[c.Row][c.Col] = style.Render(blockGlyph)
			}
		}
	}

	var b strings.Builder
	for row := range grid {
		for col := range grid[row] {
			if grid[row][col] == "" {
				b.WriteString(emptyStyle.Render(emptyGlyph))
				continue
			}
			b.WriteString(grid[row][col])
		}
		if row < board.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return wellStyle.Render(b.String())
}

// renderPreview draws the next piece in a small fixed-size box.
func renderPreview(snap game.Snapshot) string {
	minCol, minRow := snap.NextCells[0].Col, snap.NextCells[0].Row
	for _, c := range snap.NextCells[1:] {
		minCol = min(minCol, c.Col)
		minRow = min(minRow, c.Row)
	}

	var grid [previewDim][previewDim]bool
	for _, c := range snap.NextCells {
		col, row := c.Col-minCol, c.Row-minRow
		if col < previewDim && row < previewDim {
			grid[row][col] = true
		}
	}

	style := blockStyle(snap.NextColor)
	var b strings.Builder
	for row := range grid {
		for col := range grid[row] {
			if grid[row][col] {
				b.WriteString(style.Render(blockGlyph))
			} else {
				b.WriteString("  ")
			}
		}
		if row < previewDim-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderPanel(snap game.Snapshot) string {
	lines := []string{
		boldStyle.Render("NEXT PIECE:"),
		renderPreview(snap),
		"",
		scoreStyle.Render(fmt.Sprintf("SCORE: %d", snap.Score)),
		fmt.Sprintf("LINES: %d", snap.Lines),
		fmt.Sprintf("LEVEL: %d", snap.Level),
		fmt.Sprintf("BEST:  %d", snap.BestScore),
		"",
	}

	switch {
	case snap.GameOver && snap.HasStarted:
		lines = append(lines,
			redStyle.Bold(true).Render("GAME OVER"),
			fmt.Sprintf("Final score: %d", snap.Score),
			"",
			greenStyle.Render("Press SPACE to play again"),
		)
	case !snap.HasStarted:
		lines = append(lines, greenStyle.Render("Press SPACE to play"))
	}

	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (s *LocalState) View() string {
	snap := s.Game.Snapshot()
	display := lipgloss.JoinHorizontal(lipgloss.Top, renderWell(snap), renderPanel(snap))
	return display + "\n" + s.Help.View(s.Keys)
}
