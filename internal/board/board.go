// Package board holds the locked cells of the well, clears full rows and
// answers collision queries for falling pieces.
package board

import (
	"fmt"
	"slices"

	"go-tetris/internal/piece"

	"github.com/kamstrup/intmap"
)

// Well dimensions.
const (
	Cols = 10
	Rows = 20
)

// Block is a locked cell and the color it was locked with.
type Block struct {
	Cell  piece.Cell
	Color piece.Color
}

// NewBlock builds a Block. A cell outside the well or a color outside the
// palette can only come from a bug, so both panic.
func NewBlock(c piece.Cell, color piece.Color) Block {
	if !InBounds(c) {
		panic(fmt.Sprintf("board: cell (%d,%d) outside %dx%d well", c.Col, c.Row, Cols, Rows))
	}
	if !color.Valid() {
		panic(fmt.Sprintf("board: color %d outside palette", int(color)))
	}
	return Block{Cell: c, Color: color}
}

// InBounds reports whether c lies inside the well.
func InBounds(c piece.Cell) bool {
	return c.Col >= 0 && c.Col < Cols && c.Row >= 0 && c.Row < Rows
}

// Board is the set of locked cells. Each coordinate appears at most once.
// rowCounts mirrors the number of locked cells per row.
type Board struct {
	cells     *intmap.Map[int, piece.Color]
	rowCounts [Rows]int
}

// New returns an empty board.
func New() *Board {
	return &Board{cells: intmap.New[int, piece.Color](Cols * Rows)}
}

func key(c piece.Cell) int {
	return c.Row*Cols + c.Col
}

func cellOf(k int) piece.Cell {
	return piece.Cell{Col: k % Cols, Row: k / Cols}
}

// Len returns the number of locked cells.
func (b *Board) Len() int {
	return b.cells.Len()
}

// Occupied reports whether c holds a locked cell.
func (b *Board) Occupied(c piece.Cell) bool {
	if !InBounds(c) {
		return false
	}
	return b.cells.Has(key(c))
}

// At returns the color locked at c, if any.
func (b *Board) At(c piece.Cell) (piece.Color, bool) {
	if !InBounds(c) {
		return 0, false
	}
	return b.cells.Get(key(c))
}

// Place locks a single block. Placing onto an occupied cell panics.
func (b *Board) Place(blk Block) {
	k := key(blk.Cell)
	if b.cells.Has(k) {
		panic(fmt.Sprintf("board: cell (%d,%d) already locked", blk.Cell.Col, blk.Cell.Row))
	}
	b.cells.Put(k, blk.Color)
	b.rowCounts[blk.Cell.Row]++
}

// Lock transfers the piece's cells to the board with the piece's color.
func (b *Board) Lock(p piece.Piece) {
	color := p.Color()
	for _, c := range p.Cells() {
		b.Place(NewBlock(c, color))
	}
}

// IsRowFull reports whether every column of row is locked.
func (b *Board) IsRowFull(row int) bool {
	if row < 0 || row >= Rows {
		return false
	}
	return b.rowCounts[row] == Cols
}

// FullRows lists the full rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for r := 0; r < Rows; r++ {
		if b.IsRowFull(r) {
			rows = append(rows, r)
		}
	}
	return rows
}

// RemoveFullRows deletes full rows one at a time, topmost first, dropping
// every cell above a removed row by one, until no row is full. It returns
// how many rows were removed.
func (b *Board) RemoveFullRows() int {
	removed := 0
	for {
		full := b.FullRows()
		if len(full) == 0 {
			return removed
		}
		b.removeRow(full[0])
		removed++
	}
}

func (b *Board) removeRow(row int) {
	blocks := b.Blocks()
	b.Clear()
	for _, blk := range blocks {
		switch {
		case blk.Cell.Row == row:
			continue
		case blk.Cell.Row < row:
			blk.Cell.Row++
		}
		b.Place(blk)
	}
}

// Blocks returns a copy of the locked cells in row-major order.
func (b *Board) Blocks() []Block {
	blocks := make([]Block, 0, b.cells.Len())
	for k, color := range b.cells.All() {
		blocks = append(blocks, Block{Cell: cellOf(k), Color: color})
	}
	slices.SortFunc(blocks, func(x, y Block) int {
		return key(x.Cell) - key(y.Cell)
	})
	return blocks
}

// Clear empties the board.
func (b *Board) Clear() {
	b.cells.Clear()
	b.rowCounts = [Rows]int{}
}
