package board

import "go-tetris/internal/piece"

// OutOfBounds reports whether any cell of p lies outside the well.
func OutOfBounds(p piece.Piece) bool {
	for _, c := range p.Cells() {
		if !InBounds(c) {
			return true
		}
	}
	return false
}

// Overlaps reports whether any cell of p coincides with a locked cell.
func (b *Board) Overlaps(p piece.Piece) bool {
	for _, c := range p.Cells() {
		if b.Occupied(c) {
			return true
		}
	}
	return false
}

// Collides is used to validate sideways moves and rotations.
func (b *Board) Collides(p piece.Piece) bool {
	return OutOfBounds(p) || b.Overlaps(p)
}

// WouldLock is evaluated on the position one row below the falling piece:
// reaching past the floor or into a locked cell means the piece locks where
// it is.
func (b *Board) WouldLock(p piece.Piece) bool {
	for _, c := range p.Cells() {
		if c.Row >= Rows || b.Occupied(c) {
			return true
		}
	}
	return false
}
