// Package piece defines the shape catalog and the live falling piece.
package piece

// SpawnCol and SpawnRow locate the anchor of a freshly spawned piece.
const (
	SpawnCol = 5
	SpawnRow = 0
)

// Cell is a column/row coordinate. Row 0 is the top of the well.
type Cell struct {
	Col, Row int
}

// Add returns the cell displaced by o.
func (c Cell) Add(o Offset) Cell {
	return Cell{Col: c.Col + o.DCol, Row: c.Row + o.DRow}
}

// Piece is a falling piece. Its occupied cells are derived from kind,
// rotation and anchor on every call to Cells and are never stored.
//
// Translate and Rotate do not validate; callers test the result against
// the board and revert.
type Piece struct {
	kind     Kind
	rotation int
	anchor   Cell
}

// Spawn creates a piece of kind k at the spawn anchor in rotation state 0.
func Spawn(k Kind) Piece {
	k.mustBeValid()
	return Piece{
		kind:   k,
		anchor: Cell{Col: SpawnCol, Row: SpawnRow},
	}
}

func (p Piece) Kind() Kind    { return p.kind }
func (p Piece) Rotation() int { return p.rotation }
func (p Piece) Anchor() Cell  { return p.anchor }
func (p Piece) Color() Color  { return p.kind.Color() }

// Cells returns the four occupied cells, anchor first.
func (p Piece) Cells() [4]Cell {
	cells := [4]Cell{p.anchor}
	for i, o := range p.kind.Offsets(p.rotation) {
		cells[i+1] = p.anchor.Add(o)
	}
	return cells
}

// Translate shifts the anchor by dCol columns and dRow rows.
func (p *Piece) Translate(dCol, dRow int) {
	p.anchor.Col += dCol
	p.anchor.Row += dRow
}

// Rotate advances to the next rotation state, wrapping 3 to 0.
func (p *Piece) Rotate() {
	p.rotation = (p.rotation + 1) % NumRotations
}

// Unrotate steps back exactly one rotation state, wrapping 0 to 3.
func (p *Piece) Unrotate() {
	p.rotation = (p.rotation + NumRotations - 1) % NumRotations
}
