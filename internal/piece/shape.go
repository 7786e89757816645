package piece

import "fmt"

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	L Kind = iota
	S
	T
	Z
	J
	O
	I
	numKinds
)

// NumKinds is the number of distinct piece kinds.
const NumKinds = int(numKinds)

// NumRotations is the number of rotation states every kind has.
const NumRotations = 4

var kindNames = [NumKinds]string{"L", "S", "T", "Z", "J", "O", "I"}

// Kinds returns every kind in catalog order.
func Kinds() []Kind {
	return []Kind{L, S, T, Z, J, O, I}
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the seven catalog kinds.
func (k Kind) Valid() bool {
	return k >= L && k < numKinds
}

// Color returns the palette entry assigned to the kind.
func (k Kind) Color() Color {
	k.mustBeValid()
	return kindColors[k]
}

// Offsets returns the three anchor-relative cells of the given rotation state.
func (k Kind) Offsets(rotation int) [3]Offset {
	k.mustBeValid()
	if rotation < 0 || rotation >= NumRotations {
		panic(fmt.Sprintf("piece: rotation %d out of range", rotation))
	}
	return rotations[k][rotation]
}

func (k Kind) mustBeValid() {
	if !k.Valid() {
		panic(fmt.Sprintf("piece: unknown kind %d", int(k)))
	}
}

// Color is one entry of the fixed seven-color palette.
type Color int

const (
	Orange Color = iota
	Green
	Purple
	Red
	Blue
	Yellow
	Cyan
	numColors
)

var kindColors = [NumKinds]Color{
	L: Orange,
	S: Green,
	T: Purple,
	Z: Red,
	J: Blue,
	O: Yellow,
	I: Cyan,
}

var colorRGB = [numColors][3]uint8{
	Orange: {255, 151, 28},
	Green:  {114, 203, 59},
	Purple: {128, 0, 128},
	Red:    {255, 50, 19},
	Blue:   {3, 65, 174},
	Yellow: {254, 213, 0},
	Cyan:   {0, 255, 255},
}

var colorNames = [numColors]string{"orange", "green", "purple", "red", "blue", "yellow", "cyan"}

// Valid reports whether c belongs to the palette.
func (c Color) Valid() bool {
	return c >= Orange && c < numColors
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// RGB returns the red, green and blue components of the color.
func (c Color) RGB() (r, g, b uint8) {
	if !c.Valid() {
		panic(fmt.Sprintf("piece: color %d outside palette", int(c)))
	}
	rgb := colorRGB[c]
	return rgb[0], rgb[1], rgb[2]
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Offset is a column/row displacement from a piece's anchor.
type Offset struct {
	DCol, DRow int
}

// rotations holds, per kind, the three non-anchor offsets of each rotation
// state. Rows grow downward.
var rotations = [NumKinds][NumRotations][3]Offset{
	L: {
		{{-1, 0}, {-1, 1}, {1, 0}},
		{{0, -1}, {-1, -1}, {0, 1}},
		{{1, 0}, {1, -1}, {-1, 0}},
		{{0, 1}, {1, 1}, {0, -1}},
	},
	S: {
		{{1, 0}, {0, 1}, {-1, 1}},
		{{0, 1}, {-1, 0}, {-1, -1}},
		{{-1, 0}, {0, -1}, {1, -1}},
		{{0, -1}, {1, 0}, {1, 1}},
	},
	T: {
		{{-1, 0}, {0, 1}, {1, 0}},
		{{0, -1}, {-1, 0}, {0, 1}},
		{{1, 0}, {0, -1}, {-1, 0}},
		{{0, 1}, {1, 0}, {0, -1}},
	},
	Z: {
		{{-1, 0}, {0, 1}, {1, 1}},
		{{0, -1}, {-1, 0}, {-1, 1}},
		{{1, 0}, {0, -1}, {-1, -1}},
		{{0, 1}, {1, 0}, {1, -1}},
	},
	J: {
		{{-1, 0}, {1, 0}, {1, 1}},
		{{0, -1}, {0, 1}, {-1, 1}},
		{{1, 0}, {-1, 0}, {-1, -1}},
		{{0, 1}, {0, -1}, {1, -1}},
	},
	O: {
		{{-1, 0}, {-1, 1}, {0, 1}},
		{{-1, 0}, {-1, 1}, {0, 1}},
		{{-1, 0}, {-1, 1}, {0, 1}},
		{{-1, 0}, {-1, 1}, {0, 1}},
	},
	I: {
		{{-1, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {0, -1}, {0, -2}},
		{{-1, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {0, -1}, {0, -2}},
	},
}
