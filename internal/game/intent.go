package game

import "fmt"

// Intent is a discrete player request fed in by the presentation layer.
type Intent int

const (
	MoveLeft Intent = iota
	MoveRight
	RotateClockwise
	SoftDropStart
	SoftDropStop
	StartOrRestart
)

var intentNames = map[Intent]string{
	MoveLeft:        "MoveLeft",
	MoveRight:       "MoveRight",
	RotateClockwise: "RotateClockwise",
	SoftDropStart:   "SoftDropStart",
	SoftDropStop:    "SoftDropStop",
	StartOrRestart:  "StartOrRestart",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Intent(%d)", int(i))
}
