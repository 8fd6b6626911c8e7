package entity

// Orientation of a fence slot.
type Orientation string

const (
	Horizontal Orientation = "h"
	Vertical   Orientation = "v"
)

// Fence is an immutable blocking piece. Once stored in a cell slot it
// stays there for the rest of the match.
type Fence struct {
	orientation Orientation
}

func NewFence(orientation Orientation) *Fence {
	return &Fence{orientation: orientation}
}

// Orientation returns the orientation the fence was created with.
func (that *Fence) Orientation() Orientation {
	return that.orientation
}
