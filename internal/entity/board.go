package entity

const (
	// PlayableSize is the side length of the playable grid.
	PlayableSize = 9

	// boardSize adds the trailing sentinel row/column that stores the
	// far-edge boundary fences placed at setup.
	boardSize = PlayableSize + 1
)

// Coord is a zero-indexed (column, row) pair.
type Coord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// IsPlayable reports whether the coordinate is inside the 9x9 playable grid.
func (that Coord) IsPlayable() bool {
	return that.Col >= 0 && that.Col < PlayableSize && that.Row >= 0 && that.Row < PlayableSize
}

// IsOnBoard reports whether the coordinate is inside the 10x10 storage
// grid, sentinel row/column included.
func (that Coord) IsOnBoard() bool {
	return that.Col >= 0 && that.Col < boardSize && that.Row >= 0 && that.Row < boardSize
}

// Cell holds the three independent slots of one board coordinate.
// Horizontal blocks movement across the edge shared with the cell above,
// Vertical blocks the edge shared with the cell to the left. The slots
// on the sentinel row/column carry the far south/east boundary fences.
type Cell struct {
	Pawn       Player
	Horizontal *Fence
	Vertical   *Fence
}

// Board is the full 10x10 storage grid.
type Board [boardSize][boardSize]Cell

// At returns the cell at the given coordinate. The coordinate must be
// on the storage grid.
func (that *Board) At(coord Coord) *Cell {
	return &that[coord.Row][coord.Col]
}
