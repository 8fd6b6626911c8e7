package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoord_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		coord    Coord
		playable bool
		onBoard  bool
	}{
		{name: "origin", coord: Coord{Col: 0, Row: 0}, playable: true, onBoard: true},
		{name: "playable corner", coord: Coord{Col: 8, Row: 8}, playable: true, onBoard: true},
		{name: "sentinel corner", coord: Coord{Col: 9, Row: 9}, playable: false, onBoard: true},
		{name: "sentinel column", coord: Coord{Col: 9, Row: 4}, playable: false, onBoard: true},
		{name: "negative column", coord: Coord{Col: -1, Row: 4}, playable: false, onBoard: false},
		{name: "negative row", coord: Coord{Col: 4, Row: -1}, playable: false, onBoard: false},
		{name: "past the sentinel", coord: Coord{Col: 10, Row: 4}, playable: false, onBoard: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.playable, tt.coord.IsPlayable())
			assert.Equal(t, tt.onBoard, tt.coord.IsOnBoard())
		})
	}
}

func TestBoard_At(t *testing.T) {
	// Given: a board with a pawn placed through At
	var board Board
	board.At(Coord{Col: 3, Row: 7}).Pawn = Player1

	// Then: the same cell is read back
	require.Equal(t, Player1, board.At(Coord{Col: 3, Row: 7}).Pawn)
	assert.Equal(t, PlayerNone, board.At(Coord{Col: 7, Row: 3}).Pawn)
}

func TestFence_Orientation(t *testing.T) {
	// Given: fences of both orientations
	horizontal := NewFence(Horizontal)
	vertical := NewFence(Vertical)

	// Then: each reports the orientation it was created with
	assert.Equal(t, Horizontal, horizontal.Orientation())
	assert.Equal(t, Vertical, vertical.Orientation())
}
