package entity

import (
	"fmt"

	"github.com/DenxyChen/osu-cs-162-Quoridor/internal/apperror"
)

const (
	// StartingFences is the fence reserve each player begins with.
	StartingFences = 10

	goalColumnPlayer1 = PlayableSize - 1
	goalColumnPlayer2 = 0
)

// Game owns the board, the per-player fence reserves, the turn pointer
// and the winner flag for one match. Every operation validates fully
// before mutating, so a rejected action never leaves partial state.
type Game struct {
	Board    Board
	Reserves map[Player]int
	Turn     Player
	Winner   Player
}

// NewGame sets up a fresh match: pawns facing each other at column 4 of
// the two baselines, ten fences per player, the four board edges sealed
// with boundary fences, and player 1 to move.
func NewGame() *Game {
	game := &Game{
		Reserves: map[Player]int{
			Player1: StartingFences,
			Player2: StartingFences,
		},
		Turn: Player1,
	}

	game.Board.At(Coord{Col: 4, Row: 0}).Pawn = Player1
	game.Board.At(Coord{Col: 4, Row: PlayableSize - 1}).Pawn = Player2

	// Boundary fences go through the regular placement path with the
	// setup sentinel, so no reserve is charged and no turn changes.
	for col := 0; col < boardSize; col++ {
		for row := 0; row < boardSize; row++ {
			if col == 0 || col == boardSize-1 {
				_ = game.PlaceFence(PlayerNone, Vertical, Coord{Col: col, Row: row})
			}
			if row == 0 || row == boardSize-1 {
				_ = game.PlaceFence(PlayerNone, Horizontal, Coord{Col: col, Row: row})
			}
		}
	}

	return game
}

// MovePawn relocates the player's pawn onto target. The target must be
// playable, the match still undecided, the player on turn, and the pawn
// currently on an orthogonally adjacent cell with no fence on the shared
// edge. Diagonal and jump-over moves are not supported.
func (that *Game) MovePawn(player Player, target Coord) error {
	if !target.IsPlayable() {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrOutOfBounds, target.Col, target.Row)
	}

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if player != that.Turn {
		return apperror.ErrNotYourTurn
	}

	// The edge shared with the cell above is the target's own horizontal
	// slot; the edges below and to the right live on the neighbor cell.
	if source := (Coord{Col: target.Col, Row: target.Row - 1}); source.Row >= 0 &&
		that.Board.At(source).Pawn == player && that.Board.At(target).Horizontal == nil {
		that.commitMove(player, source, target)
		return nil
	}

	if source := (Coord{Col: target.Col, Row: target.Row + 1}); that.Board.At(source).Pawn == player &&
		that.Board.At(source).Horizontal == nil {
		that.commitMove(player, source, target)
		return nil
	}

	if source := (Coord{Col: target.Col - 1, Row: target.Row}); source.Col >= 0 &&
		that.Board.At(source).Pawn == player && that.Board.At(target).Vertical == nil {
		that.commitMove(player, source, target)
		return nil
	}

	if source := (Coord{Col: target.Col + 1, Row: target.Row}); that.Board.At(source).Pawn == player &&
		that.Board.At(source).Vertical == nil {
		that.commitMove(player, source, target)
		return nil
	}

	return apperror.ErrIllegalMove
}

// PlaceFence stores a fence of the given orientation at coord. Gameplay
// placements must be in turn, inside the playable grid and covered by
// the player's reserve; setup placements (PlayerNone) may reach the
// sentinel row/column and charge nothing. Only the targeted orientation
// slot is checked for overlap.
func (that *Game) PlaceFence(player Player, orientation Orientation, coord Coord) error {
	inBounds := coord.IsPlayable()
	if !player.IsGameplay() {
		// Setup placements reach the sentinel row/column to seal the far edges.
		inBounds = coord.IsOnBoard()
	}

	if !inBounds {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrOutOfBounds, coord.Col, coord.Row)
	}

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if player.IsGameplay() {
		if player != that.Turn {
			return apperror.ErrNotYourTurn
		}

		if that.Reserves[player] == 0 {
			return apperror.ErrNoFencesLeft
		}
	}

	cell := that.Board.At(coord)

	var slot **Fence
	switch orientation {
	case Horizontal:
		slot = &cell.Horizontal
	case Vertical:
		slot = &cell.Vertical
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownOrientation, orientation)
	}

	if *slot != nil {
		return fmt.Errorf("%w: %s at (%d,%d)", apperror.ErrFenceSlotOccupied, orientation, coord.Col, coord.Row)
	}

	*slot = NewFence(orientation)

	if player.IsGameplay() {
		that.Reserves[player]--
		that.Turn = player.Opponent()
	}

	return nil
}

// IsWinner reports whether the given player has won. It is a pure read
// and returns false while the match is still running.
func (that *Game) IsWinner(player Player) bool {
	return that.Winner == player && player.IsGameplay()
}

// IsFinished reports whether a winner has been decided.
func (that *Game) IsFinished() bool {
	return that.Winner != PlayerNone
}

// commitMove - applies a validated pawn move: relocates the pawn as one
// step, records a win when the mover reaches the opposing goal column,
// and hands the turn over regardless of the outcome.
func (that *Game) commitMove(player Player, source, target Coord) {
	that.Board.At(target).Pawn = player
	that.Board.At(source).Pawn = PlayerNone

	switch player {
	case Player1:
		if target.Col == goalColumnPlayer1 {
			that.Winner = Player1
		}
	case Player2:
		if target.Col == goalColumnPlayer2 {
			that.Winner = Player2
		}
	}

	that.Turn = player.Opponent()
}
