package entity

import "strconv"

// Player identifies an actor on the board. PlayerNone is the setup
// sentinel used while sealing the board edges; it never holds a turn
// and is never charged a fence.
type Player int

const (
	PlayerNone Player = iota
	Player1
	Player2
)

// IsGameplay reports whether the player is a real match participant
// rather than the setup sentinel.
func (that Player) IsGameplay() bool {
	return that == Player1 || that == Player2
}

// Opponent returns the other gameplay player.
func (that Player) Opponent() Player {
	switch that {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return PlayerNone
	}
}

func (that Player) String() string {
	if !that.IsGameplay() {
		return "-"
	}
	return strconv.Itoa(int(that))
}
