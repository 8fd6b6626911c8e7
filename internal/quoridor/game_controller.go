package quoridor

import (
	"log/slog"

	"github.com/DenxyChen/osu-cs-162-Quoridor/internal/entity"
)

// GameController is the public surface of one match. Every illegal or
// out-of-turn action collapses to a boolean failure; the underlying
// reason is kept for diagnostics and logged at debug level.
type GameController struct {
	logger *slog.Logger
	game   *entity.Game
}

func NewGameController(logger *slog.Logger, game *entity.Game) *GameController {
	return &GameController{
		logger: logger.With("component", "quoridor"),
		game:   game,
	}
}

// MovePawn - attempts to move the player's pawn to target. Returns true
// when the move was applied, false when it was rejected.
func (that *GameController) MovePawn(player entity.Player, target entity.Coord) bool {
	if err := that.game.MovePawn(player, target); err != nil {
		that.logger.Debug("pawn move rejected", "player", player, "target", target, "reason", err)
		return false
	}

	that.logger.Info("pawn moved", "player", player, "target", target, "winner", that.game.Winner)

	return true
}

// PlaceFence - attempts to place a fence for the player. Returns true
// when the fence was stored, false when the placement was rejected.
func (that *GameController) PlaceFence(player entity.Player, orientation entity.Orientation, coord entity.Coord) bool {
	if err := that.game.PlaceFence(player, orientation, coord); err != nil {
		that.logger.Debug("fence placement rejected", "player", player, "orientation", orientation, "coord", coord, "reason", err)
		return false
	}

	that.logger.Info("fence placed", "player", player, "orientation", orientation, "coord", coord, "reserve", that.game.Reserves[player])

	return true
}

// IsWinner - reports whether the given player has won. Pure read.
func (that *GameController) IsWinner(player entity.Player) bool {
	return that.game.IsWinner(player)
}

// Game exposes the aggregate for read-only collaborators such as the
// board renderer.
func (that *GameController) Game() *entity.Game {
	return that.game
}
