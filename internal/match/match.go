package match

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/DenxyChen/osu-cs-162-Quoridor/internal/entity"
	"github.com/DenxyChen/osu-cs-162-Quoridor/internal/quoridor"
	"github.com/DenxyChen/osu-cs-162-Quoridor/internal/renderer"
)

const usage = `commands:
  move <col> <row>       move your pawn to the adjacent cell (col,row)
  fence <h|v> <col> <row> place a fence at (col,row)
  board                  show the board and fence reserves
  quit                   abandon the match`

// Match drives one local two-player game over a command stream. Turn
// alternation is owned by the game state; the loop only prompts whoever
// currently holds the turn.
type Match struct {
	logger     *slog.Logger
	controller *quoridor.GameController
	renderer   *renderer.BoardRenderer
	in         io.Reader
	out        io.Writer
	names      map[entity.Player]string
}

func New(logger *slog.Logger, controller *quoridor.GameController, boardRenderer *renderer.BoardRenderer, in io.Reader, out io.Writer, nameOne, nameTwo string) *Match {
	return &Match{
		logger:     logger.With("component", "match"),
		controller: controller,
		renderer:   boardRenderer,
		in:         in,
		out:        out,
		names: map[entity.Player]string{
			entity.Player1: nameOne,
			entity.Player2: nameTwo,
		},
	}
}

// Run reads commands until the match is won, the input stream ends, a
// player quits, or the context is canceled.
func (that *Match) Run(ctx context.Context) error {
	that.printf("%s\n\n", usage)

	if err := that.showBoard(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(that.in)

	for {
		select {
		case <-ctx.Done():
			that.logger.Info("match interrupted")
			return nil
		default:
		}

		actor := that.controller.Game().Turn
		that.printf("%s> ", that.names[actor])

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}

			that.logger.Info("input stream closed, ending match")

			return nil
		}

		quit, err := that.dispatch(actor, scanner.Text())
		if err != nil {
			return err
		}

		if quit {
			return nil
		}

		if that.controller.IsWinner(actor) {
			that.printf("%s wins!\n", that.names[actor])
			return nil
		}
	}
}

// dispatch - parses and applies one command for the prompted player.
// The quit result is true only for an explicit quit command.
func (that *Match) dispatch(actor entity.Player, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit":
		that.printf("match abandoned\n")
		return true, nil
	case "board":
		return false, that.showBoard()
	case "move":
		coord, ok := parseCoord(fields[1:])
		if !ok {
			that.printf("%s\n", usage)
			return false, nil
		}

		if !that.controller.MovePawn(actor, coord) {
			that.printf("illegal move, try again\n")
			return false, nil
		}

		return false, that.showBoard()
	case "fence":
		if len(fields) != 4 || (fields[1] != string(entity.Horizontal) && fields[1] != string(entity.Vertical)) {
			that.printf("%s\n", usage)
			return false, nil
		}

		coord, ok := parseCoord(fields[2:])
		if !ok {
			that.printf("%s\n", usage)
			return false, nil
		}

		if !that.controller.PlaceFence(actor, entity.Orientation(fields[1]), coord) {
			that.printf("illegal fence placement, try again\n")
			return false, nil
		}

		return false, that.showBoard()
	default:
		that.printf("%s\n", usage)
		return false, nil
	}
}

func (that *Match) showBoard() error {
	game := that.controller.Game()

	if err := that.renderer.Render(game); err != nil {
		return fmt.Errorf("failed to show board: %w", err)
	}

	that.printf("fences left: %s %d, %s %d\n",
		that.names[entity.Player1], game.Reserves[entity.Player1],
		that.names[entity.Player2], game.Reserves[entity.Player2])

	return nil
}

func (that *Match) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

func parseCoord(fields []string) (entity.Coord, bool) {
	if len(fields) != 2 {
		return entity.Coord{}, false
	}

	col, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Coord{}, false
	}

	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Coord{}, false
	}

	return entity.Coord{Col: col, Row: row}, true
}
