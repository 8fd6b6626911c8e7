package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/DenxyChen/osu-cs-162-Quoridor/internal/entity"
)

// BoardRenderer prints a human-readable view of the board. It only reads
// game state and never mutates it.
type BoardRenderer struct {
	out io.Writer
}

func New(out io.Writer) *BoardRenderer {
	return &BoardRenderer{out: out}
}

// Render writes the board: one line of horizontal fence markers per row,
// then the row's cells, each preceded by its vertical fence marker and
// showing the occupying pawn in brackets. The trailing sentinel row
// contributes the final fence line for the sealed south boundary.
func (that *BoardRenderer) Render(game *entity.Game) error {
	var view strings.Builder

	for row := 0; row < entity.PlayableSize+1; row++ {
		for col := 0; col < entity.PlayableSize; col++ {
			if game.Board.At(entity.Coord{Col: col, Row: row}).Horizontal != nil {
				view.WriteString("  _ ")
			} else {
				view.WriteString("    ")
			}
		}
		view.WriteString("\n")

		if row == entity.PlayableSize {
			break
		}

		for col := 0; col < entity.PlayableSize+1; col++ {
			cell := game.Board.At(entity.Coord{Col: col, Row: row})

			if cell.Vertical != nil {
				view.WriteString("|")
			} else {
				view.WriteString(" ")
			}

			if col == entity.PlayableSize {
				break
			}

			if cell.Pawn.IsGameplay() {
				view.WriteString("[" + cell.Pawn.String() + "]")
			} else {
				view.WriteString("[ ]")
			}
		}
		view.WriteString("\n")
	}

	if _, err := io.WriteString(that.out, view.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}
