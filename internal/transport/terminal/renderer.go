package terminal

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const (
	colorX    = "#E88388"
	colorO    = "#66C2CD"
	colorHint = "#5C5C5C"
)

// Renderer draws the board, status and statistics for every event it is notified about.
type Renderer struct {
	w      io.Writer
	output *termenv.Output
}

// NewRenderer - colours are dropped when noColor is set or w is not a terminal.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{
		w:      w,
		output: termenv.NewOutput(w, opts...),
	}
}

func (that *Renderer) Notify(_ context.Context, event usecase.Event) error {
	var b strings.Builder
	snapshot := event.Snapshot

	switch event.Command {
	case usecase.CommandPlaceMark:
		if !event.Accepted {
			if snapshot.Outcome.IsTerminal() {
				b.WriteString("The round is over, type 'new' to play again.\n")
			} else {
				b.WriteString("That cell is already taken.\n")
			}
			break
		}

		that.writeBoard(&b, snapshot.Board)
		b.WriteString(that.status(snapshot))
		if snapshot.Outcome.IsTerminal() {
			b.WriteString(that.statistics(snapshot.Statistics))
		}
	case usecase.CommandNewGame:
		that.writeBoard(&b, snapshot.Board)
		fmt.Fprintf(&b, "Game starting: %s's turn\n", that.mark(snapshot.CurrentPlayer))
		b.WriteString(that.statistics(snapshot.Statistics))
	case usecase.CommandSwapStartingPlayer:
		fmt.Fprintf(&b, "Next round starts with %s.\n", that.mark(snapshot.StartingPlayer))
	case usecase.CommandResetStats:
		b.WriteString(that.statistics(snapshot.Statistics))
	case usecase.CommandQuit:
		b.WriteString("Bye!\n")
	}

	if _, err := io.WriteString(that.w, b.String()); err != nil {
		return fmt.Errorf("failed to write to terminal: %w", err)
	}

	return nil
}

func (that *Renderer) status(snapshot entity.Snapshot) string {
	switch snapshot.Outcome.Status {
	case entity.StatusWon:
		return fmt.Sprintf("Game over: %s won!\n", that.mark(snapshot.Outcome.Winner))
	case entity.StatusTie:
		return "Game over: TIE!\n"
	default:
		return fmt.Sprintf("Game in progress: %s's turn\n", that.mark(snapshot.CurrentPlayer))
	}
}

func (that *Renderer) statistics(stats entity.Statistics) string {
	return fmt.Sprintf("Statistics:   X Wins: %d   O Wins: %d   Ties: %d\n", stats.XWins, stats.OWins, stats.Ties)
}

// writeBoard - empty cells show the number that places on them.
func (that *Renderer) writeBoard(b *strings.Builder, board entity.Board) {
	for row := range entity.BoardSize {
		if row > 0 {
			b.WriteString("---+---+---\n")
		}

		for col := range entity.BoardSize {
			if col > 0 {
				b.WriteByte('|')
			}

			mark := board[row][col]
			if mark == entity.EmptyCell {
				hint := strconv.Itoa(row*entity.BoardSize + col + 1)
				b.WriteString(" " + that.output.String(hint).Foreground(that.output.Color(colorHint)).String() + " ")
				continue
			}

			b.WriteString(" " + that.mark(mark) + " ")
		}

		b.WriteByte('\n')
	}
}

func (that *Renderer) mark(mark entity.Mark) string {
	style := that.output.String(mark.String()).Bold()

	switch mark {
	case entity.PlayerX:
		style = style.Foreground(that.output.Color(colorX))
	case entity.PlayerO:
		style = style.Foreground(that.output.Color(colorO))
	}

	return style.String()
}
