package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const helpText = `Commands:
  1-9                 place on a cell, numbered left to right, top to bottom
  place <row> <col>   place on a cell, rows and columns from 0 to 2 (alias: p)
  new                 start a new round (alias: n)
  swap                swap who starts the next round (alias: s)
  reset               reset statistics (alias: r)
  help                show this help (alias: h, ?)
  quit                leave the game (alias: q, exit)
`

// ParseCommand - turns one line of user input into a command.
func ParseCommand(line string) (usecase.Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty input", apperror.ErrUnknownCommand)
	}

	verb, args := fields[0], fields[1:]

	if len(fields) == 1 && len(verb) == 1 && verb[0] >= '1' && verb[0] <= '9' {
		cell, err := entity.CellFromIndex(int(verb[0] - '1'))
		if err != nil {
			return nil, fmt.Errorf("failed to parse cell number: %w", err)
		}
		return usecase.PlaceMark{Cell: cell}, nil
	}

	switch verb {
	case "place", "p":
		return parsePlace(args)
	case "new", "n":
		return noArgs(usecase.NewGame{}, verb, args)
	case "swap", "s":
		return noArgs(usecase.SwapStartingPlayer{}, verb, args)
	case "reset", "r":
		return noArgs(usecase.ResetStats{}, verb, args)
	case "quit", "q", "exit":
		return usecase.Quit{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, verb)
	}
}

func parsePlace(args []string) (usecase.Command, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: place expects <row> <col>, got %d arguments", apperror.ErrInvalidArguments, len(args))
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: row %q is not a number", apperror.ErrInvalidArguments, args[0])
	}

	col, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("%w: column %q is not a number", apperror.ErrInvalidArguments, args[1])
	}

	cell, err := entity.NewCell(row, col)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cell: %w", err)
	}

	return usecase.PlaceMark{Cell: cell}, nil
}

func noArgs(command usecase.Command, verb string, args []string) (usecase.Command, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("%w: %s takes no arguments", apperror.ErrInvalidArguments, verb)
	}
	return command, nil
}
