package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

func TestParseCommand(t *testing.T) {
	t.Run("Valid commands", func(t *testing.T) {
		cases := map[string]usecase.Command{
			"place 0 2": usecase.PlaceMark{Cell: entity.MustCell(0, 2)},
			"P 2 1":     usecase.PlaceMark{Cell: entity.MustCell(2, 1)},
			"  1  ":     usecase.PlaceMark{Cell: entity.MustCell(0, 0)},
			"5":         usecase.PlaceMark{Cell: entity.MustCell(1, 1)},
			"9":         usecase.PlaceMark{Cell: entity.MustCell(2, 2)},
			"new":       usecase.NewGame{},
			"n":         usecase.NewGame{},
			"swap":      usecase.SwapStartingPlayer{},
			"S":         usecase.SwapStartingPlayer{},
			"reset":     usecase.ResetStats{},
			"r":         usecase.ResetStats{},
			"quit":      usecase.Quit{},
			"exit":      usecase.Quit{},
			"q":         usecase.Quit{},
		}

		for line, expected := range cases {
			// When: parsing the line
			command, err := ParseCommand(line)

			// Then: it maps to the expected command
			require.NoError(t, err, "line %q", line)
			assert.Equal(t, expected, command, "line %q", line)
		}
	})

	t.Run("Out of range cell", func(t *testing.T) {
		// When: a coordinate is off the board
		_, err := ParseCommand("place 3 0")

		// Then: ErrInvalidCell is returned
		require.ErrorIs(t, err, entity.ErrInvalidCell)
	})

	t.Run("Bad arguments", func(t *testing.T) {
		for _, line := range []string{"place 1", "place a 1", "place 1 b", "new now", "reset 1 2"} {
			_, err := ParseCommand(line)
			require.ErrorIs(t, err, apperror.ErrInvalidArguments, "line %q", line)
		}
	})

	t.Run("Unknown commands", func(t *testing.T) {
		for _, line := range []string{"", "0", "10", "jump", "undo"} {
			_, err := ParseCommand(line)
			require.ErrorIs(t, err, apperror.ErrUnknownCommand, "line %q", line)
		}
	})
}
