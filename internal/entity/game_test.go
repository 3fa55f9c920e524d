package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark_Opponent(t *testing.T) {
	t.Run("Players toggle", func(t *testing.T) {
		assert.Equal(t, PlayerO, PlayerX.Opponent())
		assert.Equal(t, PlayerX, PlayerO.Opponent())
	})

	t.Run("Empty cell has no opponent", func(t *testing.T) {
		assert.Equal(t, EmptyCell, EmptyCell.Opponent())
		assert.False(t, EmptyCell.IsPlayer())
	})
}

func TestNewCell(t *testing.T) {
	t.Run("Returns cell for coordinates on the board", func(t *testing.T) {
		// When: building a cell in range
		cell, err := NewCell(2, 1)

		// Then: the coordinates are kept
		require.NoError(t, err)
		assert.Equal(t, 2, cell.Row())
		assert.Equal(t, 1, cell.Col())
	})

	t.Run("Returns ErrInvalidCell for coordinates off the board", func(t *testing.T) {
		for _, coords := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
			// When: building a cell out of range
			_, err := NewCell(coords[0], coords[1])

			// Then: ErrInvalidCell is returned
			require.ErrorIs(t, err, ErrInvalidCell, "coords %v", coords)
		}
	})

	t.Run("MustCell panics off the board", func(t *testing.T) {
		assert.Panics(t, func() { MustCell(3, 3) })
		assert.NotPanics(t, func() { MustCell(0, 2) })
	})
}

func TestCellFromIndex(t *testing.T) {
	t.Run("Maps row-major indexes", func(t *testing.T) {
		// When: converting index 5
		cell, err := CellFromIndex(5)

		// Then: it is row 1, column 2
		require.NoError(t, err)
		assert.Equal(t, MustCell(1, 2), cell)
	})

	t.Run("Rejects indexes outside the board", func(t *testing.T) {
		_, err := CellFromIndex(9)
		require.ErrorIs(t, err, ErrInvalidCell)

		_, err = CellFromIndex(-1)
		require.ErrorIs(t, err, ErrInvalidCell)
	})
}

func TestBoard(t *testing.T) {
	// Given: an empty board
	var board Board
	require.Equal(t, TotalCells, board.FreeCells())

	// When: two cells are marked
	board.Set(MustCell(0, 0), PlayerX)
	board.Set(MustCell(1, 1), PlayerO)

	// Then: marks are readable and the free count drops
	assert.Equal(t, PlayerX, board.At(MustCell(0, 0)))
	assert.Equal(t, PlayerO, board.At(MustCell(1, 1)))
	assert.Equal(t, EmptyCell, board.At(MustCell(2, 2)))
	assert.Equal(t, 7, board.FreeCells())
}

func TestStatistics_Record(t *testing.T) {
	// Given: empty statistics
	var stats Statistics

	// When: recording a mix of outcomes
	stats.Record(WonBy(PlayerX))
	stats.Record(WonBy(PlayerX))
	stats.Record(WonBy(PlayerO))
	stats.Record(Tie())
	stats.Record(InProgress())

	// Then: only terminal outcomes are counted
	assert.Equal(t, Statistics{XWins: 2, OWins: 1, Ties: 1}, stats)
	assert.Equal(t, 4, stats.Total())
}

func TestOutcome_IsTerminal(t *testing.T) {
	assert.False(t, InProgress().IsTerminal())
	assert.True(t, WonBy(PlayerO).IsTerminal())
	assert.True(t, Tie().IsTerminal())
	assert.True(t, Tie().IsTie())
}
