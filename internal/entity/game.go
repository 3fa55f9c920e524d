package entity

import (
	"errors"
	"fmt"
)

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""

	BoardSize  = 3
	TotalCells = BoardSize * BoardSize
)

var ErrInvalidCell = errors.New("invalid cell")

// Mark is the value held by a board cell. PlayerX and PlayerO double as the players themselves.
type Mark string

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the other player. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) String() string {
	if that == EmptyCell {
		return " "
	}
	return string(that)
}

// Cell is a board coordinate. It can only be built through NewCell, MustCell or CellFromIndex,
// so a Cell held by the engine is always on the board.
type Cell struct {
	row, col uint8
}

func NewCell(row, col int) (Cell, error) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return Cell{}, fmt.Errorf("%w: (%d, %d)", ErrInvalidCell, row, col)
	}

	return Cell{row: uint8(row), col: uint8(col)}, nil
}

// MustCell - like NewCell but panics on out-of-range coordinates.
func MustCell(row, col int) Cell {
	cell, err := NewCell(row, col)
	if err != nil {
		panic(err)
	}
	return cell
}

// CellFromIndex - maps a row-major index in [0, 8] to a cell.
func CellFromIndex(index int) (Cell, error) {
	if index < 0 || index >= TotalCells {
		return Cell{}, fmt.Errorf("%w: index %d", ErrInvalidCell, index)
	}

	return Cell{row: uint8(index / BoardSize), col: uint8(index % BoardSize)}, nil
}

func (that Cell) Row() int { return int(that.row) }
func (that Cell) Col() int { return int(that.col) }

func (that Cell) String() string {
	return fmt.Sprintf("(%d, %d)", that.row, that.col)
}

// Board is the 3x3 grid, row-major.
type Board [BoardSize][BoardSize]Mark

func (that Board) At(cell Cell) Mark {
	return that[cell.row][cell.col]
}

func (that *Board) Set(cell Cell, mark Mark) {
	that[cell.row][cell.col] = mark
}

func (that Board) FreeCells() int {
	free := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				free++
			}
		}
	}
	return free
}
