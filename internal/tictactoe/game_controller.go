package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// earliest possible win is the fifth move, so with more free cells than this no line can be complete.
const maxFreeCellsForWin = entity.TotalCells - 5

// PlaceResult is what a placement leaves behind. Accepted is false when the move was ignored.
type PlaceResult struct {
	Accepted      bool
	Outcome       entity.Outcome
	CurrentPlayer entity.Mark
	Statistics    entity.Statistics
}

// GameController owns the board, turn order and statistics of a sequence of rounds.
// It does no locking: callers serialize access.
type GameController struct {
	board          entity.Board
	currentPlayer  entity.Mark
	startingPlayer entity.Mark
	outcome        entity.Outcome
	freeCells      int
	stats          entity.Statistics
}

// NewGameController - creates a controller with a fresh round in progress.
// Anything but PlayerO as startingPlayer means X moves first.
func NewGameController(startingPlayer entity.Mark) *GameController {
	if startingPlayer != entity.PlayerO {
		startingPlayer = entity.PlayerX
	}

	controller := &GameController{startingPlayer: startingPlayer}
	controller.NewRound()

	return controller
}

// Place - puts the current player's mark on the cell.
// A finished round or an occupied cell leaves the state untouched and reports Accepted=false.
func (that *GameController) Place(cell entity.Cell) PlaceResult {
	if that.outcome.IsTerminal() || that.board.At(cell) != entity.EmptyCell {
		return that.result(false)
	}

	that.board.Set(cell, that.currentPlayer)
	that.freeCells--

	switch {
	case that.haveWinner(cell):
		that.finishRound(entity.WonBy(that.currentPlayer))
	case that.freeCells == 0:
		that.finishRound(entity.Tie())
	default:
		that.currentPlayer = that.currentPlayer.Opponent()
	}

	return that.result(true)
}

// NewRound - clears the board and hands the first move to the starting player.
func (that *GameController) NewRound() {
	that.board = entity.Board{}
	that.freeCells = entity.TotalCells
	that.outcome = entity.InProgress()
	that.currentPlayer = that.startingPlayer
}

// SwapStartingPlayer - toggles who opens the next round. The round in progress is not affected.
func (that *GameController) SwapStartingPlayer() {
	that.startingPlayer = that.startingPlayer.Opponent()
}

func (that *GameController) ResetStatistics() {
	that.stats = entity.Statistics{}
}

func (that *GameController) Board() entity.Board {
	return that.board
}

// CurrentPlayer - whose turn is next. Once the round is over it is the player who made the last move.
func (that *GameController) CurrentPlayer() entity.Mark {
	return that.currentPlayer
}

func (that *GameController) StartingPlayer() entity.Mark {
	return that.startingPlayer
}

func (that *GameController) Outcome() entity.Outcome {
	return that.outcome
}

func (that *GameController) FreeCells() int {
	return that.freeCells
}

func (that *GameController) Statistics() entity.Statistics {
	return that.stats
}

func (that *GameController) Snapshot() entity.Snapshot {
	return entity.Snapshot{
		Board:          that.board,
		CurrentPlayer:  that.currentPlayer,
		StartingPlayer: that.startingPlayer,
		Outcome:        that.outcome,
		FreeCells:      that.freeCells,
		Statistics:     that.stats,
	}
}

func (that *GameController) finishRound(outcome entity.Outcome) {
	that.outcome = outcome
	that.stats.Record(outcome)
}

func (that *GameController) result(accepted bool) PlaceResult {
	return PlaceResult{
		Accepted:      accepted,
		Outcome:       that.outcome,
		CurrentPlayer: that.currentPlayer,
		Statistics:    that.stats,
	}
}

// haveWinner - checks only the lines through the cell just filled.
// The filled cell is never empty, so three equal marks on such a line is a win for its owner.
func (that *GameController) haveWinner(cell entity.Cell) bool {
	if that.freeCells > maxFreeCellsForWin {
		return false
	}

	b := &that.board
	row, col := cell.Row(), cell.Col()

	if b[row][0] == b[row][1] && b[row][1] == b[row][2] {
		return true
	}

	if b[0][col] == b[1][col] && b[1][col] == b[2][col] {
		return true
	}

	if row == col && b[0][0] == b[1][1] && b[1][1] == b[2][2] {
		return true
	}

	if row == 2-col && b[0][2] == b[1][1] && b[1][1] == b[2][0] {
		return true
	}

	return false
}
