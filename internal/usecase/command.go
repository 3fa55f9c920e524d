package usecase

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	CommandPlaceMark          = "place"
	CommandNewGame            = "new-game"
	CommandSwapStartingPlayer = "swap-starting-player"
	CommandResetStats         = "reset-stats"
	CommandQuit               = "quit"
)

type engine interface {
	Place(cell entity.Cell) tictactoe.PlaceResult
	NewRound()
	SwapStartingPlayer()
	ResetStatistics()
	Snapshot() entity.Snapshot
}

// Command is a single request from the presentation layer. Each command knows which
// engine operation it maps to.
type Command interface {
	Name() string
	apply(game engine) (accepted bool, err error)
}

// PlaceMark puts the current player's mark on Cell.
type PlaceMark struct {
	Cell entity.Cell
}

func (PlaceMark) Name() string { return CommandPlaceMark }

func (that PlaceMark) apply(game engine) (bool, error) {
	return game.Place(that.Cell).Accepted, nil
}

// NewGame starts a new round.
type NewGame struct{}

func (NewGame) Name() string { return CommandNewGame }

func (NewGame) apply(game engine) (bool, error) {
	game.NewRound()
	return true, nil
}

type SwapStartingPlayer struct{}

func (SwapStartingPlayer) Name() string { return CommandSwapStartingPlayer }

func (SwapStartingPlayer) apply(game engine) (bool, error) {
	game.SwapStartingPlayer()
	return true, nil
}

type ResetStats struct{}

func (ResetStats) Name() string { return CommandResetStats }

func (ResetStats) apply(game engine) (bool, error) {
	game.ResetStatistics()
	return true, nil
}

// Quit leaves the engine alone and reports apperror.ErrQuit.
type Quit struct{}

func (Quit) Name() string { return CommandQuit }

func (Quit) apply(engine) (bool, error) {
	return true, apperror.ErrQuit
}
