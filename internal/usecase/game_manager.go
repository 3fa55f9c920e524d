package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrNilCommand = errors.New("command is nil")

// Event describes the engine state right after a command ran.
type Event struct {
	SessionID string          `json:"session_id"`
	Command   string          `json:"command"`
	Accepted  bool            `json:"accepted"`
	Snapshot  entity.Snapshot `json:"snapshot"`
}

// Notifier is told about every executed command, e.g. a renderer or an event publisher.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// GameManager serializes commands into a single engine and fans the resulting state out to notifiers.
type GameManager struct {
	logger    *slog.Logger
	sessionID string

	mu        sync.Mutex
	game      engine
	notifiers []Notifier
}

func NewGameManager(logger *slog.Logger, game engine, notifiers ...Notifier) *GameManager {
	sessionID := uuid.NewString()

	return &GameManager{
		logger:    logger.With("component", "game_manager", "session_id", sessionID),
		sessionID: sessionID,

		game:      game,
		notifiers: notifiers,
	}
}

func (that *GameManager) SessionID() string {
	return that.sessionID
}

// Subscribe - adds a notifier for subsequent commands.
func (that *GameManager) Subscribe(notifier Notifier) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.notifiers = append(that.notifiers, notifier)
}

// Snapshot - current engine state.
func (that *GameManager) Snapshot() entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.Snapshot()
}

// Execute - runs the command against the engine and notifies subscribers.
// A quit command returns apperror.ErrQuit after notifying.
func (that *GameManager) Execute(ctx context.Context, command Command) (Event, error) {
	if command == nil {
		return Event{}, ErrNilCommand
	}

	log := that.logger.With("method", "Execute", "command", command.Name())

	that.mu.Lock()
	accepted, cmdErr := command.apply(that.game)
	event := Event{
		SessionID: that.sessionID,
		Command:   command.Name(),
		Accepted:  accepted,
		Snapshot:  that.game.Snapshot(),
	}
	notifiers := append([]Notifier(nil), that.notifiers...)
	that.mu.Unlock()

	switch {
	case !accepted:
		log.Debug("command rejected", "snapshot_status", event.Snapshot.Outcome.Status)
	case event.Snapshot.Outcome.IsTerminal() && command.Name() == CommandPlaceMark:
		log.Info("round finished",
			"status", event.Snapshot.Outcome.Status,
			"winner", event.Snapshot.Outcome.Winner,
			"x_wins", event.Snapshot.Statistics.XWins,
			"o_wins", event.Snapshot.Statistics.OWins,
			"ties", event.Snapshot.Statistics.Ties,
		)
	default:
		log.Debug("command executed")
	}

	for _, notifier := range notifiers {
		if err := notifier.Notify(ctx, event); err != nil {
			log.Error("failed to notify", "error", err)
		}
	}

	if cmdErr != nil {
		if errors.Is(cmdErr, apperror.ErrQuit) {
			return event, cmdErr
		}
		return event, fmt.Errorf("failed to execute %s: %w", command.Name(), cmdErr)
	}

	return event, nil
}
