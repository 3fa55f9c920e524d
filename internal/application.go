package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// RunApp - runs the application: one game session on in/out until the player quits or a signal arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gameController := tictactoe.NewGameController(entity.Mark(conf.StartingPlayer))
	gameManager := usecase.NewGameManager(logger, gameController, terminal.NewRenderer(out, conf.NoColor))

	if conf.Redis.Enabled {
		publisher, err := redis.NewPublisher(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Channel)
		if err != nil {
			return fmt.Errorf("could not create redis publisher: %w", err)
		}

		defer func() {
			if err = publisher.Close(); err != nil {
				log.Error("could not close redis publisher", "error", err)
			}
		}()

		gameManager.Subscribe(publisher)
		log.Info("Publishing game events", "addr", conf.Redis.GetRedisAddr(), "channel", conf.Redis.Channel)
	}

	log.Info("Starting game session", "session_id", gameManager.SessionID(), "starting_player", gameController.StartingPlayer())

	session := terminal.NewSession(logger, gameManager, in, out)
	if err := session.Run(ctx); err != nil {
		return fmt.Errorf("game session error: %w", err)
	}

	log.Info("Game session finished", "statistics", gameManager.Snapshot().Statistics)

	return nil
}
