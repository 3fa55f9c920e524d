package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const prompt = "> "

type gameManager interface {
	Execute(ctx context.Context, command usecase.Command) (usecase.Event, error)
}

// Session reads commands line by line and hands them to the game manager.
// Rendering happens through the notifiers registered on the manager.
type Session struct {
	logger  *slog.Logger
	manager gameManager

	in  io.Reader
	out io.Writer
}

func NewSession(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer) *Session {
	return &Session{
		logger:  logger.With("component", "terminal"),
		manager: manager,
		in:      in,
		out:     out,
	}
}

// Run - starts a round and processes input until quit, end of input or ctx is done.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	if _, err := that.manager.Execute(ctx, usecase.NewGame{}); err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}

	// the reader goroutine stops once Run returns, unless it is blocked inside a Read on in.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, scanErrCh := that.readLines(ctx)

	for {
		that.write(prompt)

		select {
		case <-ctx.Done():
			log.Info("session canceled")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErrCh; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				log.Info("input closed")
				return nil
			}

			if err := that.handleLine(ctx, line); err != nil {
				if errors.Is(err, apperror.ErrQuit) {
					log.Info("player quit")
					return nil
				}
				return err
			}
		}
	}
}

func (that *Session) handleLine(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)

	switch strings.ToLower(line) {
	case "":
		return nil
	case "help", "h", "?":
		that.write(helpText)
		return nil
	}

	command, err := ParseCommand(line)
	if err != nil {
		that.logger.Debug("bad input", "line", line, "error", err)
		that.write(fmt.Sprintf("%v (type 'help' for commands)\n", err))
		return nil
	}

	if _, err = that.manager.Execute(ctx, command); err != nil {
		if errors.Is(err, apperror.ErrQuit) {
			return err
		}
		return fmt.Errorf("failed to execute command: %w", err)
	}

	return nil
}

// readLines - scans input on its own goroutine so Run can also watch ctx.
func (that *Session) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		var err error
		defer func() {
			errCh <- err
			close(lines)
		}()

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		err = scanner.Err()
	}()

	return lines, errCh
}

func (that *Session) write(s string) {
	if _, err := io.WriteString(that.out, s); err != nil {
		that.logger.Error("failed to write to terminal", "error", err)
	}
}
