package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/transport/terminal"
)

// RunApp - runs the game on the process terminal until the players stop.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the terminal collaborators into a session and plays it.
// Closed input and cancellation end the session without an error.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	first := entity.NewPlayer(conf.Players.First)
	second := entity.NewPlayer(conf.Players.Second)

	prompter := terminal.NewPrompter(logger, in, out)
	renderer := terminal.NewRenderer(out, terminal.RendererOptions{
		Delimiter: conf.Render.Delimiter,
		Color:     !conf.Render.NoColor,
		Marks:     []entity.Mark{first.Mark, second.Mark},
	})

	controller := connectfour.NewTurnController(logger, prompter, renderer)

	session, err := connectfour.NewMatchSession(logger, controller, prompter, renderer, first, second, connectfour.RematchVocabulary{
		Yes: conf.Rematch.Yes,
		No:  conf.Rematch.No,
	})
	if err != nil {
		return fmt.Errorf("could not create session: %w", err)
	}

	played, err := session.Run(ctx)
	switch {
	case errors.Is(err, apperror.ErrInputClosed), errors.Is(err, context.Canceled):
		log.Info("Session interrupted", "matches", played, "reason", err)
		return nil
	case err != nil:
		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("Session ended", "matches", played)

	return nil
}
