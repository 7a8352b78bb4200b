package connectfour

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/pkg"
)

// Prompter asks a human for one of the accepted values and keeps asking
// with retryMessage until it gets one.
type Prompter interface {
	Prompt(ctx context.Context, message, retryMessage string, accepted []string) (string, error)
}

// Renderer draws the board and shows plain messages.
type Renderer interface {
	Render(board entity.Board) error
	Announce(text string) error
}

type TurnController struct {
	logger   *slog.Logger
	prompter Prompter
	renderer Renderer
	newID    func() string
}

func NewTurnController(logger *slog.Logger, prompter Prompter, renderer Renderer) *TurnController {
	return &TurnController{
		logger:   logger.With("component", "turn_controller"),
		prompter: prompter,
		renderer: renderer,
		newID:    pkg.GenerateMatchID,
	}
}

// PlayMatch runs one match on a fresh board until someone connects four
// or the board fills up. first moves first.
func (that *TurnController) PlayMatch(ctx context.Context, first, second entity.Player) (*entity.MatchResult, error) {
	match := NewMatch(that.newID(), first, second)
	log := that.logger.With("match_id", match.ID)

	log.Info("match started", "first", first.Mark, "second", second.Mark)

	for {
		outcome, err := that.takeTurn(ctx, log, match)
		if err != nil {
			return nil, err
		}

		if outcome.HasWinner() || outcome.Draw {
			result := match.Finish(outcome)
			log.Info("match finished",
				"winner", outcome.Winner,
				"draw", outcome.Draw,
				"moves", result.Moves,
			)

			return result, nil
		}

		match.SwapTurn()
	}
}

func (that *TurnController) takeTurn(ctx context.Context, log *slog.Logger, match *Match) (entity.Outcome, error) {
	player := match.Current()

	if err := that.renderer.Render(match.Board); err != nil {
		return entity.NoWinner(), fmt.Errorf("failed to render board: %w", err)
	}

	available := match.Board.AvailableColumns()
	if len(available) == 0 {
		return entity.Draw(), nil
	}

	selection, err := that.prompter.Prompt(ctx, turnMessage(player), columnRetryMessage(available), available)
	if err != nil {
		return entity.NoWinner(), fmt.Errorf("failed to get column from %s: %w", player, err)
	}

	column, err := strconv.Atoi(selection)
	if err != nil {
		return entity.NoWinner(), fmt.Errorf("%w: column %q", apperror.ErrUnexpectedAnswer, selection)
	}

	row, ok := match.Board.Drop(player.Mark, column-1)
	if ok {
		match.Moves++
		log.Debug("mark dropped", "player", player.Mark, "column", column, "row", row)
	} else {
		log.Warn("move ignored", "player", player.Mark, "column", column, "error", apperror.ErrColumnFull)
	}

	match.State = StateBoardUpdated

	if err = that.renderer.Render(match.Board); err != nil {
		return entity.NoWinner(), fmt.Errorf("failed to render board: %w", err)
	}

	match.State = StateWinCheck

	return EvaluateBoard(&match.Board), nil
}

func turnMessage(player entity.Player) string {
	return fmt.Sprintf("%s's turn. Pick a column.", player)
}

func columnRetryMessage(available []string) string {
	return fmt.Sprintf("Invalid input. Enter one of: %s.", strings.Join(available, ", "))
}
