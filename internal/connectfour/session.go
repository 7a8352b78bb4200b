package connectfour

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

type matchPlayer interface {
	PlayMatch(ctx context.Context, first, second entity.Player) (*entity.MatchResult, error)
}

// RematchVocabulary holds the answers accepted to the "play again" question.
type RematchVocabulary struct {
	Yes []string
	No  []string
}

func (that RematchVocabulary) Validate() error {
	if len(that.Yes) == 0 || len(that.No) == 0 {
		return fmt.Errorf("%w: rematch answers", apperror.ErrEmptyAcceptedValues)
	}

	for _, yes := range that.Yes {
		if containsFold(that.No, yes) {
			return fmt.Errorf("%w: %q is both a yes and a no", apperror.ErrInvalidConfig, yes)
		}
	}

	return nil
}

func (that RematchVocabulary) accepted() []string {
	return append(append([]string{}, that.Yes...), that.No...)
}

func (that RematchVocabulary) IsAffirmative(answer string) bool {
	return containsFold(that.Yes, answer)
}

// MatchSession plays matches back to back for as long as the players want
// a rematch. The winner of a match moves first in the next one.
type MatchSession struct {
	logger     *slog.Logger
	controller matchPlayer
	prompter   Prompter
	renderer   Renderer
	vocabulary RematchVocabulary
	players    [2]entity.Player
	scoreboard *Scoreboard
}

func NewMatchSession(
	logger *slog.Logger,
	controller matchPlayer,
	prompter Prompter,
	renderer Renderer,
	first, second entity.Player,
	vocabulary RematchVocabulary,
) (*MatchSession, error) {
	if first.Mark == entity.Empty || second.Mark == entity.Empty || first.Mark == second.Mark {
		return nil, fmt.Errorf("%w: %q and %q", apperror.ErrPlayersNotDistinct, first, second)
	}

	if err := vocabulary.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rematch vocabulary: %w", err)
	}

	return &MatchSession{
		logger:     logger.With("component", "match_session"),
		controller: controller,
		prompter:   prompter,
		renderer:   renderer,
		vocabulary: vocabulary,
		players:    [2]entity.Player{first, second},
		scoreboard: NewScoreboard(first.Mark, second.Mark),
	}, nil
}

// Run plays matches until a rematch is declined. It returns the number of
// matches played.
func (that *MatchSession) Run(ctx context.Context) (int, error) {
	first, second := that.players[0], that.players[1]
	played := 0

	for {
		result, err := that.controller.PlayMatch(ctx, first, second)
		if err != nil {
			return played, fmt.Errorf("failed to play match: %w", err)
		}

		played++
		that.scoreboard.Record(result.Outcome)

		if err = that.renderer.Announce(that.scoreboard.String()); err != nil {
			return played, fmt.Errorf("failed to announce score: %w", err)
		}

		again, err := that.askRematch(ctx, result)
		if err != nil {
			return played, err
		}

		if !again {
			that.logger.Info("session finished", "matches", played, "score", that.scoreboard.String())
			return played, nil
		}

		first, second = result.Winner, result.Loser
	}
}

func (that *MatchSession) Scoreboard() *Scoreboard {
	return that.scoreboard
}

func (that *MatchSession) askRematch(ctx context.Context, result *entity.MatchResult) (bool, error) {
	info := "It's a draw! Play again?"
	if result.Outcome.HasWinner() {
		info = fmt.Sprintf("%s wins! Play again?", result.Winner)
	}

	retryText := fmt.Sprintf("Invalid input. Enter '%s' or '%s'", that.vocabulary.Yes[0], that.vocabulary.No[0])

	answer, err := that.prompter.Prompt(ctx, info, retryText, that.vocabulary.accepted())
	if err != nil {
		return false, fmt.Errorf("failed to ask for a rematch: %w", err)
	}

	return that.vocabulary.IsAffirmative(answer), nil
}

func containsFold(values []string, value string) bool {
	for _, candidate := range values {
		if strings.EqualFold(candidate, value) {
			return true
		}
	}

	return false
}
