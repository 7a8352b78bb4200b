package terminal

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewPrompter(logger, strings.NewReader(input), out), out
}

func TestPrompter_Prompt(t *testing.T) {
	ctx := context.Background()
	columns := []string{"1", "2", "3"}

	t.Run("Returns the first valid answer", func(t *testing.T) {
		// Given: a player typing a valid column
		prompter, out := newTestPrompter("2\n")

		// When: prompting for a column
		answer, err := prompter.Prompt(ctx, "x's turn. Pick a column.", "Try again.", columns)

		// Then: the answer is returned after a single prompt
		require.NoError(t, err)
		assert.Equal(t, "2", answer)
		assert.Equal(t, "x's turn. Pick a column.\n", out.String())
	})

	t.Run("Retries until the input is accepted", func(t *testing.T) {
		// Given: two invalid lines followed by a valid one
		prompter, out := newTestPrompter("9\nabc\n3\n")

		// When: prompting for a column
		answer, err := prompter.Prompt(ctx, "Pick.", "Try again.", columns)

		// Then: the retry message is printed after every miss
		require.NoError(t, err)
		assert.Equal(t, "3", answer)
		assert.Equal(t, "Pick.\nTry again.\nTry again.\n", out.String())
	})

	t.Run("Ignores case and surrounding spaces", func(t *testing.T) {
		// Given: an answer in upper case with padding
		prompter, _ := newTestPrompter("  YES \r\n")

		// When: prompting with mixed case accepted values
		answer, err := prompter.Prompt(ctx, "Play again?", "yes or no", []string{"Yes", "y", "No", "n"})

		// Then: the normalized value is returned
		require.NoError(t, err)
		assert.Equal(t, "yes", answer)
	})

	t.Run("Retries after a line longer than the default scanner buffer", func(t *testing.T) {
		// Given: a huge line followed by a valid answer
		prompter, out := newTestPrompter(strings.Repeat("a", 70000) + "\n3\n")

		// When: prompting for a column
		answer, err := prompter.Prompt(ctx, "Pick.", "Try again.", columns)

		// Then: the huge line is rejected like any other bad input
		require.NoError(t, err)
		assert.Equal(t, "3", answer)
		assert.Equal(t, "Pick.\nTry again.\n", out.String())
	})

	t.Run("Accepts a last line without a newline", func(t *testing.T) {
		prompter, _ := newTestPrompter("2")

		answer, err := prompter.Prompt(ctx, "Pick.", "Try again.", columns)

		require.NoError(t, err)
		assert.Equal(t, "2", answer)
	})

	t.Run("Returns the read error of the input", func(t *testing.T) {
		// Given: an input stream that fails
		reader, writer := io.Pipe()
		_ = writer.CloseWithError(io.ErrUnexpectedEOF)

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		prompter := NewPrompter(logger, reader, io.Discard)

		// When: prompting for a column
		_, err := prompter.Prompt(ctx, "Pick.", "Try again.", columns)

		// Then: the read error is returned
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("Reads consecutive prompts from the same stream", func(t *testing.T) {
		prompter, _ := newTestPrompter("1\n3\n")

		first, err := prompter.Prompt(ctx, "Pick.", "Try again.", columns)
		require.NoError(t, err)
		second, err := prompter.Prompt(ctx, "Pick.", "Try again.", columns)
		require.NoError(t, err)

		assert.Equal(t, "1", first)
		assert.Equal(t, "3", second)
	})

	t.Run("Returns ErrInputClosed at the end of input", func(t *testing.T) {
		// Given: input that ends without a valid answer
		prompter, _ := newTestPrompter("8\n")

		// When: prompting for a column
		_, err := prompter.Prompt(ctx, "Pick.", "Try again.", columns)

		// Then: the prompter reports the closed input
		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Returns the context error when cancelled", func(t *testing.T) {
		// Given: a reader that never produces a line
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		prompter := NewPrompter(logger, reader, io.Discard)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		// When: prompting with a cancelled context
		_, err := prompter.Prompt(cancelled, "Pick.", "Try again.", columns)

		// Then: the cancellation is returned
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Rejects an empty set of accepted values", func(t *testing.T) {
		prompter, _ := newTestPrompter("1\n")

		_, err := prompter.Prompt(ctx, "Pick.", "Try again.", nil)

		require.ErrorIs(t, err, apperror.ErrEmptyAcceptedValues)
	})
}
