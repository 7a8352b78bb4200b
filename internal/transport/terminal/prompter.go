package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

type line struct {
	text string
	err  error
}

// Prompter reads answers line by line from an input stream.
type Prompter struct {
	logger *slog.Logger
	out    io.Writer
	lines  <-chan line
}

func NewPrompter(logger *slog.Logger, in io.Reader, out io.Writer) *Prompter {
	lines := make(chan line)

	go func() {
		defer close(lines)

		reader := bufio.NewReader(in)
		for {
			text, err := reader.ReadString('\n')
			if text != "" {
				lines <- line{text: text}
			}

			if err != nil {
				if !errors.Is(err, io.EOF) {
					lines <- line{err: err}
				}
				return
			}
		}
	}()

	return &Prompter{
		logger: logger.With("component", "prompter"),
		out:    out,
		lines:  lines,
	}
}

// Prompt prints message and reads lines until one of them matches an
// accepted value, ignoring case and surrounding spaces. After each miss it
// prints retryMessage. The matched value is returned in lower case.
func (that *Prompter) Prompt(ctx context.Context, message, retryMessage string, accepted []string) (string, error) {
	if len(accepted) == 0 {
		return "", apperror.ErrEmptyAcceptedValues
	}

	valid := make([]string, 0, len(accepted))
	for _, value := range accepted {
		valid = append(valid, strings.ToLower(value))
	}

	if _, err := fmt.Fprintln(that.out, message); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	for {
		input, err := that.readLine(ctx)
		if err != nil {
			return "", err
		}

		input = strings.ToLower(strings.TrimSpace(input))
		if slices.Contains(valid, input) {
			return input, nil
		}

		that.logger.Debug("rejected input", "input", input)

		if _, err = fmt.Fprintln(that.out, retryMessage); err != nil {
			return "", fmt.Errorf("failed to write retry message: %w", err)
		}
	}
}

func (that *Prompter) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case next, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}

		if next.err != nil {
			return "", fmt.Errorf("failed to read input: %w", next.err)
		}

		return next.text, nil
	}
}
