package connectfour

import (
	"context"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockT interface {
	mock.TestingT
	Cleanup(func())
}

type mockPrompter struct {
	mock.Mock
}

func newMockPrompter(t mockT) *mockPrompter {
	m := &mockPrompter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (that *mockPrompter) Prompt(ctx context.Context, message, retryMessage string, accepted []string) (string, error) {
	args := that.Called(ctx, message, retryMessage, accepted)

	return args.String(0), args.Error(1)
}

type mockRenderer struct {
	mock.Mock
}

func newMockRenderer(t mockT) *mockRenderer {
	m := &mockRenderer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (that *mockRenderer) Render(board entity.Board) error {
	return that.Called(board).Error(0)
}

func (that *mockRenderer) Announce(text string) error {
	return that.Called(text).Error(0)
}

type mockMatchPlayer struct {
	mock.Mock
}

func newMockMatchPlayer(t mockT) *mockMatchPlayer {
	m := &mockMatchPlayer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (that *mockMatchPlayer) PlayMatch(ctx context.Context, first, second entity.Player) (*entity.MatchResult, error) {
	args := that.Called(ctx, first, second)

	result, _ := args.Get(0).(*entity.MatchResult)

	return result, args.Error(1)
}

type promptCall struct {
	message  string
	retry    string
	accepted []string
}

// scriptedPrompter answers prompts from a fixed list and fails on answers
// that were not offered.
type scriptedPrompter struct {
	answers []string
	calls   []promptCall
}

func newScriptedPrompter(answers ...string) *scriptedPrompter {
	return &scriptedPrompter{answers: answers}
}

func (that *scriptedPrompter) Prompt(_ context.Context, message, retryMessage string, accepted []string) (string, error) {
	that.calls = append(that.calls, promptCall{message: message, retry: retryMessage, accepted: accepted})

	if len(that.answers) == 0 {
		return "", apperror.ErrInputClosed
	}

	answer := that.answers[0]
	that.answers = that.answers[1:]

	if !containsFold(accepted, answer) {
		return "", fmt.Errorf("script answer %q not in %s", answer, strings.Join(accepted, ","))
	}

	return strings.ToLower(answer), nil
}

type recordingRenderer struct {
	boards        []entity.Board
	announcements []string
}

func (that *recordingRenderer) Render(board entity.Board) error {
	that.boards = append(that.boards, board)

	return nil
}

func (that *recordingRenderer) Announce(text string) error {
	that.announcements = append(that.announcements, text)

	return nil
}
