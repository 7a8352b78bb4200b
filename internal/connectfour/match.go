package connectfour

import "github.com/rocketscienceinc/connectfour/internal/entity"

type State string

const (
	StateAwaitingMove State = "awaiting_move"
	StateBoardUpdated State = "board_updated"
	StateWinCheck     State = "win_check"
	StateMatchOver    State = "match_over"
)

// Match is the aggregate of a single game: a board, the two players in
// move order and whose turn it is.
type Match struct {
	ID      string
	Board   entity.Board
	Players [2]entity.Player
	State   State
	Moves   int

	current int
}

func NewMatch(id string, first, second entity.Player) *Match {
	return &Match{
		ID:      id,
		Board:   entity.NewBoard(),
		Players: [2]entity.Player{first, second},
		State:   StateAwaitingMove,
	}
}

func (that *Match) Current() entity.Player {
	return that.Players[that.current]
}

func (that *Match) Opponent() entity.Player {
	return that.Players[1-that.current]
}

func (that *Match) SwapTurn() {
	that.current = 1 - that.current
	that.State = StateAwaitingMove
}

// Finish moves the match to its terminal state and builds the result.
// On a draw the players keep their move order.
func (that *Match) Finish(outcome entity.Outcome) *entity.MatchResult {
	that.State = StateMatchOver

	result := &entity.MatchResult{
		ID:      that.ID,
		Outcome: outcome,
		Winner:  that.Players[0],
		Loser:   that.Players[1],
		Moves:   that.Moves,
		Board:   that.Board,
	}

	if outcome.HasWinner() {
		result.Winner, result.Loser = that.playerByMark(outcome.Winner)
	}

	return result
}

// playerByMark returns the player owning mark and the other one of the pair.
func (that *Match) playerByMark(mark entity.Mark) (entity.Player, entity.Player) {
	if that.Players[1].Mark == mark {
		return that.Players[1], that.Players[0]
	}

	return that.Players[0], that.Players[1]
}
