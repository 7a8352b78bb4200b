package connectfour

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// Scoreboard tallies wins per mark and draws over a session.
type Scoreboard struct {
	order []entity.Mark
	wins  map[entity.Mark]int
	draws int
}

func NewScoreboard(marks ...entity.Mark) *Scoreboard {
	wins := make(map[entity.Mark]int, len(marks))
	for _, mark := range marks {
		wins[mark] = 0
	}

	return &Scoreboard{
		order: marks,
		wins:  wins,
	}
}

func (that *Scoreboard) Record(outcome entity.Outcome) {
	switch {
	case outcome.HasWinner():
		if _, ok := that.wins[outcome.Winner]; !ok {
			that.order = append(that.order, outcome.Winner)
		}
		that.wins[outcome.Winner]++
	case outcome.Draw:
		that.draws++
	}
}

func (that *Scoreboard) Wins(mark entity.Mark) int {
	return that.wins[mark]
}

func (that *Scoreboard) Draws() int {
	return that.draws
}

func (that *Scoreboard) String() string {
	parts := make([]string, 0, len(that.order)+1)
	for _, mark := range that.order {
		parts = append(parts, fmt.Sprintf("%s: %d", mark, that.wins[mark]))
	}
	parts = append(parts, fmt.Sprintf("draws: %d", that.draws))

	return "Score - " + strings.Join(parts, ", ")
}
