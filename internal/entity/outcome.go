package entity

// Outcome is the terminal result of a match. The zero value means no winner.
type Outcome struct {
	Winner Mark `json:"winner,omitempty"`
	Draw   bool `json:"draw,omitempty"`
}

func NoWinner() Outcome {
	return Outcome{}
}

func Winner(mark Mark) Outcome {
	return Outcome{Winner: mark}
}

func Draw() Outcome {
	return Outcome{Draw: true}
}

func (that Outcome) HasWinner() bool {
	return that.Winner != Empty
}

// MatchResult is what a finished match hands to the session.
type MatchResult struct {
	ID      string  `json:"id"`
	Outcome Outcome `json:"outcome"`
	Winner  Player  `json:"winner"`
	Loser   Player  `json:"loser"`
	Moves   int     `json:"moves"`
	Board   Board   `json:"board"`
}
