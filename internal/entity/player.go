package entity

type Player struct {
	Mark Mark `json:"mark"`
}

func NewPlayer(mark string) Player {
	return Player{Mark: Mark(mark)}
}

func (that Player) String() string {
	return that.Mark.String()
}
