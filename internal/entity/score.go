package entity

// Scores counts the games won by each player.
type Scores struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
}

func (that Scores) IsValid() bool {
	return that.Player1 >= 0 && that.Player2 >= 0
}

// Add - returns the scores with one more win for the player.
func (that Scores) Add(player Player) Scores {
	switch player {
	case Player1:
		that.Player1++
	case Player2:
		that.Player2++
	}

	return that
}

func (that Scores) Of(player Player) int {
	switch player {
	case Player1:
		return that.Player1
	case Player2:
		return that.Player2
	default:
		return 0
	}
}
