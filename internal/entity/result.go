package entity

import "time"

// Result is the record kept for every finished game.
type Result struct {
	GameID     string    `json:"game_id"`
	Type       string    `json:"type"`
	Difficulty string    `json:"difficulty,omitempty"`
	Winner     string    `json:"winner"`
	PlayerX    string    `json:"player_x"`
	PlayerO    string    `json:"player_o"`
	FinishedAt time.Time `json:"finished_at"`
}

func NewResult(game *Game, finishedAt time.Time) *Result {
	result := &Result{
		GameID:     game.ID,
		Type:       game.Type,
		Difficulty: game.Difficulty,
		Winner:     game.Winner,
		FinishedAt: finishedAt.UTC(),
	}

	for _, player := range game.Players {
		switch player.Mark {
		case PlayerX:
			result.PlayerX = player.ID
		case PlayerO:
			result.PlayerO = player.ID
		}
	}

	return result
}
