package models

// GameStatus represents the current state of a game
type GameStatus string

const (
	StatusPlaying GameStatus = "playing"
	StatusWon     GameStatus = "won"
	StatusLost    GameStatus = "lost"
	StatusDraw    GameStatus = "draw"
)

// Finished reports whether the status ends a game
func (s GameStatus) Finished() bool {
	return s != StatusPlaying
}
