package models

import (
	"time"

	"github.com/aaronzipp/classroom-arcade/internal/hangman"
	"github.com/aaronzipp/classroom-arcade/internal/tictactoe"
)

// Session is one player's run of an exercise (ephemeral)
type Session struct {
	ID        string
	Name      string
	Kind      Kind
	TicTacToe *tictactoe.Engine // set when Kind is KindTicTacToe
	Hangman   *hangman.Engine   // set when Kind is KindHangman
	Score     Score
	CreatedAt time.Time
	Scored    bool // current game's outcome already recorded
}

// NewGame resets the session's engine and clears the scored flag
func (s *Session) NewGame() {
	switch s.Kind {
	case KindTicTacToe:
		s.TicTacToe.Reset()
	case KindHangman:
		s.Hangman.StartNewGame()
	}
	s.Scored = false
}
