package game

import (
	"github.com/aaronzipp/classroom-arcade/internal/hangman"
	"github.com/aaronzipp/classroom-arcade/internal/models"
	"github.com/aaronzipp/classroom-arcade/internal/tictactoe"
)

// TicTacToeStatus derives the game status from the board
func TicTacToeStatus(e *tictactoe.Engine) models.GameStatus {
	switch {
	case e.HasWinner():
		return models.StatusWon
	case e.IsBoardFull():
		return models.StatusDraw
	default:
		return models.StatusPlaying
	}
}

// HangmanStatus derives the game status, a solved word taking priority over the miss limit
func HangmanStatus(e *hangman.Engine, maxMisses int) models.GameStatus {
	switch {
	case e.IsWordComplete():
		return models.StatusWon
	case e.Misses() >= maxMisses:
		return models.StatusLost
	default:
		return models.StatusPlaying
	}
}

// WinningLine re-derives the completed line from displayed marks
func WinningLine(board tictactoe.Board) (tictactoe.Line, bool) {
	return board.CompletedLine()
}

// Status returns the current status of the session's game
func Status(s *models.Session, maxMisses int) models.GameStatus {
	switch s.Kind {
	case models.KindTicTacToe:
		return TicTacToeStatus(s.TicTacToe)
	case models.KindHangman:
		return HangmanStatus(s.Hangman, maxMisses)
	default:
		return models.StatusPlaying
	}
}

// Outcome returns the score label for a finished game, or "" while playing
func Outcome(s *models.Session, maxMisses int) string {
	switch s.Kind {
	case models.KindTicTacToe:
		switch TicTacToeStatus(s.TicTacToe) {
		case models.StatusWon:
			if s.TicTacToe.Winner() == tictactoe.X {
				return OutcomeXWins
			}
			return OutcomeOWins
		case models.StatusDraw:
			return OutcomeDraw
		}
	case models.KindHangman:
		switch HangmanStatus(s.Hangman, maxMisses) {
		case models.StatusWon:
			return OutcomeSolved
		case models.StatusLost:
			return OutcomeHanged
		}
	}
	return ""
}

// RecordOutcome adds the finished game to the session score once.
// Returns the outcome label and whether it was newly recorded.
func RecordOutcome(s *models.Session, maxMisses int) (string, bool) {
	outcome := Outcome(s, maxMisses)
	if outcome == "" || s.Scored {
		return outcome, false
	}
	s.Score.Record(outcome)
	s.Scored = true
	return outcome, true
}
