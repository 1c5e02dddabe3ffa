package models

// Kind identifies which exercise a session runs
type Kind string

const (
	KindTicTacToe Kind = "tictactoe"
	KindHangman   Kind = "hangman"
)

// Title returns the display name for the kind
func (k Kind) Title() string {
	switch k {
	case KindTicTacToe:
		return "TicTacToe"
	case KindHangman:
		return "Hangman"
	default:
		return string(k)
	}
}
