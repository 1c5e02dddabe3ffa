package models

import (
	"testing"

	"github.com/aaronzipp/classroom-arcade/internal/hangman"
	"github.com/aaronzipp/classroom-arcade/internal/tictactoe"
)

func TestScoreOutcomes(t *testing.T) {
	var s Score
	s.Record("O wins")
	s.Record("X wins")
	s.Record("X wins")
	s.Record("Draws")

	if s.Played != 4 {
		t.Errorf("Expected 4 games played, got %d", s.Played)
	}
	if s.Count("X wins") != 2 {
		t.Errorf("Expected 2 X wins, got %d", s.Count("X wins"))
	}
	if s.Count("unknown") != 0 {
		t.Errorf("Expected 0 for unknown outcome, got %d", s.Count("unknown"))
	}
	want := []string{"X wins", "Draws", "O wins"}
	got := s.Outcomes()
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %q at %d, got %q", want[i], i, got[i])
		}
	}
}

func TestSessionNewGame(t *testing.T) {
	ttt := &Session{Kind: KindTicTacToe, TicTacToe: tictactoe.NewEngine(), Scored: true}
	ttt.TicTacToe.AddMove(1, 1)
	ttt.NewGame()
	if ttt.TicTacToe.MoveCount() != 0 || ttt.Scored {
		t.Error("Expected tictactoe session to reset board and scored flag")
	}

	hm := &Session{Kind: KindHangman, Hangman: hangman.NewEngine(hangman.DefaultWordPool()), Scored: true}
	hm.Hangman.GuessLetter('z')
	hm.NewGame()
	if hm.Hangman.Misses() != 0 || hm.Scored {
		t.Error("Expected hangman session to reset misses and scored flag")
	}
}

func TestStatusFinished(t *testing.T) {
	if StatusPlaying.Finished() {
		t.Error("Expected playing not to be finished")
	}
	for _, s := range []GameStatus{StatusWon, StatusLost, StatusDraw} {
		if !s.Finished() {
			t.Errorf("Expected %s to be finished", s)
		}
	}
}
