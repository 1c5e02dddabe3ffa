package tictactoe

import "testing"

const emptyBoard = " | | \n | | \n | | \n"

func TestNewEngineState(t *testing.T) {
	e := NewEngine()

	if e.Turn() != X {
		t.Errorf("Expected X to move first, got %q", e.Turn())
	}
	if e.IsBoardFull() {
		t.Error("Expected a fresh board not to be full")
	}
	if e.Winner() != None {
		t.Errorf("Expected no winner on a fresh board, got %q", e.Winner())
	}
	if e.HasWinner() {
		t.Error("Expected HasWinner to be false on a fresh board")
	}
	if got := e.DisplayBoard(); got != emptyBoard {
		t.Errorf("Expected empty board %q, got %q", emptyBoard, got)
	}
}

func TestAddMoveAcceptsEachCellOnce(t *testing.T) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			e := NewEngine()
			if !e.AddMove(row, col) {
				t.Fatalf("Expected move (%d,%d) to be accepted on an empty board", row, col)
			}
			before := e.DisplayBoard()
			turn := e.Turn()
			if e.AddMove(row, col) {
				t.Errorf("Expected second move on (%d,%d) to be rejected", row, col)
			}
			if e.DisplayBoard() != before {
				t.Errorf("Expected board unchanged after rejected move on (%d,%d)", row, col)
			}
			if e.Turn() != turn {
				t.Errorf("Expected turn unchanged after rejected move on (%d,%d)", row, col)
			}
		}
	}
}

func TestAddMoveRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row too large", 3, 1},
		{"col too large", 1, 3},
		{"both out", 7, -4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEngine()
			if e.AddMove(tc.row, tc.col) {
				t.Errorf("Expected (%d,%d) to be rejected", tc.row, tc.col)
			}
			if e.Turn() != X {
				t.Errorf("Expected X still to move, got %q", e.Turn())
			}
			if e.DisplayBoard() != emptyBoard {
				t.Errorf("Expected board unchanged, got %q", e.DisplayBoard())
			}
		})
	}
}

func TestAddMoveSwitchesTurn(t *testing.T) {
	e := NewEngine()
	moves := []Cell{{0, 0}, {1, 1}, {2, 2}, {0, 2}, {2, 0}}
	for _, m := range moves {
		mover := e.Turn()
		if !e.AddMove(m.Row, m.Col) {
			t.Fatalf("Expected move %v to be accepted", m)
		}
		if e.Turn() == mover {
			t.Errorf("Expected turn to pass after %q moved at %v", mover, m)
		}
		if e.Board().At(m) != mover {
			t.Errorf("Expected %q at %v, got %q", mover, m, e.Board().At(m))
		}
	}
	if e.DisplayBoard()[0] != 'X' {
		t.Errorf("Expected X in the top-left cell, got %q", e.DisplayBoard()[0])
	}
}

func TestWinnerTopRow(t *testing.T) {
	e := NewEngine()
	for _, m := range []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}} {
		e.AddMove(m.Row, m.Col)
	}
	if !e.HasWinner() {
		t.Fatal("Expected a winner after X completes the top row")
	}
	if e.Winner() != X {
		t.Errorf("Expected X to win, got %q", e.Winner())
	}
}

func TestWinnerEveryLine(t *testing.T) {
	for i, line := range Lines {
		var b Board
		for _, c := range line {
			b[c.Row][c.Col] = O
		}
		e := FromBoard(b, X)
		if e.Winner() != O {
			t.Errorf("line %d: Expected O to win, got %q", i, e.Winner())
		}
	}
}

func TestWinnerChecksAllLines(t *testing.T) {
	// Only the anti diagonal is complete; every earlier line must be skipped.
	b := Board{
		{X, O, O},
		{X, O, X},
		{O, X, X},
	}
	e := FromBoard(b, X)
	if e.Winner() != O {
		t.Errorf("Expected O on the anti diagonal, got %q", e.Winner())
	}
	line, ok := b.CompletedLine()
	if !ok || line != Lines[7] {
		t.Errorf("Expected anti diagonal, got %v (ok=%v)", line, ok)
	}
}

func TestDrawOnFullBoard(t *testing.T) {
	e := NewEngine()
	// X O X / X O O / O X X
	for _, m := range []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 0}, {2, 2}} {
		if !e.AddMove(m.Row, m.Col) {
			t.Fatalf("Expected move %v to be accepted", m)
		}
	}
	if !e.IsBoardFull() {
		t.Error("Expected board to be full")
	}
	if e.HasWinner() {
		t.Errorf("Expected no winner, got %q", e.Winner())
	}
	if e.MoveCount() != 9 {
		t.Errorf("Expected 9 moves, got %d", e.MoveCount())
	}
}

func TestMovesAllowedAfterWin(t *testing.T) {
	e := NewEngine()
	for _, m := range []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}} {
		e.AddMove(m.Row, m.Col)
	}
	if !e.AddMove(2, 2) {
		t.Error("Expected engine to keep accepting moves after a win")
	}
}

func TestMarkCountsStayBalanced(t *testing.T) {
	e := NewEngine()
	for i := 0; i < Size*Size; i++ {
		e.AddMove(i/Size, (i*2)%Size)
		e.AddMove(i%Size, i/Size)
		xCount, oCount := 0, 0
		for _, row := range e.Board() {
			for _, m := range row {
				switch m {
				case X:
					xCount++
				case O:
					oCount++
				}
			}
		}
		if xCount-oCount < 0 || xCount-oCount > 1 {
			t.Fatalf("Expected X count to lead O by 0 or 1, got X=%d O=%d", xCount, oCount)
		}
	}
}

func TestReset(t *testing.T) {
	e := NewEngine()
	e.AddMove(0, 0)
	e.AddMove(1, 1)
	e.AddMove(2, 2)
	e.Reset()

	if e.Turn() != X {
		t.Errorf("Expected X to move after reset, got %q", e.Turn())
	}
	if got := e.DisplayBoard(); got != emptyBoard {
		t.Errorf("Expected %q after reset, got %q", emptyBoard, got)
	}
	if e.MoveCount() != 0 {
		t.Errorf("Expected 0 moves after reset, got %d", e.MoveCount())
	}
}

func TestDisplayBoard(t *testing.T) {
	e := NewEngine()
	e.AddMove(0, 0)
	e.AddMove(1, 2)
	e.AddMove(2, 1)
	want := "X| | \n | |O\n |X| \n"
	if got := e.DisplayBoard(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
