package tictactoe

import "strings"

// Size is the width and height of the board
const Size = 3

// Mark is a player token or an empty cell
type Mark byte

const (
	Empty Mark = 0
	X     Mark = 'X'
	O     Mark = 'O'

	// None is returned by Winner when no line is complete
	None = Empty
)

// String returns the single-character form of the mark, a space for Empty
func (m Mark) String() string {
	if m == Empty {
		return " "
	}
	return string(rune(m))
}

// Other returns the opposing player's mark
func (m Mark) Other() Mark {
	if m == X {
		return O
	}
	return X
}

// Board is a row-major 3x3 grid
type Board [Size][Size]Mark

// Cell is a row/column coordinate on the board
type Cell struct {
	Row int
	Col int
}

// Line is three cells that win when occupied by the same mark
type Line [Size]Cell

// Lines lists every winning line in evaluation order: rows, columns, main diagonal, anti diagonal
var Lines = [8]Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Engine holds the state of a single tic-tac-toe game
type Engine struct {
	board         Board
	currentPlayer Mark
}

// NewEngine creates an empty board with X to move
func NewEngine() *Engine {
	e := &Engine{}
	e.Reset()
	return e
}

// FromBoard creates an engine with a preset board and player to move.
// The board is not checked for reachability.
func FromBoard(board Board, turn Mark) *Engine {
	return &Engine{board: board, currentPlayer: turn}
}

// AddMove places the current player's mark at row, col and passes the turn.
// Out-of-range coordinates and occupied cells are rejected without changing state.
func (e *Engine) AddMove(row, col int) bool {
	if !InBounds(row, col) {
		return false
	}
	if e.board[row][col] != Empty {
		return false
	}
	e.board[row][col] = e.currentPlayer
	e.currentPlayer = e.currentPlayer.Other()
	return true
}

// Turn returns the player to move next
func (e *Engine) Turn() Mark {
	return e.currentPlayer
}

// HasWinner reports whether any line is complete
func (e *Engine) HasWinner() bool {
	return e.Winner() != None
}

// Winner returns the mark that completes a line, or None
func (e *Engine) Winner() Mark {
	if line, ok := e.board.CompletedLine(); ok {
		return e.board.At(line[0])
	}
	return None
}

// IsBoardFull reports whether no cell is empty
func (e *Engine) IsBoardFull() bool {
	for _, row := range e.board {
		for _, m := range row {
			if m == Empty {
				return false
			}
		}
	}
	return true
}

// Reset clears the board and gives the first move to X
func (e *Engine) Reset() {
	e.board = Board{}
	e.currentPlayer = X
}

// Board returns a copy of the grid
func (e *Engine) Board() Board {
	return e.board
}

// MoveCount returns the number of occupied cells
func (e *Engine) MoveCount() int {
	n := 0
	for _, row := range e.board {
		for _, m := range row {
			if m != Empty {
				n++
			}
		}
	}
	return n
}

// DisplayBoard renders the board as three newline-terminated rows of |-separated cells
func (e *Engine) DisplayBoard() string {
	var b strings.Builder
	for _, row := range e.board {
		for j, m := range row {
			if j > 0 {
				b.WriteByte('|')
			}
			b.WriteString(m.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// At returns the mark in the given cell
func (b Board) At(c Cell) Mark {
	return b[c.Row][c.Col]
}

// CompletedLine returns the first line, in Lines order, held by a single mark
func (b Board) CompletedLine() (Line, bool) {
	for _, line := range Lines {
		first := b.At(line[0])
		if first == Empty {
			continue
		}
		if b.At(line[1]) == first && b.At(line[2]) == first {
			return line, true
		}
	}
	return Line{}, false
}

// InBounds reports whether row and col address a cell on the board
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
