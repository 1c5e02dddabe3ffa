package render

import (
	"strconv"
	"strings"

	"github.com/aaronzipp/classroom-arcade/internal/game"
	"github.com/aaronzipp/classroom-arcade/internal/models"
	"github.com/aaronzipp/classroom-arcade/internal/tictactoe"
)

const boardDivider = "---+---+---"

// Board generates the tic-tac-toe grid. cursor and win may be nil.
func Board(board tictactoe.Board, cursor *tictactoe.Cell, win *tictactoe.Line) []Line {
	lines := make([]Line, 0, 2*tictactoe.Size-1)
	for row := range tictactoe.Size {
		if row > 0 {
			lines = append(lines, Styled(Muted, boardDivider))
		}
		var l Line
		for col := range tictactoe.Size {
			if col > 0 {
				l = append(l, Span{Text: "|", Kind: Muted})
			}
			cell := tictactoe.Cell{Row: row, Col: col}
			kind := Normal
			switch {
			case win != nil && onLine(*win, cell):
				kind = Highlight
			case cursor != nil && *cursor == cell:
				kind = Cursor
			}
			l = append(l, Span{Text: " " + board.At(cell).String() + " ", Kind: kind})
		}
		lines = append(lines, l)
	}
	return lines
}

func onLine(line tictactoe.Line, cell tictactoe.Cell) bool {
	for _, c := range line {
		if c == cell {
			return true
		}
	}
	return false
}

// gallows is the complete figure; each part is drawn once misses reach its stage
var gallows = []string{
	"  +---+",
	"  |   |",
	"  O   |",
	" /|\\  |",
	" / \\  |",
	"      |",
	"=========",
}

// figure parts in drawing order: rope, head, body, left arm, right arm, left leg, right leg
var gallowsParts = [game.GallowsStages]struct{ row, col int }{
	{1, 2}, {2, 2}, {3, 2}, {3, 1}, {3, 3}, {4, 1}, {4, 3},
}

// Gallows generates the hangman figure for the given number of misses
func Gallows(misses int) []Line {
	misses = max(0, min(misses, game.GallowsStages))
	rows := make([][]byte, len(gallows))
	for i, s := range gallows {
		rows[i] = []byte(s)
	}
	for _, p := range gallowsParts[misses:] {
		rows[p.row][p.col] = ' '
	}
	lines := make([]Line, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, Text(string(r)))
	}
	return lines
}

// SpacedWord separates letters with spaces for readability
func SpacedWord(word string) string {
	return strings.Join(strings.Split(word, ""), " ")
}

// GuessedLetters generates the line listing guessed letters
func GuessedLetters(letters []rune) Line {
	if len(letters) == 0 {
		return Line{{Text: "Guessed: "}, {Text: "-", Kind: Muted}}
	}
	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = string(r)
	}
	return Line{{Text: "Guessed: "}, {Text: strings.Join(parts, " "), Kind: Muted}}
}

// Misses generates the miss counter line
func Misses(misses, maxMisses int) Line {
	kind := Normal
	if misses > 0 {
		kind = Error
	}
	return Line{{Text: "Misses: "}, {Text: strconv.Itoa(misses) + "/" + strconv.Itoa(maxMisses), Kind: kind}}
}

// Scoreboard generates the score lines for a session
func Scoreboard(score *models.Score) []Line {
	if score.Played == 0 {
		return nil
	}
	lines := []Line{Styled(Heading, "Score ("+strconv.Itoa(score.Played)+" played)")}
	for _, outcome := range score.Outcomes() {
		lines = append(lines, Text("  "+outcome+": "+strconv.Itoa(score.Count(outcome))))
	}
	return lines
}

// SessionLabel generates "<name> · <kind>" for headers
func SessionLabel(s *models.Session) string {
	return s.Kind.Title() + " · " + s.Name
}
