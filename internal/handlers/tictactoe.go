package handlers

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/aaronzipp/classroom-arcade/internal/game"
	"github.com/aaronzipp/classroom-arcade/internal/models"
	"github.com/aaronzipp/classroom-arcade/internal/render"
	"github.com/aaronzipp/classroom-arcade/internal/tictactoe"
)

type ticTacToeController struct {
	ctx        *Context
	session    *models.Session
	cursor     tictactoe.Cell
	status     string
	statusKind render.Kind
}

func newTicTacToeController(ctx *Context, session *models.Session) *ticTacToeController {
	c := &ticTacToeController{ctx: ctx, session: session, cursor: tictactoe.Cell{Row: 1, Col: 1}}
	c.refreshStatus()
	return c
}

func (c *ticTacToeController) engine() *tictactoe.Engine {
	return c.session.TicTacToe
}

func (c *ticTacToeController) HandleKey(ev *tcell.EventKey) Controller {
	switch ev.Key() {
	case tcell.KeyEscape:
		return newMenuController(c.ctx)
	case tcell.KeyUp:
		c.moveCursor(-1, 0)
	case tcell.KeyDown:
		c.moveCursor(1, 0)
	case tcell.KeyLeft:
		c.moveCursor(0, -1)
	case tcell.KeyRight:
		c.moveCursor(0, 1)
	case tcell.KeyEnter:
		c.place(c.cursor)
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q', 'Q':
			return newMenuController(c.ctx)
		case 'r', 'R':
			c.session.NewGame()
			c.ctx.Logger.Debug("board reset", zap.String("session_id", c.session.ID))
			c.refreshStatus()
		case ' ':
			c.place(c.cursor)
		default:
			if cell, ok := game.CellForKey(r); ok {
				c.cursor = cell
				c.place(cell)
			}
		}
	}
	return c
}

func (c *ticTacToeController) moveCursor(dr, dc int) {
	row, col := c.cursor.Row+dr, c.cursor.Col+dc
	if tictactoe.InBounds(row, col) {
		c.cursor = tictactoe.Cell{Row: row, Col: col}
	}
}

// place plays the current mark unless the game is already over
func (c *ticTacToeController) place(cell tictactoe.Cell) {
	if game.TicTacToeStatus(c.engine()).Finished() {
		c.status = "Game over. Press r to play again."
		c.statusKind = render.Error
		return
	}
	mover := c.engine().Turn()
	if !c.engine().AddMove(cell.Row, cell.Col) {
		c.status = "That square is taken."
		c.statusKind = render.Error
		return
	}
	c.ctx.Logger.Debug("move",
		zap.String("session_id", c.session.ID),
		zap.String("mark", mover.String()),
		zap.Int("row", cell.Row),
		zap.Int("col", cell.Col),
		zap.Int("move", c.engine().MoveCount()),
	)
	c.ctx.recordOutcome(c.session)
	c.refreshStatus()
}

func (c *ticTacToeController) refreshStatus() {
	c.statusKind = render.Normal
	switch game.TicTacToeStatus(c.engine()) {
	case models.StatusWon:
		c.status = "The winner is " + c.engine().Winner().String() + "!"
		c.statusKind = render.Highlight
	case models.StatusDraw:
		c.status = "It's a draw!"
		c.statusKind = render.Highlight
	default:
		c.status = "Turn: " + c.engine().Turn().String()
	}
}

func (c *ticTacToeController) View() render.View {
	board := c.engine().Board()
	var cursor *tictactoe.Cell
	var win *tictactoe.Line
	if line, ok := game.WinningLine(board); ok {
		win = &line
	} else if !c.engine().IsBoardFull() {
		cursor = &c.cursor
	}

	lines := render.Board(board, cursor, win)
	if score := render.Scoreboard(&c.session.Score); score != nil {
		lines = append(lines, render.Text(""))
		lines = append(lines, score...)
	}
	return render.View{
		Title:      render.SessionLabel(c.session),
		Lines:      lines,
		Status:     c.status,
		StatusKind: c.statusKind,
		Footer:     "arrows/1-9 move · enter place · r new game · esc menu",
	}
}
