package handlers

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/aaronzipp/classroom-arcade/internal/game"
	"github.com/aaronzipp/classroom-arcade/internal/hangman"
	"github.com/aaronzipp/classroom-arcade/internal/models"
	"github.com/aaronzipp/classroom-arcade/internal/render"
)

type hangmanController struct {
	ctx        *Context
	session    *models.Session
	status     string
	statusKind render.Kind
}

func newHangmanController(ctx *Context, session *models.Session) *hangmanController {
	c := &hangmanController{ctx: ctx, session: session}
	c.refreshStatus("")
	return c
}

func (c *hangmanController) engine() *hangman.Engine {
	return c.session.Hangman
}

func (c *hangmanController) gameStatus() models.GameStatus {
	return game.HangmanStatus(c.engine(), c.ctx.Config.MaxMisses)
}

func (c *hangmanController) HandleKey(ev *tcell.EventKey) Controller {
	switch ev.Key() {
	case tcell.KeyEscape:
		return newMenuController(c.ctx)
	case tcell.KeyEnter:
		c.newWord()
	case tcell.KeyRune:
		c.guess(string(ev.Rune()))
	}
	return c
}

// newWord starts a fresh game at any point; an unfinished word is abandoned unscored
func (c *hangmanController) newWord() {
	abandoned := !c.gameStatus().Finished()
	c.session.NewGame()
	c.ctx.Logger.Debug("new word",
		zap.String("session_id", c.session.ID),
		zap.Bool("abandoned", abandoned),
	)
	c.refreshStatus("")
}

// guess validates input and forwards it to the engine while the game is open
func (c *hangmanController) guess(input string) {
	if c.gameStatus().Finished() {
		c.status = "Press enter for a new word."
		c.statusKind = render.Error
		return
	}
	letter, err := game.ValidateGuess(input)
	if err != nil {
		c.status = err.Error()
		c.statusKind = render.Error
		return
	}
	repeat := c.engine().HasGuessed(letter)
	msg := c.engine().GuessLetter(letter)
	if repeat {
		c.status = msg
		c.statusKind = render.Muted
		return
	}
	c.ctx.Logger.Debug("guess",
		zap.String("session_id", c.session.ID),
		zap.String("letter", string(letter)),
		zap.Int("misses", c.engine().Misses()),
	)
	c.ctx.recordOutcome(c.session)
	c.refreshStatus(msg)
}

func (c *hangmanController) refreshStatus(feedback string) {
	e := c.engine()
	switch c.gameStatus() {
	case models.StatusWon:
		c.status = "The word is " + e.Word() + ". You missed " + strconv.Itoa(e.Misses()) + " time(s)."
		c.statusKind = render.Highlight
	case models.StatusLost:
		c.status = "Game Over! The word was " + e.Word() + "."
		c.statusKind = render.Error
	default:
		c.status = feedback
		c.statusKind = render.Normal
	}
}

func (c *hangmanController) View() render.View {
	e := c.engine()
	lines := render.Gallows(e.Misses())
	lines = append(lines,
		render.Text(""),
		render.Styled(render.Heading, render.SpacedWord(e.DisplayWord())),
		render.Text(""),
		render.Misses(e.Misses(), c.ctx.Config.MaxMisses),
		render.GuessedLetters(e.GuessedLetters()),
	)
	if score := render.Scoreboard(&c.session.Score); score != nil {
		lines = append(lines, render.Text(""))
		lines = append(lines, score...)
	}

	footer := "type a letter to guess · enter new word · esc menu"
	if c.gameStatus().Finished() {
		footer = "enter new word · esc menu"
	}
	return render.View{
		Title:      render.SessionLabel(c.session),
		Lines:      lines,
		Status:     c.status,
		StatusKind: c.statusKind,
		Footer:     footer,
	}
}
