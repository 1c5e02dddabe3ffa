package handlers

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/aaronzipp/classroom-arcade/internal/models"
	"github.com/aaronzipp/classroom-arcade/internal/render"
)

// maxResumable is how many sessions the menu offers to resume (keys 3-9)
const maxResumable = 7

type menuController struct {
	ctx        *Context
	ids        []string // session IDs on keys 3-9, newest first
	status     string
	statusKind render.Kind
}

func newMenuController(ctx *Context) *menuController {
	m := &menuController{ctx: ctx}
	m.refresh()
	return m
}

// refresh snapshots the most recent sessions so keys match what is shown
func (m *menuController) refresh() {
	sessions := m.ctx.SessionStore.List()
	m.ids = m.ids[:0]
	for i := len(sessions) - 1; i >= 0 && len(m.ids) < maxResumable; i-- {
		m.ids = append(m.ids, sessions[i].ID)
	}
}

func (m *menuController) HandleKey(ev *tcell.EventKey) Controller {
	if ev.Key() == tcell.KeyEscape {
		return nil
	}
	if ev.Key() != tcell.KeyRune {
		return m
	}
	switch r := ev.Rune(); {
	case r == 'q' || r == 'Q':
		return nil
	case r == '1':
		return m.ctx.Open(m.ctx.NewSession(models.KindTicTacToe))
	case r == '2':
		return m.ctx.Open(m.ctx.NewSession(models.KindHangman))
	case r == 'd' || r == 'D':
		n := m.ctx.removeFinished()
		m.refresh()
		m.status = "Removed " + strconv.Itoa(n) + " finished session(s)."
		m.statusKind = render.Muted
		return m
	case r >= '3' && r <= '9':
		return m.resume(int(r - '3'))
	default:
		return m
	}
}

func (m *menuController) resume(i int) Controller {
	if i >= len(m.ids) {
		m.status = "No session on key " + strconv.Itoa(i+3) + "."
		m.statusKind = render.Error
		return m
	}
	session, err := m.ctx.SessionStore.MustGet(m.ids[i])
	if err != nil {
		m.ctx.Logger.Warn("resume failed", zap.String("session_id", m.ids[i]), zap.Error(err))
		m.refresh()
		m.status = "That session is gone."
		m.statusKind = render.Error
		return m
	}
	return m.ctx.Open(session)
}

func (m *menuController) View() render.View {
	lines := []render.Line{
		render.Text("1) New TicTacToe"),
		render.Text("2) New Hangman"),
	}
	if len(m.ids) > 0 {
		lines = append(lines, render.Text(""), render.Styled(render.Heading, "Resume"))
		for i, id := range m.ids {
			s, ok := m.ctx.SessionStore.Get(id)
			if !ok {
				continue
			}
			label := strconv.Itoa(i+3) + ") " + render.SessionLabel(s)
			if s.Score.Played > 0 {
				label += " (" + strconv.Itoa(s.Score.Played) + " played)"
			}
			lines = append(lines, render.Text(label))
		}
	}
	return render.View{
		Title:      "Classroom Arcade",
		Lines:      lines,
		Status:     m.status,
		StatusKind: m.statusKind,
		Footer:     "d clear finished · q quit",
	}
}
