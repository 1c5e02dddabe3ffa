package handlers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/aaronzipp/classroom-arcade/internal/render"
)

// Controller handles key input for one screen.
// HandleKey returns the controller to show next, or nil to quit.
type Controller interface {
	HandleKey(ev *tcell.EventKey) Controller
	View() render.View
}

// Router tracks the active screen
type Router struct {
	ctx     *Context
	current Controller
	done    bool
}

// NewRouter starts at the main menu
func NewRouter(ctx *Context) *Router {
	return &Router{ctx: ctx, current: newMenuController(ctx)}
}

// HandleKey forwards a key press to the active screen
func (r *Router) HandleKey(ev *tcell.EventKey) {
	if r.done {
		return
	}
	if ev.Key() == tcell.KeyCtrlC {
		r.done = true
		return
	}
	next := r.current.HandleKey(ev)
	if next == nil {
		r.done = true
		return
	}
	r.current = next
}

// View renders the active screen, flagged Quit once the user has asked to leave
func (r *Router) View() render.View {
	v := r.current.View()
	v.Quit = r.done
	return v
}
