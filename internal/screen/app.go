// Package screen draws views on a terminal and feeds key presses back to the router.
package screen

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/aaronzipp/classroom-arcade/internal/handlers"
	"github.com/aaronzipp/classroom-arcade/internal/render"
)

const (
	marginX = 2
	marginY = 1
)

var styles = map[render.Kind]tcell.Style{
	render.Normal:    tcell.StyleDefault,
	render.Highlight: tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	render.Cursor:    tcell.StyleDefault.Reverse(true),
	render.Error:     tcell.StyleDefault.Foreground(tcell.ColorRed),
	render.Muted:     tcell.StyleDefault.Foreground(tcell.ColorGray),
	render.Heading:   tcell.StyleDefault.Bold(true),
}

// App runs the draw/poll loop
type App struct {
	screen tcell.Screen
	router *handlers.Router
	logger *zap.Logger
}

// Open creates and initializes the terminal screen
func Open() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return s, nil
}

// New creates an app over an initialized screen
func New(s tcell.Screen, router *handlers.Router, logger *zap.Logger) *App {
	return &App{screen: s, router: router, logger: logger}
}

// Run draws and handles events until a view asks to quit or the screen is finalized
func (a *App) Run() error {
	for {
		v := a.router.View()
		a.Draw(v)
		if v.Quit {
			a.logger.Info("quit requested")
			return nil
		}
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			a.router.HandleKey(ev)
		case *tcell.EventError:
			a.logger.Error("screen event error", zap.Error(ev))
		}
	}
}

// Draw renders a view: title, body lines, status and a footer pinned to the bottom row
func (a *App) Draw(v render.View) {
	a.screen.Clear()
	_, height := a.screen.Size()

	y := marginY
	if v.Title != "" {
		a.drawLine(marginX, y, render.Styled(render.Heading, v.Title))
		y += 2
	}
	for _, l := range v.Lines {
		a.drawLine(marginX, y, l)
		y++
	}
	if v.Status != "" {
		y++
		a.drawLine(marginX, y, render.Styled(v.StatusKind, v.Status))
	}
	if v.Footer != "" {
		a.drawLine(marginX, max(y+2, height-1-marginY), render.Styled(render.Muted, v.Footer))
	}
	a.screen.Show()
}

func (a *App) drawLine(x, y int, l render.Line) {
	for _, span := range l {
		style := styles[span.Kind]
		for _, r := range span.Text {
			a.screen.SetContent(x, y, r, nil, style)
			x++
		}
	}
}
