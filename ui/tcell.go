package ui

import (
	"context"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/worker"
	"github.com/gdamore/tcell/v2"
)

var tcellStyles = map[Role]tcell.Style{
	RoleHead:     tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true),
	RoleBody:     tcell.StyleDefault.Foreground(tcell.ColorGreen),
	RoleFood:     tcell.StyleDefault.Foreground(tcell.ColorRed),
	RoleBonus:    tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true),
	RoleObstacle: tcell.StyleDefault.Foreground(tcell.ColorGray),
	RoleWall:     tcell.StyleDefault.Foreground(tcell.ColorPurple),
	RoleThought:  tcell.StyleDefault.Foreground(tcell.ColorGold),
	RoleBanner:   tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
}

func tcellStyle(r Role) tcell.Style {
	if s, ok := tcellStyles[r]; ok {
		return s
	}
	return tcell.StyleDefault
}

type tcellSurface struct{ screen tcell.Screen }

func (s tcellSurface) SetCell(x, y int, ch rune, role Role) {
	s.screen.SetContent(x, y, ch, nil, tcellStyle(role))
}

// Tcell draws frames on a tcell screen.
type Tcell struct {
	screen tcell.Screen
}

// OpenTcell initializes the terminal screen.
func OpenTcell() (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return NewTcell(screen), nil
}

// NewTcell draws on an initialized screen.
func NewTcell(screen tcell.Screen) *Tcell {
	screen.HideCursor()
	return &Tcell{screen: screen}
}

// Render implements worker.Renderer.
func (t *Tcell) Render(f *board.Frame) error {
	t.screen.Clear()
	w, h := t.screen.Size()
	draw(tcellSurface{t.screen}, f, w, h)
	t.screen.Show()
	return nil
}

// Commands delivers the commands typed until ctx is done or the screen is
// closed.
func (t *Tcell) Commands(ctx context.Context) <-chan worker.Command {
	commands := make(chan worker.Command)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			c, ok := TcellCommand(key.Key(), key.Rune())
			if !ok {
				continue
			}
			select {
			case commands <- c:
			case <-ctx.Done():
				return
			}
		}
	}()
	return commands
}

// Close restores the terminal.
func (t *Tcell) Close() error {
	t.screen.Fini()
	return nil
}

// TcellCommand maps a tcell key to a command.
func TcellCommand(key tcell.Key, r rune) (worker.Command, bool) {
	switch key {
	case tcell.KeyUp:
		return worker.CommandUp, true
	case tcell.KeyDown:
		return worker.CommandDown, true
	case tcell.KeyLeft:
		return worker.CommandLeft, true
	case tcell.KeyRight:
		return worker.CommandRight, true
	case tcell.KeyEnter:
		return worker.CommandStart, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return worker.CommandQuit, true
	case tcell.KeyRune:
		return runeCommand(r)
	}
	return "", false
}
