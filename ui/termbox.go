package ui

import (
	"context"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/worker"
	termbox "github.com/nsf/termbox-go"
)

const defaultColor = termbox.ColorDefault

var termboxAttrs = map[Role][2]termbox.Attribute{
	RoleHead:     {termbox.ColorGreen | termbox.AttrBold, defaultColor},
	RoleBody:     {termbox.ColorGreen, defaultColor},
	RoleFood:     {termbox.ColorRed, defaultColor},
	RoleBonus:    {termbox.ColorYellow | termbox.AttrBold, defaultColor},
	RoleObstacle: {termbox.ColorWhite, defaultColor},
	RoleWall:     {termbox.ColorMagenta, defaultColor},
	RoleThought:  {termbox.ColorYellow, defaultColor},
	RoleBanner:   {termbox.ColorRed | termbox.AttrBold, defaultColor},
}

func termboxAttr(r Role) (termbox.Attribute, termbox.Attribute) {
	if a, ok := termboxAttrs[r]; ok {
		return a[0], a[1]
	}
	return defaultColor, defaultColor
}

type termboxSurface struct{}

func (termboxSurface) SetCell(x, y int, ch rune, role Role) {
	fg, bg := termboxAttr(role)
	termbox.SetCell(x, y, ch, fg, bg)
}

// Termbox draws frames with termbox. Only one may be open at a time.
type Termbox struct{}

// OpenTermbox takes over the terminal.
func OpenTermbox() (*Termbox, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	return &Termbox{}, nil
}

// Render implements worker.Renderer.
func (*Termbox) Render(f *board.Frame) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}
	w, h := termbox.Size()
	draw(termboxSurface{}, f, w, h)
	return termbox.Flush()
}

// Events delivers raw terminal events until ctx is done.
func (*Termbox) Events(ctx context.Context) <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func() {
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				return
			}
			select {
			case eventQueue <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		<-ctx.Done()
		termbox.Interrupt()
	}()
	return eventQueue
}

// Commands delivers the commands typed until ctx is done.
func (t *Termbox) Commands(ctx context.Context) <-chan worker.Command {
	commands := make(chan worker.Command)
	events := t.Events(ctx)
	go func() {
		for ev := range events {
			c, ok := TermboxCommand(ev)
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

// Close gives the terminal back.
func (*Termbox) Close() error {
	termbox.Close()
	return nil
}

// TermboxCommand maps a termbox key event to a command.
func TermboxCommand(ev termbox.Event) (worker.Command, bool) {
	if ev.Type != termbox.EventKey {
		return "", false
	}
	switch ev.Key {
	case termbox.KeyArrowUp:
		return worker.CommandUp, true
	case termbox.KeyArrowDown:
		return worker.CommandDown, true
	case termbox.KeyArrowLeft:
		return worker.CommandLeft, true
	case termbox.KeyArrowRight:
		return worker.CommandRight, true
	case termbox.KeyEnter:
		return worker.CommandStart, true
	case termbox.KeySpace:
		return worker.CommandPause, true
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return worker.CommandQuit, true
	}
	if ev.Ch != 0 {
		return runeCommand(ev.Ch)
	}
	return "", false
}
