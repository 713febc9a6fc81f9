package worker

import "github.com/battlesnakeio/arcade/board"

// Command is an input intent delivered to the worker.
type Command string

// Session commands and directional intents.
const (
	CommandStart   Command = "start"
	CommandPause   Command = "pause"
	CommandRestart Command = "restart"
	CommandReset   Command = "reset"
	CommandQuit    Command = "quit"
	CommandUp      Command = "up"
	CommandDown    Command = "down"
	CommandLeft    Command = "left"
	CommandRight   Command = "right"
)

// Direction maps a directional command to a heading.
func (c Command) Direction() (board.Direction, bool) {
	switch c {
	case CommandUp:
		return board.DirectionUp, true
	case CommandDown:
		return board.DirectionDown, true
	case CommandLeft:
		return board.DirectionLeft, true
	case CommandRight:
		return board.DirectionRight, true
	}
	return "", false
}
