package ui

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/battlesnakeio/arcade/worker"
)

// runeCommand maps printable keys, shared by every backend.
func runeCommand(r rune) (worker.Command, bool) {
	switch r {
	case 'w', 'W', 'k':
		return worker.CommandUp, true
	case 's', 'S', 'j':
		return worker.CommandDown, true
	case 'a', 'A', 'h':
		return worker.CommandLeft, true
	case 'd', 'D', 'l':
		return worker.CommandRight, true
	case 'p', 'P', ' ':
		return worker.CommandPause, true
	case 'r', 'R':
		return worker.CommandRestart, true
	case 'c', 'C':
		return worker.CommandReset, true
	case 'q', 'Q':
		return worker.CommandQuit, true
	}
	return "", false
}

// LineCommands reads one command name per line, for playing without a
// terminal. The channel closes at the end of input.
func LineCommands(ctx context.Context, r io.Reader) <-chan worker.Command {
	commands := make(chan worker.Command)
	go func() {
		defer close(commands)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.ToLower(strings.TrimSpace(scanner.Text()))
			if line == "" {
				continue
			}
			select {
			case commands <- worker.Command(line):
			case <-ctx.Done():
				return
			}
		}
	}()
	return commands
}
