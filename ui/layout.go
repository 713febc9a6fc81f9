// Package ui renders frames to the terminal and turns key presses into
// worker commands. Both termbox and tcell backends draw through the same
// layout.
package ui

import (
	"fmt"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/mattn/go-runewidth"
)

// Role is the semantic meaning of a screen cell.
type Role int

// Roles of board cells, followed by the roles of decorations.
const (
	RoleEmpty Role = iota
	RoleHead
	RoleBody
	RoleFood
	RoleBonus
	RoleObstacle
	RoleWall
	RoleText
	RoleThought
	RoleBorder
	RoleBanner
)

const (
	left = 1
	// top is the row of the upper border, the status line and the thought
	// sit above it.
	top = 2
	// cellWidth is the number of terminal columns per board cell, terminal
	// cells being roughly twice as tall as they are wide.
	cellWidth = 2
)

var glyphs = map[Role]rune{
	RoleEmpty:    ' ',
	RoleHead:     '█',
	RoleBody:     '▓',
	RoleFood:     '●',
	RoleBonus:    '★',
	RoleObstacle: '▒',
	RoleWall:     '█',
}

// Glyph is the rune a board role is drawn with.
func Glyph(r Role) rune {
	if g, ok := glyphs[r]; ok {
		return g
	}
	return ' '
}

// Roles lays the frame out as rows of cells. Cells outside the board, such
// as the head of a snake that left it, are dropped.
func Roles(f *board.Frame) [][]Role {
	grid := make([][]Role, f.Height)
	for y := range grid {
		grid[y] = make([]Role, f.Width)
	}
	set := func(p board.Point, r Role) {
		if p.X < 0 || p.Y < 0 || p.X >= f.Width || p.Y >= f.Height {
			return
		}
		grid[p.Y][p.X] = r
	}

	for _, p := range f.Obstacles {
		if f.IsWall(p) {
			set(p, RoleWall)
		} else {
			set(p, RoleObstacle)
		}
	}
	if f.Food != nil {
		set(*f.Food, RoleFood)
	}
	if f.Bonus != nil {
		set(*f.Bonus, RoleBonus)
	}
	for i := len(f.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			set(f.Snake[i], RoleHead)
		} else {
			set(f.Snake[i], RoleBody)
		}
	}
	return grid
}

// StatusLine is the score line shown above the board.
func StatusLine(f *board.Frame) string {
	return fmt.Sprintf("Score: %d | High Score: %d", f.Score, f.HighScore)
}

// Banner is the text shown over the board for the frame's status, if any.
func Banner(f *board.Frame) []string {
	switch rules.Status(f.Status) {
	case rules.StatusNotStarted:
		return []string{"SNAKE", "Press ENTER to start"}
	case rules.StatusPaused:
		return []string{"PAUSED", "Press P to resume"}
	case rules.StatusGameOver:
		if f.NewRecord {
			return []string{
				"GAME OVER",
				"NEW HIGH SCORE!",
				fmt.Sprintf("Final Score: %d (New Record!)", f.Score),
			}
		}
		return []string{"GAME OVER", fmt.Sprintf("Final Score: %d", f.Score)}
	}
	return nil
}

// Help lists the keys under the board.
const Help = "arrows/wasd move  enter start  p pause  r restart  c start from beginning  esc quit"

// Size is the terminal size needed to draw a board of the given cells.
func Size(cols, rows int32) (int, int) {
	return left + int(cols)*cellWidth + 2, top + int(rows) + 3
}

// surface is the minimal drawing API shared by the backends.
type surface interface {
	SetCell(x, y int, ch rune, role Role)
}

func printText(s surface, x, y int, role Role, msg string) {
	for _, c := range msg {
		s.SetCell(x, y, c, role)
		x += runewidth.RuneWidth(c)
	}
}

// draw lays out a whole frame on a surface of the given size.
func draw(s surface, f *board.Frame, width, height int) {
	needW, needH := Size(f.Width, f.Height)
	if width < needW || height < needH {
		printText(s, 0, 0, RoleText, fmt.Sprintf("Terminal too small: need %dx%d", needW, needH))
		return
	}

	printText(s, left, 0, RoleText, StatusLine(f))
	printText(s, left, 1, RoleThought, f.Thought)
	drawBorder(s, int(f.Width)*cellWidth, int(f.Height))

	for y, row := range Roles(f) {
		for x, role := range row {
			if role == RoleEmpty {
				continue
			}
			for i := 0; i < cellWidth; i++ {
				s.SetCell(left+1+x*cellWidth+i, top+1+y, Glyph(role), role)
			}
		}
	}

	lines := Banner(f)
	midY := top + 1 + int(f.Height)/2 - len(lines)/2
	for i, line := range lines {
		x := left + 1 + (int(f.Width)*cellWidth-runewidth.StringWidth(line))/2
		printText(s, x, midY+i, RoleBanner, line)
	}

	printText(s, left, top+int(f.Height)+2, RoleText, Help)
}

func drawBorder(s surface, w, h int) {
	right, bottom := left+w+1, top+h+1
	for x := left + 1; x < right; x++ {
		s.SetCell(x, top, '─', RoleBorder)
		s.SetCell(x, bottom, '─', RoleBorder)
	}
	for y := top + 1; y < bottom; y++ {
		s.SetCell(left, y, '│', RoleBorder)
		s.SetCell(right, y, '│', RoleBorder)
	}
	s.SetCell(left, top, '┌', RoleBorder)
	s.SetCell(right, top, '┐', RoleBorder)
	s.SetCell(left, bottom, '└', RoleBorder)
	s.SetCell(right, bottom, '┘', RoleBorder)
}
