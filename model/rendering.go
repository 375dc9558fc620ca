package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	clearCmd        = "clear"
	ansiClearScreen = "\033[H\033[2J"
)

// Renderer draws the grid; it only ever reads it
type Renderer interface {
	Clear() error
	Display(g *Grid) error
	Status(line string) error
	Close() error
}

// TerminalRenderer writes the grid as plain text, one line per row
type TerminalRenderer struct {
	out io.Writer
	cmd string
}

// NewTerminalRenderer renders to stdout and clears with the system clear command
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{out: os.Stdout, cmd: clearCmd}
}

// NewWriterRenderer renders to w and clears with an ANSI escape
func NewWriterRenderer(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: w}
}

// Display renders the grid row by row with no column separators
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.out)
	for row := range g.height {
		for col := range g.width {
			w.WriteRune(g.Get(Coord{Row: row, Col: col}).Glyph())
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Display] failed to write grid")
	}
	return nil
}

// Status prints a line below the grid
func (r *TerminalRenderer) Status(line string) error {
	if _, err := fmt.Fprintln(r.out, line); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Status] failed to write status")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if r.cmd != "" {
		cmd := exec.Command(r.cmd)
		cmd.Stdout = r.out
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	if _, err := io.WriteString(r.out, ansiClearScreen); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Clear] failed to clear screen")
	}
	return nil
}

// Close is a no-op for plain text output
func (r *TerminalRenderer) Close() error { return nil }

// NopRenderer discards everything, for headless runs
type NopRenderer struct{}

func (NopRenderer) Clear() error        { return nil }
func (NopRenderer) Display(*Grid) error { return nil }
func (NopRenderer) Status(string) error { return nil }
func (NopRenderer) Close() error        { return nil }
