package model

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

var (
	styleFlying = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleFrozen = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Interrupter is a renderer that owns the terminal input and can ask for the
// run to stop
type Interrupter interface {
	Interrupts() <-chan struct{}
}

// ScreenRenderer draws the grid into a tcell screen
type ScreenRenderer struct {
	screen     tcell.Screen
	rows       int
	interrupts chan struct{}
	once       sync.Once
}

// NewScreenRenderer opens the terminal as a full-screen tcell display
func NewScreenRenderer() (*ScreenRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to create screen")
	}
	return NewScreenRendererOn(screen)
}

// NewScreenRendererOn wraps an existing screen, initializes it and starts
// reading its key events
func NewScreenRendererOn(screen tcell.Screen) (*ScreenRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRendererOn] failed to init screen")
	}
	screen.HideCursor()
	r := &ScreenRenderer{screen: screen, interrupts: make(chan struct{})}
	go r.pollEvents()
	return r, nil
}

// pollEvents runs until the screen is finalized. The raw-mode terminal
// delivers Ctrl+C as a key event rather than SIGINT.
func (r *ScreenRenderer) pollEvents() {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				r.once.Do(func() { close(r.interrupts) })
			}
		}
	}
}

// Interrupts is closed once the user presses Ctrl+C, Escape or q
func (r *ScreenRenderer) Interrupts() <-chan struct{} {
	return r.interrupts
}

// Clear blanks the screen
func (r *ScreenRenderer) Clear() error {
	r.screen.Clear()
	return nil
}

// Display draws one cell per screen column and shows the frame
func (r *ScreenRenderer) Display(g *Grid) error {
	for row := range g.height {
		for col := range g.width {
			cell := g.Get(Coord{Row: row, Col: col})
			style := tcell.StyleDefault
			switch cell {
			case Flying:
				style = styleFlying
			case Frozen:
				style = styleFrozen
			}
			r.screen.SetContent(col, row, cell.Glyph(), nil, style)
		}
	}
	r.rows = g.height
	r.screen.Show()
	return nil
}

// Status draws a line below the grid
func (r *ScreenRenderer) Status(line string) error {
	for i, ch := range []rune(line) {
		r.screen.SetContent(i, r.rows, ch, nil, styleStatus)
	}
	r.rows++
	r.screen.Show()
	return nil
}

// Close restores the terminal
func (r *ScreenRenderer) Close() error {
	r.screen.Fini()
	return nil
}

// WatchInterrupts derives a context that is cancelled when r reports an
// interrupt. Renderers without input return a plain cancellable context.
func WatchInterrupts(ctx context.Context, r Renderer) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	ir, ok := r.(Interrupter)
	if !ok {
		return ctx, cancel
	}
	go func() {
		select {
		case <-ir.Interrupts():
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
