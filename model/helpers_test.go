package model

import (
	"context"
	"testing"

	"github.com/sheikhrachel/go-dla/utils"
)

// scriptedSource replays fixed picks and fails the test if it runs dry
type scriptedSource struct {
	t     *testing.T
	picks []int
	calls []int // n passed to each IntN call
}

func newScripted(t *testing.T, picks ...int) *scriptedSource {
	t.Helper()
	return &scriptedSource{t: t, picks: picks}
}

func (s *scriptedSource) IntN(n int) int {
	s.calls = append(s.calls, n)
	if len(s.picks) == 0 {
		s.t.Fatalf("unexpected random draw over %d choices", n)
		return 0
	}
	p := s.picks[0]
	s.picks = s.picks[1:]
	if p < 0 || p >= n {
		s.t.Fatalf("scripted pick %d out of range [0,%d)", p, n)
	}
	return p
}

// gridFrom builds a grid from rows of glyphs: ' ' empty, 'f' flying, '*' frozen
func gridFrom(rows ...string) *Grid {
	g := NewGrid(len(rows[0]), len(rows))
	for r, line := range rows {
		for c, ch := range line {
			switch ch {
			case 'f':
				g.Set(Coord{Row: r, Col: c}, Flying)
			case '*':
				g.Set(Coord{Row: r, Col: c}, Frozen)
			}
		}
	}
	return g
}

// recordingRenderer counts frames and keeps the last rendered grid
type recordingRenderer struct {
	clears   int
	displays int
	statuses []string
	last     *Grid
}

func (r *recordingRenderer) Clear() error { r.clears++; return nil }

func (r *recordingRenderer) Display(g *Grid) error {
	r.displays++
	r.last = cloneGrid(g)
	return nil
}

func (r *recordingRenderer) Status(line string) error {
	r.statuses = append(r.statuses, line)
	return nil
}

func (r *recordingRenderer) Close() error { return nil }

func testConfig() utils.Config {
	c := utils.DefaultConfig()
	c.FPS = 0
	return c
}

func contains(g *Grid, c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

func cloneGrid(g *Grid) *Grid {
	c := NewGrid(g.width, g.height)
	copy(c.cells, g.cells)
	c.frozenBounds.dirty = true
	return c
}

// countingPacer records how many frames were paused for
type countingPacer struct {
	pauses int
}

func (p *countingPacer) Pause(ctx context.Context) error {
	p.pauses++
	return ctx.Err()
}
