package model

import (
	"crypto/md5"
	"fmt"
)

// Grid is the simulation board, stored row-major in a single buffer
type Grid struct {
	width   int
	height  int
	cells   []Cell
	history []string // Recent grid hashes for stagnation detection

	// Bounding box of the frozen aggregate, recomputed lazily
	frozenBounds struct {
		minRow, maxRow, minCol, maxCol int
		valid                          bool
		dirty                          bool
	}
}

// NewGrid creates an empty grid with the specified dimensions. Dimensions
// below 1 are raised to 1.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Reset(width, height)
	return g
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resizes the grid and empties every cell. Dimensions below 1 are
// raised to 1 so the neighbor wrap never divides by zero.
func (g *Grid) Reset(width, height int) {
	width = max(width, 1)
	height = max(height, 1)
	g.width = width
	g.height = height

	if cap(g.cells) >= width*height {
		g.cells = g.cells[:width*height]
	} else {
		g.cells = make([]Cell, width*height)
	}
	g.Clear()
}

// Clear empties all cells
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
	g.history = nil
	g.frozenBounds.valid = false
	g.frozenBounds.dirty = false
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.width + c.Col
}

// Get returns the state at c
func (g *Grid) Get(c Coord) Cell {
	return g.cells[g.index(c)]
}

// Set writes the state at c
func (g *Grid) Set(c Coord, cell Cell) {
	i := g.index(c)
	if cell == Frozen || g.cells[i] == Frozen {
		g.frozenBounds.dirty = true
	}
	g.cells[i] = cell
}

// Center returns the coordinate the seed is placed on
func (g *Grid) Center() Coord {
	return Coord{Row: g.height / 2, Col: g.width / 2}
}

// Coords returns every coordinate in row-major traversal order
func (g *Grid) Coords() []Coord {
	coords := make([]Coord, 0, g.width*g.height)
	for row := range g.height {
		for col := range g.width {
			coords = append(coords, Coord{Row: row, Col: col})
		}
	}
	return coords
}

// Count returns the number of cells holding the given state
func (g *Grid) Count(state Cell) (count int) {
	for _, c := range g.cells {
		if c == state {
			count++
		}
	}
	return
}

// CountNonEmpty returns the number of flying and frozen cells
func (g *Grid) CountNonEmpty() int {
	return len(g.cells) - g.Count(Empty)
}

// calculateFrozenBounds calculates the bounding box of frozen cells
func (g *Grid) calculateFrozenBounds() {
	g.frozenBounds.valid = false
	g.frozenBounds.dirty = false

	for row := range g.height {
		for col := range g.width {
			if g.cells[row*g.width+col] != Frozen {
				continue
			}
			if !g.frozenBounds.valid {
				g.frozenBounds.minRow, g.frozenBounds.maxRow = row, row
				g.frozenBounds.minCol, g.frozenBounds.maxCol = col, col
				g.frozenBounds.valid = true
			} else {
				g.frozenBounds.minRow = min(g.frozenBounds.minRow, row)
				g.frozenBounds.maxRow = max(g.frozenBounds.maxRow, row)
				g.frozenBounds.minCol = min(g.frozenBounds.minCol, col)
				g.frozenBounds.maxCol = max(g.frozenBounds.maxCol, col)
			}
		}
	}
}

// GetBoundingBoxSize returns the area covered by the frozen aggregate
func (g *Grid) GetBoundingBoxSize() int {
	if g.frozenBounds.dirty || !g.frozenBounds.valid {
		g.calculateFrozenBounds()
	}
	if !g.frozenBounds.valid {
		return 0
	}
	return (g.frozenBounds.maxRow - g.frozenBounds.minRow + 1) *
		(g.frozenBounds.maxCol - g.frozenBounds.minCol + 1)
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory(size int) {
	g.history = append(g.history, g.GetGridHash())
	if len(g.history) > size {
		g.history = g.history[len(g.history)-size:]
	}
}

/*
IsStagnant reports whether every recorded state is identical, which happens
when the remaining flying cells are hemmed in and can neither move nor freeze.
Such a run never terminates on its own.
*/
func (g *Grid) IsStagnant(size int) bool {
	if size < 2 || len(g.history) < size {
		return false
	}
	for _, h := range g.history[1:] {
		if h != g.history[0] {
			return false
		}
	}
	return true
}
