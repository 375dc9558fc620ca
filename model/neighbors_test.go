package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNeighbors_EdgePolicy(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 4}, {4, 1}, {2, 2}, {5, 5}, {16, 8}}
	for _, sz := range sizes {
		g := NewGrid(sz[0], sz[1])
		for _, c := range g.Coords() {
			n := g.Neighbors(c)
			for _, nc := range n.All() {
				require.True(t, contains(g, nc), "neighbor %v of %v outside %dx%d", nc, c, sz[0], sz[1])
			}

			// Decrement directions clamp at zero
			if c.Row == 0 {
				require.Equal(t, c, n.Up)
			} else {
				require.Equal(t, Coord{Row: c.Row - 1, Col: c.Col}, n.Up)
			}
			if c.Col == 0 {
				require.Equal(t, c, n.Left)
			} else {
				require.Equal(t, Coord{Row: c.Row, Col: c.Col - 1}, n.Left)
			}

			// Increment directions wrap to zero
			if c.Row == g.GetHeight()-1 {
				require.Equal(t, Coord{Row: 0, Col: c.Col}, n.Down)
			} else {
				require.Equal(t, Coord{Row: c.Row + 1, Col: c.Col}, n.Down)
			}
			if c.Col == g.GetWidth()-1 {
				require.Equal(t, Coord{Row: c.Row, Col: 0}, n.Right)
			} else {
				require.Equal(t, Coord{Row: c.Row, Col: c.Col + 1}, n.Right)
			}
		}
	}
}

func TestNeighbors_LeftOfSeed(t *testing.T) {
	g := NewGrid(5, 5)
	n := g.Neighbors(Coord{Row: 2, Col: 1})
	require.Equal(t, Neighborhood{
		Up:    Coord{Row: 1, Col: 1},
		Down:  Coord{Row: 3, Col: 1},
		Left:  Coord{Row: 2, Col: 0},
		Right: Coord{Row: 2, Col: 2},
	}, n)
	require.Equal(t, g.Center(), n.Right)
}

func TestNeighbors_SingleCellIsItsOwnNeighbor(t *testing.T) {
	g := NewGrid(1, 1)
	origin := Coord{}
	for _, nc := range g.Neighbors(origin).All() {
		require.Equal(t, origin, nc)
	}
}
