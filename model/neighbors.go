package model

// Coord addresses a grid position by row and column
type Coord struct {
	Row, Col int
}

// Neighborhood holds the four axis-adjacent coordinates of a cell
type Neighborhood struct {
	Up, Down, Left, Right Coord
}

// All returns the neighbors in up, down, left, right order
func (n Neighborhood) All() [4]Coord {
	return [4]Coord{n.Up, n.Down, n.Left, n.Right}
}

/*
Neighbors returns the four axis neighbors of c.

The boundary policy is asymmetric: moving up or left clamps at 0, so a cell on
the top or left edge is its own up or left neighbor, while moving down or right
wraps to index 0 on that axis.
*/
func (g *Grid) Neighbors(c Coord) Neighborhood {
	return Neighborhood{
		Up:    Coord{Row: max(c.Row-1, 0), Col: c.Col},
		Down:  Coord{Row: (c.Row + 1) % g.height, Col: c.Col},
		Left:  Coord{Row: c.Row, Col: max(c.Col-1, 0)},
		Right: Coord{Row: c.Row, Col: (c.Col + 1) % g.width},
	}
}
