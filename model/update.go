package model

import "github.com/sheikhrachel/go-dla/rules"

// UpdateCell evaluates the flying cell at c against the live grid and applies
// the outcome in place. Cells that are not flying are left untouched.
func (g *Grid) UpdateCell(c Coord, rng RandomSource) rules.Action {
	if g.Get(c) != Flying {
		return rules.Stay
	}

	var (
		frozen int
		empty  [4]Coord
		n      int
	)
	for _, nc := range g.Neighbors(c).All() {
		switch g.Get(nc) {
		case Frozen:
			frozen++
		case Empty:
			empty[n] = nc
			n++
		}
	}

	action, pick := rules.ApplyDLARule(frozen, n, rng.IntN)
	switch action {
	case rules.Freeze:
		g.Set(c, Frozen)
	case rules.Move:
		g.Set(c, Empty)
		g.Set(empty[pick], Flying)
	}
	return action
}

// Step runs one row-major pass over the grid, updating every cell found flying
// when visited. It returns how many such visits happened.
func (g *Grid) Step(rng RandomSource) (flying int) {
	for row := range g.height {
		for col := range g.width {
			c := Coord{Row: row, Col: col}
			if g.Get(c) != Flying {
				continue
			}
			flying++
			g.UpdateCell(c, rng)
		}
	}
	return
}
