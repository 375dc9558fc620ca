package model

// Cell is the state of a single grid position
type Cell uint8

const (
	// Empty holds nothing
	Empty Cell = iota
	// Flying is a particle still on its random walk
	Flying
	// Frozen is part of the aggregate and never changes again
	Frozen
)

const (
	glyphEmpty  = ' '
	glyphFlying = 'f'
	glyphFrozen = '*'
)

// Glyph returns the rune used to draw the cell
func (c Cell) Glyph() rune {
	switch c {
	case Flying:
		return glyphFlying
	case Frozen:
		return glyphFrozen
	default:
		return glyphEmpty
	}
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Flying:
		return "Flying"
	case Frozen:
		return "Frozen"
	default:
		return "Cell(?)"
	}
}
