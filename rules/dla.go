package rules

// Action is the outcome of evaluating one flying cell
type Action int

const (
	// Stay leaves the cell flying in place
	Stay Action = iota
	// Freeze turns the cell into part of the aggregate
	Freeze
	// Move relocates the cell to one of its empty neighbors
	Move
)

func (a Action) String() string {
	switch a {
	case Freeze:
		return "freeze"
	case Move:
		return "move"
	default:
		return "stay"
	}
}

/*
ApplyDLARule decides what a flying cell does this step.

Diffusion-limited aggregation: touching the aggregate (frozenNeighbors > 0)
freezes the cell; otherwise it walks to a uniformly chosen empty neighbor, or
stays put when none is empty. The returned index selects among the empty
neighbors and is only meaningful for Move.
*/
func ApplyDLARule(frozenNeighbors, emptyNeighbors int, intn func(n int) int) (Action, int) {
	if frozenNeighbors > 0 {
		return Freeze, -1
	}
	if emptyNeighbors == 0 {
		return Stay, -1
	}
	return Move, intn(emptyNeighbors)
}
