package search

// Placement is the logical (day, time) a section ended up at.
type Placement struct {
	Day  string
	Time string
}

// Result is the logical output of a search: a complete mapping from
// section identifier to its placement, plus the scalar eval. Found is
// false when no complete assignment was reached (the "no solution"
// sentinel — not an error).
type Result struct {
	Placements map[string]Placement
	Eval       int
	Found      bool
}
