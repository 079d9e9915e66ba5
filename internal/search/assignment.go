package search

import "github.com/hallwood-labs/coursesched/internal/catalog"

// Assignment is one (section, slot) placement in a partial or complete
// schedule, plus diagnostic metadata about when it was made.
type Assignment struct {
	Section     *catalog.Section
	Slot        *catalog.Slot
	Delta       int
	CapAtAssign int
}

func clonePartial(partial map[string]*Assignment) map[string]*Assignment {
	out := make(map[string]*Assignment, len(partial))
	for k, v := range partial {
		cp := *v
		out[k] = &cp
	}
	return out
}
