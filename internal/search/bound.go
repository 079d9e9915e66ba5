package search

import "github.com/hallwood-labs/coursesched/internal/catalog"

// Eval computes the lower-bound penalty of a (possibly complete) partial:
// the running bounding score plus unmet minimum-capacity penalties plus
// pair penalties for every pair fully present in partial. At a complete
// leaf this is the exact objective.
func Eval(cat *catalog.Catalog, bounding int, partial map[string]*Assignment) int {
	total := bounding

	for _, slot := range cat.LectureSlots {
		if deficit := slot.MinCap - slot.CurrentCap; deficit > 0 {
			total += deficit * cat.PenLecMin
		}
	}
	for _, slot := range cat.TutorialSlots {
		if deficit := slot.MinCap - slot.CurrentCap; deficit > 0 {
			total += deficit * cat.PenTutMin
		}
	}

	for _, pr := range cat.Pair {
		a, okA := partial[pr.A]
		b, okB := partial[pr.B]
		if !okA || !okB {
			continue
		}
		if a.Slot.Day != b.Slot.Day || a.Slot.Time != b.Slot.Time {
			total += cat.PenNotPaired
		}
	}

	return total
}
